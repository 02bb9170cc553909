package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mcosta87/budget-ledger/internal/apperrors"
	"github.com/mcosta87/budget-ledger/internal/core/domain"
	portssvc "github.com/mcosta87/budget-ledger/internal/core/ports/services"
	"github.com/mcosta87/budget-ledger/internal/core/services"
	"github.com/mcosta87/budget-ledger/internal/dto"
	"github.com/mcosta87/budget-ledger/internal/utils/integrity"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo        *MockTransactionRepository
	mockProjectRepo    *MockProjectRepository
	mockAccountingRepo *MockAccountingAccountRepository
	mockAuditRepo      *MockAuditRepository
	signatureSvc       portssvc.SignatureSvcFacade
	service            portssvc.TransactionSvcFacade

	coordinatorID string
	project       *domain.Project
	account       *domain.AccountingAccount
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockAccountingRepo = new(MockAccountingAccountRepository)
	suite.mockAuditRepo = new(MockAuditRepository)

	signatureSvc, err := services.NewSignatureService("test-signature-secret")
	suite.Require().NoError(err)
	suite.signatureSvc = signatureSvc

	auditSvc := services.NewAuditService(suite.mockAuditRepo, signatureSvc)
	suite.service = services.NewTransactionService(
		suite.mockTxnRepo,
		suite.mockProjectRepo,
		suite.mockAccountingRepo,
		signatureSvc,
		auditSvc,
	)

	suite.coordinatorID = uuid.NewString()
	projectID := uuid.NewString()
	suite.project = &domain.Project{
		ProjectID:     projectID,
		Name:          "Community Center Renovation",
		Budget:        decimal.RequireFromString("10000.00"),
		Status:        domain.InProgress,
		CoordinatorID: suite.coordinatorID,
		BankAccount: &domain.BankAccount{
			BankAccountID: uuid.NewString(),
			ProjectID:     projectID,
			AccountNumber: "12345-6",
			BankName:      "Test Bank",
			BranchNumber:  "0001",
		},
	}
	suite.account = &domain.AccountingAccount{
		AccountingAccountID: uuid.NewString(),
		Code:                "1234.56.7890",
		Name:                "Construction Materials",
	}
}

func (suite *TransactionServiceTestSuite) validRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Amount:              decimal.RequireFromString("150.50"),
		TransactionDate:     time.Now().UTC().Add(-24 * time.Hour),
		TransactionType:     string(domain.Credit),
		AccountingAccountID: suite.account.AccountingAccountID,
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Once()
	suite.mockAccountingRepo.On("FindAccountingAccountByID", ctx, suite.account.AccountingAccountID).Return(suite.account, nil).Once()

	var savedTxn domain.Transaction
	var savedEntry domain.AuditEntry
	suite.mockTxnRepo.On("SaveTransactionWithAudit", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.AuditEntry")).
		Run(func(args mock.Arguments) {
			savedTxn = args.Get(1).(domain.Transaction)
			savedEntry = args.Get(2).(domain.AuditEntry)
		}).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.project.ProjectID, req, suite.coordinatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(suite.project.ProjectID, txn.ProjectID)
	suite.Equal(suite.project.BankAccount.BankAccountID, txn.BankAccountID)
	suite.Equal(suite.account.AccountingAccountID, txn.AccountingAccountID)
	suite.Equal(suite.coordinatorID, txn.CreatedBy)
	suite.True(req.Amount.Equal(txn.Amount))
	suite.NotEmpty(txn.DataHash)
	suite.NotEmpty(txn.DigitalSignature)

	// The stored hash and signature must verify against the persisted fields.
	suite.True(integrity.VerifyHash(integrity.TransactionCanonical(savedTxn), savedTxn.DataHash))
	valid, err := suite.signatureSvc.ValidateTransaction(savedTxn)
	suite.Require().NoError(err)
	suite.True(valid)

	// The creation audit entry rides in the same persistence call.
	suite.Equal(domain.AuditActionCreate, savedEntry.Action)
	suite.Equal("Transaction", savedEntry.EntityType)
	suite.Equal(savedTxn.TransactionID, savedEntry.EntityID)
	suite.Equal(suite.coordinatorID, savedEntry.UserID)
	suite.Require().NotNil(savedEntry.NewValue)
	suite.Nil(savedEntry.PreviousValue)
	suite.True(integrity.VerifyHash(integrity.AuditEntryCanonical(savedEntry), savedEntry.DataHash))

	suite.mockProjectRepo.AssertExpectations(suite.T())
	suite.mockAccountingRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
	// The audit entry is persisted atomically with the transaction, never
	// through the audit repository on its own.
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "SaveAuditEntry", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_VerifiesAfterStorageRoundTrip() {
	ctx := context.Background()

	// Nanosecond precision and a non-UTC offset, neither of which a
	// timestamptz column preserves.
	req := suite.validRequest()
	loc := time.FixedZone("IST", 5*3600+30*60)
	req.TransactionDate = time.Date(2026, 3, 14, 9, 26, 53, 589793238, loc)

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Once()
	suite.mockAccountingRepo.On("FindAccountingAccountByID", ctx, suite.account.AccountingAccountID).Return(suite.account, nil).Once()

	var savedTxn domain.Transaction
	suite.mockTxnRepo.On("SaveTransactionWithAudit", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.AuditEntry")).
		Run(func(args mock.Arguments) {
			savedTxn = args.Get(1).(domain.Transaction)
		}).Return(nil).Once()

	_, err := suite.service.CreateTransaction(ctx, suite.project.ProjectID, req, suite.coordinatorID)
	suite.Require().NoError(err)

	// Reading the row back yields UTC microsecond timestamps; the stored hash
	// and signature must verify against exactly those values.
	stored := savedTxn
	stored.TransactionDate = stored.TransactionDate.UTC().Truncate(time.Microsecond)
	stored.CreatedAt = stored.CreatedAt.UTC().Truncate(time.Microsecond)

	suite.Equal(savedTxn.TransactionDate, stored.TransactionDate)
	suite.True(req.TransactionDate.Truncate(time.Microsecond).Equal(stored.TransactionDate))
	suite.True(integrity.VerifyHash(integrity.TransactionCanonical(stored), stored.DataHash))
	valid, err := suite.signatureSvc.ValidateTransaction(stored)
	suite.Require().NoError(err)
	suite.True(valid)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ProjectNotFound() {
	ctx := context.Background()
	projectID := uuid.NewString()

	suite.mockProjectRepo.On("FindProjectByID", ctx, projectID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, projectID, suite.validRequest(), suite.coordinatorID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactionWithAudit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NotCoordinator() {
	ctx := context.Background()

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.project.ProjectID, suite.validRequest(), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactionWithAudit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CompletedProject() {
	ctx := context.Background()
	suite.project.Status = domain.Completed

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.project.ProjectID, suite.validRequest(), suite.coordinatorID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CancelledProject() {
	ctx := context.Background()
	suite.project.Status = domain.Cancelled

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.project.ProjectID, suite.validRequest(), suite.coordinatorID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AccountingAccountNotFound() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Once()
	suite.mockAccountingRepo.On("FindAccountingAccountByID", ctx, req.AccountingAccountID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.project.ProjectID, req, suite.coordinatorID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NoBankAccount() {
	ctx := context.Background()
	suite.project.BankAccount = nil

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Once()
	suite.mockAccountingRepo.On("FindAccountingAccountByID", ctx, suite.account.AccountingAccountID).Return(suite.account, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.project.ProjectID, suite.validRequest(), suite.coordinatorID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Amount = decimal.Zero

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Once()
	suite.mockAccountingRepo.On("FindAccountingAccountByID", ctx, req.AccountingAccountID).Return(suite.account, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.project.ProjectID, req, suite.coordinatorID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactionWithAudit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_FutureDate() {
	ctx := context.Background()
	req := suite.validRequest()
	req.TransactionDate = time.Now().UTC().Add(48 * time.Hour)

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Once()
	suite.mockAccountingRepo.On("FindAccountingAccountByID", ctx, req.AccountingAccountID).Return(suite.account, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.project.ProjectID, req, suite.coordinatorID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Once()
	suite.mockAccountingRepo.On("FindAccountingAccountByID", ctx, suite.account.AccountingAccountID).Return(suite.account, nil).Once()
	suite.mockTxnRepo.On("SaveTransactionWithAudit", ctx, mock.AnythingOfType("domain.Transaction"), mock.AnythingOfType("domain.AuditEntry")).
		Return(expectedErr).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.project.ProjectID, suite.validRequest(), suite.coordinatorID)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, expectedErr)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_Success() {
	ctx := context.Background()
	expected := &domain.Transaction{TransactionID: uuid.NewString()}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, expected.TransactionID).Return(expected, nil).Once()

	txn, err := suite.service.GetTransactionByID(ctx, expected.TransactionID)

	suite.Require().NoError(err)
	suite.Equal(expected, txn)
}

func (suite *TransactionServiceTestSuite) TestListTransactionsByProject_Success() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), ProjectID: suite.project.ProjectID},
		{TransactionID: uuid.NewString(), ProjectID: suite.project.ProjectID},
	}
	nextToken := "token-abc"

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsByProjectID", ctx, suite.project.ProjectID, 20, (*string)(nil)).
		Return(txns, &nextToken, nil).Once()

	resp, err := suite.service.ListTransactionsByProject(ctx, suite.project.ProjectID, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Len(resp.Transactions, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(nextToken, *resp.NextToken)
}

func (suite *TransactionServiceTestSuite) TestGetProjectBalance_WithinBudget() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{TransactionID: "t1", Amount: decimal.RequireFromString("100.00"), TransactionType: domain.Credit, TransactionDate: time.Now().UTC().Add(-2 * time.Hour)},
		{TransactionID: "t2", Amount: decimal.RequireFromString("30.00"), TransactionType: domain.Debit, TransactionDate: time.Now().UTC().Add(-time.Hour)},
	}

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByProjectID", ctx, suite.project.ProjectID).Return(txns, nil).Once()

	resp, err := suite.service.GetProjectBalance(ctx, suite.project.ProjectID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.Balance.Equal(decimal.RequireFromString("70.00")))
	suite.False(resp.OverBudget)
	suite.Nil(resp.Warning)
	suite.Len(resp.RunningBalances, 2)
	suite.True(resp.RunningBalances["t1"].Equal(decimal.RequireFromString("100.00")))
	suite.True(resp.RunningBalances["t2"].Equal(decimal.RequireFromString("70.00")))
}

func (suite *TransactionServiceTestSuite) TestGetProjectBalance_OverBudget() {
	ctx := context.Background()
	suite.project.Budget = decimal.RequireFromString("100.00")
	txns := []domain.Transaction{
		{TransactionID: "t1", Amount: decimal.RequireFromString("150.00"), TransactionType: domain.Credit, TransactionDate: time.Now().UTC().Add(-time.Hour)},
	}

	suite.mockProjectRepo.On("FindProjectByID", ctx, suite.project.ProjectID).Return(suite.project, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByProjectID", ctx, suite.project.ProjectID).Return(txns, nil).Once()

	resp, err := suite.service.GetProjectBalance(ctx, suite.project.ProjectID)

	suite.Require().NoError(err)
	suite.True(resp.OverBudget)
	suite.Require().NotNil(resp.Warning)
	suite.Contains(*resp.Warning, "50.00")
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

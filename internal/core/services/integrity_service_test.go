package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mcosta87/budget-ledger/internal/core/domain"
	portssvc "github.com/mcosta87/budget-ledger/internal/core/ports/services"
	"github.com/mcosta87/budget-ledger/internal/core/services"
	"github.com/mcosta87/budget-ledger/internal/utils/integrity"
)

type IntegrityServiceTestSuite struct {
	suite.Suite
	mockTxnRepo   *MockTransactionRepository
	mockAuditRepo *MockAuditRepository
	service       portssvc.IntegritySvcFacade
}

func (suite *IntegrityServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.service = services.NewIntegrityService(suite.mockTxnRepo, suite.mockAuditRepo)
}

// hashedTransaction builds a transaction whose DataHash matches its fields.
func (suite *IntegrityServiceTestSuite) hashedTransaction(projectID string, amount string) domain.Transaction {
	txn := domain.Transaction{
		TransactionID:       uuid.NewString(),
		ProjectID:           projectID,
		BankAccountID:       "bank-1",
		AccountingAccountID: "acct-1",
		Amount:              decimal.RequireFromString(amount),
		TransactionDate:     time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
		TransactionType:     domain.Credit,
		CreatedBy:           "user-1",
		CreatedAt:           time.Now().UTC(),
	}
	hash, err := integrity.ComputeHash(integrity.TransactionCanonical(txn))
	suite.Require().NoError(err)
	txn.DataHash = hash
	return txn
}

// hashedAuditEntry builds an audit entry whose DataHash matches its fields.
func (suite *IntegrityServiceTestSuite) hashedAuditEntry() domain.AuditEntry {
	entry := domain.AuditEntry{
		AuditEntryID: uuid.NewString(),
		UserID:       "user-1",
		Action:       domain.AuditActionCreate,
		EntityType:   "Transaction",
		EntityID:     uuid.NewString(),
		Timestamp:    time.Now().UTC(),
	}
	hash, err := integrity.ComputeHash(integrity.AuditEntryCanonical(entry))
	suite.Require().NoError(err)
	entry.DataHash = hash
	return entry
}

func (suite *IntegrityServiceTestSuite) TestVerifyTransaction_Untampered() {
	txn := suite.hashedTransaction(uuid.NewString(), "150.50")
	suite.True(suite.service.VerifyTransaction(txn))
}

func (suite *IntegrityServiceTestSuite) TestVerifyTransaction_TamperedAmount() {
	txn := suite.hashedTransaction(uuid.NewString(), "150.50")
	txn.Amount = decimal.RequireFromString("999.99")
	suite.False(suite.service.VerifyTransaction(txn))
}

func (suite *IntegrityServiceTestSuite) TestVerifyTransaction_TamperedType() {
	txn := suite.hashedTransaction(uuid.NewString(), "150.50")
	txn.TransactionType = domain.Debit
	suite.False(suite.service.VerifyTransaction(txn))
}

func (suite *IntegrityServiceTestSuite) TestVerifyAuditEntry_Untampered() {
	entry := suite.hashedAuditEntry()
	suite.True(suite.service.VerifyAuditEntry(entry))
}

func (suite *IntegrityServiceTestSuite) TestVerifyAuditEntry_TamperedAction() {
	entry := suite.hashedAuditEntry()
	entry.Action = domain.AuditActionUpdate
	suite.False(suite.service.VerifyAuditEntry(entry))
}

func (suite *IntegrityServiceTestSuite) TestFindTamperedTransactions_MixedSet() {
	projectID := uuid.NewString()
	clean1 := suite.hashedTransaction(projectID, "10.00")
	tampered := suite.hashedTransaction(projectID, "20.00")
	tampered.Amount = decimal.RequireFromString("2000.00")
	clean2 := suite.hashedTransaction(projectID, "30.00")

	ids := suite.service.FindTamperedTransactions([]domain.Transaction{clean1, tampered, clean2})

	suite.Equal([]string{tampered.TransactionID}, ids)
}

func (suite *IntegrityServiceTestSuite) TestGenerateProjectIntegrityReport_AllValid() {
	ctx := context.Background()
	projectID := uuid.NewString()
	txns := []domain.Transaction{
		suite.hashedTransaction(projectID, "100.00"),
		suite.hashedTransaction(projectID, "42.42"),
	}
	entries := []domain.AuditEntry{suite.hashedAuditEntry()}

	suite.mockTxnRepo.On("FindTransactionsByProjectID", ctx, projectID).Return(txns, nil).Once()
	suite.mockAuditRepo.On("FindAuditEntriesByProjectID", ctx, projectID).Return(entries, nil).Once()

	report, err := suite.service.GenerateProjectIntegrityReport(ctx, projectID)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.True(report.IsValid)
	suite.Equal(2, report.TransactionsChecked)
	suite.Equal(1, report.AuditEntriesChecked)
	suite.Empty(report.TamperedTransactionIDs)
	suite.Empty(report.TamperedAuditEntryIDs)
	suite.False(report.VerifiedAt.IsZero())
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *IntegrityServiceTestSuite) TestGenerateProjectIntegrityReport_ValidAfterStorageRoundTrip() {
	ctx := context.Background()
	projectID := uuid.NewString()

	signatureSvc, err := services.NewSignatureService("test-signature-secret")
	suite.Require().NoError(err)
	auditSvc := services.NewAuditService(suite.mockAuditRepo, signatureSvc)

	txn := suite.hashedTransaction(projectID, "75.00")
	entry, err := auditSvc.BuildEntry(ctx, "user-1", domain.AuditActionCreate, "Transaction", txn.TransactionID, nil, nil)
	suite.Require().NoError(err)

	// The repositories hand back what the timestamptz columns kept: UTC,
	// microsecond precision. The report over untampered rows must stay valid.
	txn.TransactionDate = txn.TransactionDate.UTC().Truncate(time.Microsecond)
	txn.CreatedAt = txn.CreatedAt.UTC().Truncate(time.Microsecond)
	storedEntry := *entry
	storedEntry.Timestamp = storedEntry.Timestamp.UTC().Truncate(time.Microsecond)

	suite.mockTxnRepo.On("FindTransactionsByProjectID", ctx, projectID).Return([]domain.Transaction{txn}, nil).Once()
	suite.mockAuditRepo.On("FindAuditEntriesByProjectID", ctx, projectID).Return([]domain.AuditEntry{storedEntry}, nil).Once()

	report, err := suite.service.GenerateProjectIntegrityReport(ctx, projectID)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.True(report.IsValid)
	suite.Empty(report.TamperedTransactionIDs)
	suite.Empty(report.TamperedAuditEntryIDs)
}

func (suite *IntegrityServiceTestSuite) TestGenerateProjectIntegrityReport_DetectsTampering() {
	ctx := context.Background()
	projectID := uuid.NewString()

	clean := suite.hashedTransaction(projectID, "100.00")
	tamperedTxn := suite.hashedTransaction(projectID, "55.00")
	tamperedTxn.CreatedBy = "someone-else"

	cleanEntry := suite.hashedAuditEntry()
	tamperedEntry := suite.hashedAuditEntry()
	tamperedEntry.EntityID = uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionsByProjectID", ctx, projectID).
		Return([]domain.Transaction{clean, tamperedTxn}, nil).Once()
	suite.mockAuditRepo.On("FindAuditEntriesByProjectID", ctx, projectID).
		Return([]domain.AuditEntry{cleanEntry, tamperedEntry}, nil).Once()

	report, err := suite.service.GenerateProjectIntegrityReport(ctx, projectID)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.False(report.IsValid)
	suite.Equal([]string{tamperedTxn.TransactionID}, report.TamperedTransactionIDs)
	suite.Equal([]string{tamperedEntry.AuditEntryID}, report.TamperedAuditEntryIDs)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *IntegrityServiceTestSuite) TestGenerateProjectIntegrityReport_EmptyProject() {
	ctx := context.Background()
	projectID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionsByProjectID", ctx, projectID).Return([]domain.Transaction{}, nil).Once()
	suite.mockAuditRepo.On("FindAuditEntriesByProjectID", ctx, projectID).Return([]domain.AuditEntry{}, nil).Once()

	report, err := suite.service.GenerateProjectIntegrityReport(ctx, projectID)

	suite.Require().NoError(err)
	suite.True(report.IsValid)
	suite.Zero(report.TransactionsChecked)
	suite.Zero(report.AuditEntriesChecked)
}

func (suite *IntegrityServiceTestSuite) TestGenerateProjectIntegrityReport_RepoError() {
	ctx := context.Background()
	projectID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockTxnRepo.On("FindTransactionsByProjectID", ctx, projectID).Return(nil, expectedErr).Once()

	report, err := suite.service.GenerateProjectIntegrityReport(ctx, projectID)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, expectedErr)
}

func TestIntegrityService(t *testing.T) {
	suite.Run(t, new(IntegrityServiceTestSuite))
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
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

type AuditServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockAuditRepository
	signatureSvc portssvc.SignatureSvcFacade
	service      portssvc.AuditSvcFacade
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAuditRepository)
	signatureSvc, err := services.NewSignatureService("test-signature-secret")
	suite.Require().NoError(err)
	suite.signatureSvc = signatureSvc
	suite.service = services.NewAuditService(suite.mockRepo, signatureSvc)
}

func (suite *AuditServiceTestSuite) TestBuildEntry_SignedAndHashed() {
	ctx := context.Background()
	userID := uuid.NewString()
	entityID := uuid.NewString()
	newValue := `{"field":"value"}`

	entry, err := suite.service.BuildEntry(ctx, userID, domain.AuditActionCreate, "Transaction", entityID, nil, &newValue)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.AuditEntryID)
	suite.Equal(userID, entry.UserID)
	suite.Equal(domain.AuditActionCreate, entry.Action)
	suite.Equal("Transaction", entry.EntityType)
	suite.Equal(entityID, entry.EntityID)
	suite.False(entry.Timestamp.IsZero())
	suite.Nil(entry.PreviousValue)
	suite.Require().NotNil(entry.NewValue)
	suite.Equal(newValue, *entry.NewValue)

	suite.True(integrity.VerifyHash(integrity.AuditEntryCanonical(*entry), entry.DataHash))
	valid, err := suite.signatureSvc.ValidateAuditEntry(*entry)
	suite.Require().NoError(err)
	suite.True(valid)

	// BuildEntry must not persist anything.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAuditEntry", mock.Anything, mock.Anything)
}

func (suite *AuditServiceTestSuite) TestBuildEntry_VerifiesAfterStorageRoundTrip() {
	ctx := context.Background()
	newValue := `{"field":"value"}`

	entry, err := suite.service.BuildEntry(ctx, uuid.NewString(), domain.AuditActionCreate, "Project", uuid.NewString(), nil, &newValue)
	suite.Require().NoError(err)

	// A timestamptz column keeps microseconds in UTC and nothing finer. The
	// entry read back from the database must still hash and sign identically.
	stored := *entry
	stored.Timestamp = stored.Timestamp.UTC().Truncate(time.Microsecond)

	suite.Equal(entry.Timestamp, stored.Timestamp)
	suite.True(integrity.VerifyHash(integrity.AuditEntryCanonical(stored), stored.DataHash))
	valid, err := suite.signatureSvc.ValidateAuditEntry(stored)
	suite.Require().NoError(err)
	suite.True(valid)
}

func (suite *AuditServiceTestSuite) TestBuildEntry_MissingFields() {
	ctx := context.Background()

	_, err := suite.service.BuildEntry(ctx, "", domain.AuditActionCreate, "Transaction", "id", nil, nil)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.BuildEntry(ctx, "user", "", "Transaction", "id", nil, nil)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.BuildEntry(ctx, "user", domain.AuditActionCreate, "", "id", nil, nil)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.BuildEntry(ctx, "user", domain.AuditActionCreate, "Transaction", "", nil, nil)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AuditServiceTestSuite) TestRecordAction_Persists() {
	ctx := context.Background()
	userID := uuid.NewString()
	entityID := uuid.NewString()

	suite.mockRepo.On("SaveAuditEntry", ctx, mock.MatchedBy(func(e domain.AuditEntry) bool {
		return e.UserID == userID && e.EntityID == entityID && e.DataHash != "" && e.DigitalSignature != ""
	})).Return(nil).Once()

	entry, err := suite.service.RecordAction(ctx, userID, domain.AuditActionUpdate, "Project", entityID, nil, nil)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestRecordAction_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveAuditEntry", ctx, mock.AnythingOfType("domain.AuditEntry")).Return(expectedErr).Once()

	entry, err := suite.service.RecordAction(ctx, uuid.NewString(), domain.AuditActionCreate, "Project", uuid.NewString(), nil, nil)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, expectedErr)
}

func (suite *AuditServiceTestSuite) TestListAuditEntries_DefaultLimit() {
	ctx := context.Background()
	entries := []domain.AuditEntry{{AuditEntryID: uuid.NewString()}}

	suite.mockRepo.On("ListAuditEntries", ctx, mock.AnythingOfType("repositories.AuditEntryFilter"), 20, (*string)(nil)).
		Return(entries, nil, nil).Once()

	resp, err := suite.service.ListAuditEntries(ctx, dto.ListAuditEntriesParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Entries, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestGetEntityHistory() {
	ctx := context.Background()
	entityID := uuid.NewString()
	entries := []domain.AuditEntry{
		{AuditEntryID: uuid.NewString(), EntityType: "Transaction", EntityID: entityID},
		{AuditEntryID: uuid.NewString(), EntityType: "Transaction", EntityID: entityID},
	}

	suite.mockRepo.On("FindAuditEntriesByEntity", ctx, "Transaction", entityID).Return(entries, nil).Once()

	got, err := suite.service.GetEntityHistory(ctx, "Transaction", entityID)

	suite.Require().NoError(err)
	suite.Equal(entries, got)
}

func TestAuditService(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

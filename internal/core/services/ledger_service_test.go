package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sutratex/bunai-backend/internal/apperrors"
	"github.com/sutratex/bunai-backend/internal/core/domain"
	"github.com/sutratex/bunai-backend/internal/core/services"
	"github.com/sutratex/bunai-backend/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerEntryRepository
	service  *services.LedgerService
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerEntryRepository)
	suite.service = services.NewLedgerService(suite.mockRepo)
}

func (suite *LedgerServiceTestSuite) TestCreateKhata_Success() {
	ctx := context.Background()
	req := dto.CreateKhataRequest{Name: "Shop Khata", Notes: "retail counter"}

	var saved domain.LedgerEntry
	suite.mockRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.LedgerEntry)
		}).
		Return(int64(3), nil).Once()

	khata, err := suite.service.CreateKhata(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(3), khata.KhataID)
	suite.Equal("Shop Khata", khata.Name)
	suite.Equal("user-1", khata.CreatedBy)

	suite.Equal(domain.EntryKhata, saved.EntryType)
	suite.Equal(domain.StatusPaid, saved.Status)
	suite.Equal("Shop Khata", saved.Description)
	suite.WithinDuration(time.Now(), saved.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_AppendsKhataTag() {
	ctx := context.Background()
	khataID := int64(3)
	req := dto.CreateEntryRequest{
		EntryType:   domain.EntryCheque,
		Amount:      decimal.RequireFromString("250"),
		Description: "cheque from shyam",
		Notes:       "due friday",
		KhataID:     &khataID,
	}

	suite.mockRepo.On("FindKhataByID", ctx, khataID).
		Return(&domain.Khata{KhataID: khataID, Name: "Shop Khata"}, nil).Once()

	var saved domain.LedgerEntry
	suite.mockRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.LedgerEntry)
		}).
		Return(int64(21), nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(21), entry.EntryID)
	suite.Equal("due friday khata:3", saved.Notes)
	suite.Equal(domain.StatusPending, saved.Status)
	suite.True(saved.RemainingAmount.Equal(req.Amount))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_TagNotDuplicated() {
	ctx := context.Background()
	khataID := int64(3)
	req := dto.CreateEntryRequest{
		EntryType:   domain.EntryCheque,
		Amount:      decimal.RequireFromString("250"),
		Description: "cheque",
		Notes:       "khata:3 already tagged",
		KhataID:     &khataID,
	}

	suite.mockRepo.On("FindKhataByID", ctx, khataID).
		Return(&domain.Khata{KhataID: khataID}, nil).Once()

	var saved domain.LedgerEntry
	suite.mockRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.LedgerEntry)
		}).
		Return(int64(22), nil).Once()

	_, err := suite.service.CreateEntry(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("khata:3 already tagged", saved.Notes)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_MissingKhata() {
	ctx := context.Background()
	khataID := int64(99)
	req := dto.CreateEntryRequest{
		EntryType:   domain.EntryCheque,
		Amount:      decimal.RequireFromString("250"),
		Description: "cheque",
		KhataID:     &khataID,
	}

	suite.mockRepo.On("FindKhataByID", ctx, khataID).
		Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.CreateEntry(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(entry)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_RejectsKhataType() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		EntryType:   domain.EntryKhata,
		Amount:      decimal.Zero,
		Description: "sneaky book",
	}

	entry, err := suite.service.CreateEntry(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(entry)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_RejectsNegativeAmount() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		EntryType:   domain.EntryCheque,
		Amount:      decimal.RequireFromString("-5"),
		Description: "bad amount",
	}

	entry, err := suite.service.CreateEntry(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(entry)
}

func (suite *LedgerServiceTestSuite) TestListKhataEntries_ValidatesKhata() {
	ctx := context.Background()
	suite.mockRepo.On("FindKhataByID", ctx, int64(8)).
		Return(nil, apperrors.ErrNotFound).Once()

	entries, err := suite.service.ListKhataEntries(ctx, 8, 20, 0)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.Nil(entries)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListKhataEntries_FiltersByTag() {
	ctx := context.Background()
	suite.mockRepo.On("FindKhataByID", ctx, int64(8)).
		Return(&domain.Khata{KhataID: 8}, nil).Once()

	suite.mockRepo.On("ListEntries", ctx, mock.MatchedBy(func(f domain.EntryListFilter) bool {
		return f.KhataID != nil && *f.KhataID == 8 && f.Limit == 20 && f.Offset == 40
	})).Return([]domain.LedgerEntry{{EntryID: 1}}, nil).Once()

	entries, err := suite.service.ListKhataEntries(ctx, 8, 20, 40)

	suite.Require().NoError(err)
	suite.Len(entries, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCancelEntry_PaidRejected() {
	ctx := context.Background()
	entry := &domain.LedgerEntry{
		EntryID:   7,
		EntryType: domain.EntryBill,
		Status:    domain.StatusPaid,
	}

	suite.mockRepo.On("FindEntryByID", ctx, int64(7)).Return(entry, nil).Once()

	cancelled, err := suite.service.CancelEntry(ctx, 7, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(cancelled)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCancelEntry_PendingSucceeds() {
	ctx := context.Background()
	entry := &domain.LedgerEntry{
		EntryID:   7,
		EntryType: domain.EntryBill,
		Status:    domain.StatusPending,
	}

	suite.mockRepo.On("FindEntryByID", ctx, int64(7)).Return(entry, nil).Once()
	suite.mockRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Status == domain.StatusCancelled && e.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	cancelled, err := suite.service.CancelEntry(ctx, 7, "user-2")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCancelled, cancelled.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

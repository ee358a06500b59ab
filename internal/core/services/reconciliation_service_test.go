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
)

const testDefaultKhataID = int64(1)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerEntryRepository
	mockBillRepo   *MockBillRepository
	service        *services.ReconciliationService
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerEntryRepository)
	suite.mockBillRepo = new(MockBillRepository)
	suite.service = services.NewReconciliationService(suite.mockLedgerRepo, suite.mockBillRepo, testDefaultKhataID)
}

func makeBill(billID int64, billNumber string, amount, paid string, status domain.PaymentStatus) domain.Bill {
	return domain.Bill{
		BillID:     billID,
		BillNumber: billNumber,
		KhataID:    0,
		Amount:     decimal.RequireFromString(amount),
		PaidAmount: decimal.RequireFromString(paid),
		Status:     status,
		BillDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		AuditFields: domain.AuditFields{
			CreatedBy:     "user-1",
			LastUpdatedBy: "user-1",
		},
	}
}

func (suite *ReconciliationServiceTestSuite) TestSyncBills_NewBillIsMirrored() {
	ctx := context.Background()
	bill := makeBill(1, "0001", "1000", "400", domain.StatusPartial)

	suite.mockBillRepo.On("ListAllBills", ctx).Return([]domain.Bill{bill}, nil).Once()
	suite.mockLedgerRepo.On("FindEntryByReference", ctx, "BILL-0001").
		Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.LedgerEntry
	suite.mockLedgerRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.LedgerEntry)
		}).
		Return(int64(10), nil).Once()

	result, err := suite.service.SyncBills(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, result.Synced)
	suite.Equal(0, result.Skipped)
	suite.Equal(0, result.Failed)

	suite.Equal(domain.EntryBill, saved.EntryType)
	suite.Equal("BILL-0001", saved.Reference)
	suite.Equal(domain.StatusPartial, saved.Status)
	suite.True(saved.RemainingAmount.Equal(decimal.RequireFromString("600")))
	suite.Contains(saved.Notes, "khata:1")
	suite.Contains(saved.Notes, "party:none")
	suite.Contains(saved.Notes, "synced:")
	suite.Equal(bill.BillDate, saved.EntryDate)
	suite.Equal("user-1", saved.CreatedBy)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestSyncBills_BillKhataOverridesDefault() {
	ctx := context.Background()
	bill := makeBill(2, "0007", "500", "0", domain.StatusPending)
	bill.KhataID = 42
	partyID := int64(9)
	bill.PartyID = &partyID

	suite.mockBillRepo.On("ListAllBills", ctx).Return([]domain.Bill{bill}, nil).Once()
	suite.mockLedgerRepo.On("FindEntryByReference", ctx, "BILL-0007").
		Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.LedgerEntry
	suite.mockLedgerRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.LedgerEntry)
		}).
		Return(int64(11), nil).Once()

	result, err := suite.service.SyncBills(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, result.Synced)
	suite.Contains(saved.Notes, "khata:42")
	suite.NotContains(saved.Notes, "khata:1 ")
	suite.Contains(saved.Notes, "party:9")

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestSyncBills_MirroredBillIsSkipped() {
	ctx := context.Background()
	bill := makeBill(1, "0001", "1000", "1000", domain.StatusPaid)
	existing := &domain.LedgerEntry{EntryID: 10, Reference: "BILL-0001"}

	suite.mockBillRepo.On("ListAllBills", ctx).Return([]domain.Bill{bill}, nil).Once()
	suite.mockLedgerRepo.On("FindEntryByReference", ctx, "BILL-0001").Return(existing, nil).Once()

	result, err := suite.service.SyncBills(ctx)

	suite.Require().NoError(err)
	suite.Equal(0, result.Synced)
	suite.Equal(1, result.Skipped)
	suite.Equal(0, result.Failed)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestSyncBills_RowFailureDoesNotStopRun() {
	ctx := context.Background()
	failing := makeBill(1, "0001", "100", "0", domain.StatusPending)
	healthy := makeBill(2, "0002", "200", "0", domain.StatusPending)

	suite.mockBillRepo.On("ListAllBills", ctx).Return([]domain.Bill{failing, healthy}, nil).Once()
	suite.mockLedgerRepo.On("FindEntryByReference", ctx, "BILL-0001").
		Return(nil, errors.New("connection reset")).Once()
	suite.mockLedgerRepo.On("FindEntryByReference", ctx, "BILL-0002").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockLedgerRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).
		Return(int64(12), nil).Once()

	result, err := suite.service.SyncBills(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, result.Synced)
	suite.Equal(0, result.Skipped)
	suite.Equal(1, result.Failed)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestSyncBills_ListFailureIsFatal() {
	ctx := context.Background()
	suite.mockBillRepo.On("ListAllBills", ctx).Return(nil, errors.New("khatabook down")).Once()

	result, err := suite.service.SyncBills(ctx)

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *ReconciliationServiceTestSuite) TestBackfill_TagsNotesAndReference() {
	ctx := context.Background()
	entries := []domain.LedgerEntry{
		{EntryID: 5, EntryType: domain.EntryCheque, Notes: "cheque from ram", Reference: "CHQ-12"},
		{EntryID: 6, EntryType: domain.EntryBank, Notes: "", Reference: ""},
	}

	suite.mockLedgerRepo.On("FindKhataByID", ctx, testDefaultKhataID).
		Return(&domain.Khata{KhataID: testDefaultKhataID, Name: "General"}, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesWithoutKhataTag", ctx, 500).
		Return(entries, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesWithoutKhataTag", ctx, 500).
		Return([]domain.LedgerEntry{}, nil).Once()

	var updated []domain.LedgerEntry
	suite.mockLedgerRepo.On("UpdateEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			updated = append(updated, args.Get(1).(domain.LedgerEntry))
		}).
		Return(nil).Twice()

	result, err := suite.service.BackfillDefaultKhata(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, result.Tagged)
	suite.Equal(testDefaultKhataID, result.KhataID)

	suite.Require().Len(updated, 2)
	suite.Equal("cheque from ram khata:1", updated[0].Notes)
	suite.Equal("CHQ-12 khata:1", updated[0].Reference)
	suite.Equal("khata:1", updated[1].Notes)
	suite.Equal("khata:1", updated[1].Reference)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestBackfill_NothingToTag() {
	ctx := context.Background()
	suite.mockLedgerRepo.On("FindKhataByID", ctx, testDefaultKhataID).
		Return(&domain.Khata{KhataID: testDefaultKhataID, Name: "General"}, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesWithoutKhataTag", ctx, 500).
		Return([]domain.LedgerEntry{}, nil).Once()

	result, err := suite.service.BackfillDefaultKhata(ctx)

	suite.Require().NoError(err)
	suite.Equal(0, result.Tagged)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything)
}

func (suite *ReconciliationServiceTestSuite) TestBackfill_MissingDefaultKhata() {
	ctx := context.Background()
	suite.mockLedgerRepo.On("FindKhataByID", ctx, testDefaultKhataID).
		Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.BackfillDefaultKhata(ctx)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(result)
}

func (suite *ReconciliationServiceTestSuite) TestBackfill_RowFailureIsSkipped() {
	ctx := context.Background()
	entries := []domain.LedgerEntry{
		{EntryID: 5, EntryType: domain.EntryCheque},
		{EntryID: 6, EntryType: domain.EntryBank},
	}

	suite.mockLedgerRepo.On("FindKhataByID", ctx, testDefaultKhataID).
		Return(&domain.Khata{KhataID: testDefaultKhataID, Name: "General"}, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesWithoutKhataTag", ctx, 500).
		Return(entries, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesWithoutKhataTag", ctx, 500).
		Return([]domain.LedgerEntry{}, nil).Once()

	suite.mockLedgerRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.EntryID == 5
	})).Return(errors.New("row locked")).Once()
	suite.mockLedgerRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.EntryID == 6
	})).Return(nil).Once()

	result, err := suite.service.BackfillDefaultKhata(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, result.Tagged)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}

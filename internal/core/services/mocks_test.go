package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// MockLedgerEntryRepository is a mock type for the LedgerEntryRepositoryFacade interface
type MockLedgerEntryRepository struct {
	mock.Mock
}

func (m *MockLedgerEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerEntryRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerEntryRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) FindEntryByReference(ctx context.Context, reference string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) ListEntries(ctx context.Context, filter domain.EntryListFilter) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) ListEntriesWithoutKhataTag(ctx context.Context, limit int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) FindKhataByID(ctx context.Context, khataID int64) (*domain.Khata, error) {
	args := m.Called(ctx, khataID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Khata), args.Error(1)
}

func (m *MockLedgerEntryRepository) ListKhatas(ctx context.Context, limit, offset int) ([]domain.Khata, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Khata), args.Error(1)
}

func (m *MockLedgerEntryRepository) SummarizeKhata(ctx context.Context, khataID int64) (*domain.KhataSummary, error) {
	args := m.Called(ctx, khataID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KhataSummary), args.Error(1)
}

// MockBillRepository is a mock type for the BillRepositoryFacade interface
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) FindBillByID(ctx context.Context, billID int64) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) ListBills(ctx context.Context, status *domain.PaymentStatus, partyID *int64, limit, offset int) ([]domain.Bill, error) {
	args := m.Called(ctx, status, partyID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillRepository) ListAllBills(ctx context.Context) ([]domain.Bill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillRepository) FindTransactionsByBillID(ctx context.Context, billID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockBillRepository) SaveBill(ctx context.Context, bill domain.Bill) (int64, error) {
	args := m.Called(ctx, bill)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillRepository) RecordTransaction(ctx context.Context, txn domain.Transaction) (*domain.Bill, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) CancelBill(ctx context.Context, billID int64, updatedBy string) (*domain.Bill, error) {
	args := m.Called(ctx, billID, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

// MockPartyRepository is a mock type for the PartyRepositoryFacade interface
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context, kind *domain.PartyKind, limit, offset int) ([]domain.Party, error) {
	args := m.Called(ctx, kind, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) (int64, error) {
	args := m.Called(ctx, party)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

// MockAnalyticsRepository is a mock type for the AnalyticsRepository interface
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) GetInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAnalyticsRepository) GetOutstandingReceivable(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAnalyticsRepository) GetOutstandingPayable(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAnalyticsRepository) GetMonthlySales(ctx context.Context, months int) ([]domain.MonthlySalesPoint, error) {
	args := m.Called(ctx, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlySalesPoint), args.Error(1)
}

func (m *MockAnalyticsRepository) GetTopParties(ctx context.Context, limit int) ([]domain.PartyTotal, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PartyTotal), args.Error(1)
}

// MockSalesRepository is a mock type for the SalesRepositoryFacade interface
type MockSalesRepository struct {
	mock.Mock
}

func (m *MockSalesRepository) FindOrderByID(ctx context.Context, orderID int64) (*domain.SalesOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesOrder), args.Error(1)
}

func (m *MockSalesRepository) ListOrders(ctx context.Context, status *domain.PaymentStatus, limit, offset int) ([]domain.SalesOrder, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesOrder), args.Error(1)
}

func (m *MockSalesRepository) SaveOrder(ctx context.Context, order domain.SalesOrder) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSalesRepository) MarkOrderDelivered(ctx context.Context, orderID int64, userID string, now time.Time) error {
	args := m.Called(ctx, orderID, userID, now)
	return args.Error(0)
}

// MockPaymentRepository is a mock type for the PaymentRepositoryFacade interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, targetKind *domain.PaymentTarget, targetID *int64, limit, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, targetKind, targetID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) RecordPayment(ctx context.Context, payment domain.Payment) (*domain.Payment, domain.PaymentStatus, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Payment), args.Get(1).(domain.PaymentStatus), args.Error(2)
}

// MockVendorRepository is a mock type for the VendorRepositoryFacade interface
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) (int64, error) {
	args := m.Called(ctx, vendor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) DeactivateVendor(ctx context.Context, vendorID int64, userID string, now time.Time) error {
	args := m.Called(ctx, vendorID, userID, now)
	return args.Error(0)
}

func (m *MockVendorRepository) FindVendorByID(ctx context.Context, vendorID int64) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) ListVendors(ctx context.Context, limit, offset int) ([]domain.Vendor, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

// MockPurchaseRepository is a mock type for the PurchaseRepositoryFacade interface
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.ThreadPurchase) (int64, error) {
	args := m.Called(ctx, purchase)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseRepository) ReceivePurchase(ctx context.Context, purchaseID int64, userID string, now time.Time) (*domain.ThreadPurchase, error) {
	args := m.Called(ctx, purchaseID, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ThreadPurchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID int64) (*domain.ThreadPurchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ThreadPurchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchases(ctx context.Context, vendorID *int64, status *domain.PaymentStatus, limit, offset int) ([]domain.ThreadPurchase, error) {
	args := m.Called(ctx, vendorID, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ThreadPurchase), args.Error(1)
}

// MockDyeingRepository is a mock type for the DyeingRepositoryFacade interface
type MockDyeingRepository struct {
	mock.Mock
}

func (m *MockDyeingRepository) SaveDyeing(ctx context.Context, process domain.DyeingProcess) (int64, error) {
	args := m.Called(ctx, process)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDyeingRepository) ReceiveDyeing(ctx context.Context, dyeingID int64, quantityRecvKg decimal.Decimal, userID string, now time.Time) (*domain.DyeingProcess, error) {
	args := m.Called(ctx, dyeingID, quantityRecvKg, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DyeingProcess), args.Error(1)
}

func (m *MockDyeingRepository) CancelDyeing(ctx context.Context, dyeingID int64, userID string, now time.Time) (*domain.DyeingProcess, error) {
	args := m.Called(ctx, dyeingID, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DyeingProcess), args.Error(1)
}

func (m *MockDyeingRepository) FindDyeingByID(ctx context.Context, dyeingID int64) (*domain.DyeingProcess, error) {
	args := m.Called(ctx, dyeingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DyeingProcess), args.Error(1)
}

func (m *MockDyeingRepository) ListDyeing(ctx context.Context, status *domain.ProcessStatus, limit, offset int) ([]domain.DyeingProcess, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DyeingProcess), args.Error(1)
}

// MockProductionRepository is a mock type for the ProductionRepositoryFacade interface
type MockProductionRepository struct {
	mock.Mock
}

func (m *MockProductionRepository) SaveProduction(ctx context.Context, run domain.FabricProduction) (int64, error) {
	args := m.Called(ctx, run)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductionRepository) CompleteProduction(ctx context.Context, productionID int64, fabricProducedM, productionCost decimal.Decimal, userID string, now time.Time) (*domain.FabricProduction, error) {
	args := m.Called(ctx, productionID, fabricProducedM, productionCost, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FabricProduction), args.Error(1)
}

func (m *MockProductionRepository) CancelProduction(ctx context.Context, productionID int64, userID string, now time.Time) (*domain.FabricProduction, error) {
	args := m.Called(ctx, productionID, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FabricProduction), args.Error(1)
}

func (m *MockProductionRepository) FindProductionByID(ctx context.Context, productionID int64) (*domain.FabricProduction, error) {
	args := m.Called(ctx, productionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FabricProduction), args.Error(1)
}

func (m *MockProductionRepository) ListProductions(ctx context.Context, status *domain.ProcessStatus, limit, offset int) ([]domain.FabricProduction, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FabricProduction), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserAuthByUsername(ctx context.Context, username string) (*domain.UserAuth, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserAuth), args.Error(1)
}

func (m *MockUserRepository) FindUserAuthByID(ctx context.Context, userID string) (*domain.UserAuth, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserAuth), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	args := m.Called(ctx, user, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) StoreRefreshTokenHash(ctx context.Context, userID string, tokenHash string, expiryTime *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

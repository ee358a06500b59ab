package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sutratex/bunai-backend/internal/apperrors"
	"github.com/sutratex/bunai-backend/internal/core/domain"
	"github.com/sutratex/bunai-backend/internal/core/services"
	"github.com/sutratex/bunai-backend/internal/dto"
)

type ProcurementServiceTestSuite struct {
	suite.Suite
	mockPurchaseRepo *MockPurchaseRepository
	mockVendorRepo   *MockVendorRepository
	purchaseService  *services.PurchaseService
}

func (suite *ProcurementServiceTestSuite) SetupTest() {
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.purchaseService = services.NewPurchaseService(suite.mockPurchaseRepo, suite.mockVendorRepo)
}

func (suite *ProcurementServiceTestSuite) TestCreatePurchase_ComputesTotal() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		VendorID:   2,
		ThreadType: "cotton 40s",
		Color:      "white",
		QuantityKg: decimal.RequireFromString("100"),
		UnitPrice:  decimal.RequireFromString("250"),
	}

	suite.mockVendorRepo.On("FindVendorByID", ctx, int64(2)).
		Return(&domain.Vendor{VendorID: 2, Name: "Sharma Threads", IsActive: true}, nil).Once()

	var saved domain.ThreadPurchase
	suite.mockPurchaseRepo.On("SavePurchase", ctx, mock.AnythingOfType("domain.ThreadPurchase")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.ThreadPurchase)
		}).
		Return(int64(11), nil).Once()

	purchase, err := suite.purchaseService.CreatePurchase(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(11), purchase.PurchaseID)
	suite.True(saved.TotalAmount.Equal(decimal.RequireFromString("25000")))
	suite.Equal(domain.StatusPending, saved.Status)
	suite.False(saved.Received)
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *ProcurementServiceTestSuite) TestCreatePurchase_RejectsInactiveVendor() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		VendorID:   2,
		ThreadType: "cotton 40s",
		QuantityKg: decimal.RequireFromString("100"),
		UnitPrice:  decimal.RequireFromString("250"),
	}

	suite.mockVendorRepo.On("FindVendorByID", ctx, int64(2)).
		Return(&domain.Vendor{VendorID: 2, IsActive: false}, nil).Once()

	purchase, err := suite.purchaseService.CreatePurchase(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(purchase)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "SavePurchase", mock.Anything, mock.Anything)
}

func (suite *ProcurementServiceTestSuite) TestReceivePurchase_DelegatesToRepository() {
	ctx := context.Background()

	suite.mockPurchaseRepo.On("ReceivePurchase", ctx, int64(11), "user-1", mock.AnythingOfType("time.Time")).
		Return(&domain.ThreadPurchase{PurchaseID: 11, Received: true}, nil).Once()

	purchase, err := suite.purchaseService.ReceivePurchase(ctx, 11, "user-1")

	suite.Require().NoError(err)
	suite.True(purchase.Received)
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *ProcurementServiceTestSuite) TestReceivePurchase_AlreadyReceived() {
	ctx := context.Background()

	suite.mockPurchaseRepo.On("ReceivePurchase", ctx, int64(11), "user-1", mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrValidation).Once()

	purchase, err := suite.purchaseService.ReceivePurchase(ctx, 11, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(purchase)
}

func TestProcurementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProcurementServiceTestSuite))
}

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

type ProductionServiceTestSuite struct {
	suite.Suite
	mockDyeingRepo     *MockDyeingRepository
	mockProductionRepo *MockProductionRepository
	mockPurchaseRepo   *MockPurchaseRepository
	dyeingService      *services.DyeingService
	productionService  *services.ProductionService
}

func (suite *ProductionServiceTestSuite) SetupTest() {
	suite.mockDyeingRepo = new(MockDyeingRepository)
	suite.mockProductionRepo = new(MockProductionRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.dyeingService = services.NewDyeingService(suite.mockDyeingRepo, suite.mockPurchaseRepo)
	suite.productionService = services.NewProductionService(suite.mockProductionRepo, suite.mockDyeingRepo)
}

func (suite *ProductionServiceTestSuite) TestCreateDyeing_RequiresReceivedPurchase() {
	ctx := context.Background()
	req := dto.CreateDyeingRequest{
		PurchaseID:     4,
		DyeColor:       "indigo",
		QuantitySentKg: decimal.RequireFromString("50"),
		ChargePerKg:    decimal.RequireFromString("12"),
	}

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, int64(4)).
		Return(&domain.ThreadPurchase{PurchaseID: 4, QuantityKg: decimal.RequireFromString("100"), Received: false}, nil).Once()

	dyeing, err := suite.dyeingService.CreateDyeing(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(dyeing)
	suite.mockDyeingRepo.AssertNotCalled(suite.T(), "SaveDyeing", mock.Anything, mock.Anything)
}

func (suite *ProductionServiceTestSuite) TestCreateDyeing_RejectsOverSend() {
	ctx := context.Background()
	req := dto.CreateDyeingRequest{
		PurchaseID:     4,
		DyeColor:       "indigo",
		QuantitySentKg: decimal.RequireFromString("150"),
		ChargePerKg:    decimal.RequireFromString("12"),
	}

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, int64(4)).
		Return(&domain.ThreadPurchase{PurchaseID: 4, QuantityKg: decimal.RequireFromString("100"), Received: true}, nil).Once()

	dyeing, err := suite.dyeingService.CreateDyeing(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(dyeing)
	suite.mockDyeingRepo.AssertNotCalled(suite.T(), "SaveDyeing", mock.Anything, mock.Anything)
}

func (suite *ProductionServiceTestSuite) TestReceiveDyeing_DelegatesToRepository() {
	ctx := context.Background()
	recv := decimal.RequireFromString("48")

	suite.mockDyeingRepo.On("ReceiveDyeing", ctx, int64(9), recv, "user-1", mock.AnythingOfType("time.Time")).
		Return(&domain.DyeingProcess{
			DyeingID:       9,
			Status:         domain.ProcessReceived,
			QuantityRecvKg: recv,
			LossKg:         decimal.RequireFromString("2"),
		}, nil).Once()

	dyeing, err := suite.dyeingService.ReceiveDyeing(ctx, 9, dto.ReceiveDyeingRequest{QuantityRecvKg: recv}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ProcessReceived, dyeing.Status)
	suite.True(dyeing.LossKg.Equal(decimal.RequireFromString("2")))
	suite.mockDyeingRepo.AssertExpectations(suite.T())
}

func (suite *ProductionServiceTestSuite) TestCancelDyeing() {
	ctx := context.Background()

	suite.mockDyeingRepo.On("CancelDyeing", ctx, int64(9), "user-1", mock.AnythingOfType("time.Time")).
		Return(&domain.DyeingProcess{DyeingID: 9, Status: domain.ProcessCancelled}, nil).Once()

	dyeing, err := suite.dyeingService.CancelDyeing(ctx, 9, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ProcessCancelled, dyeing.Status)
	suite.mockDyeingRepo.AssertExpectations(suite.T())
}

func (suite *ProductionServiceTestSuite) TestCreateProduction_RequiresReceivedDyeing() {
	ctx := context.Background()
	dyeingID := int64(3)
	req := dto.CreateProductionRequest{
		DyeingID:     &dyeingID,
		FabricType:   "poplin",
		ThreadUsedKg: decimal.RequireFromString("40"),
	}

	suite.mockDyeingRepo.On("FindDyeingByID", ctx, dyeingID).
		Return(&domain.DyeingProcess{DyeingID: dyeingID, Status: domain.ProcessSent}, nil).Once()

	run, err := suite.productionService.CreateProduction(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(run)
	suite.mockProductionRepo.AssertNotCalled(suite.T(), "SaveProduction", mock.Anything, mock.Anything)
}

// A completed run's cost must reach the repository so a later read returns
// the same number the completion response carried.
func (suite *ProductionServiceTestSuite) TestCompleteProduction_PersistsCost() {
	ctx := context.Background()
	meters := decimal.RequireFromString("200")
	cost := decimal.RequireFromString("5000")
	now := time.Now()

	var persistedCost decimal.Decimal
	suite.mockProductionRepo.On("CompleteProduction", ctx, int64(6), meters, cost, "user-1", mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			persistedCost = args.Get(3).(decimal.Decimal)
		}).
		Return(&domain.FabricProduction{
			ProductionID:    6,
			Status:          domain.ProcessCompleted,
			FabricProducedM: meters,
			ProductionCost:  cost,
			CompletedDate:   &now,
		}, nil).Once()

	req := dto.CompleteProductionRequest{FabricProducedM: meters, ProductionCost: cost}
	run, err := suite.productionService.CompleteProduction(ctx, 6, req, "user-1")

	suite.Require().NoError(err)
	suite.True(persistedCost.Equal(cost))
	suite.True(run.ProductionCost.Equal(cost))
	suite.Equal(domain.ProcessCompleted, run.Status)
	suite.mockProductionRepo.AssertExpectations(suite.T())
}

func (suite *ProductionServiceTestSuite) TestCompleteProduction_ErrorPassedThrough() {
	ctx := context.Background()
	meters := decimal.RequireFromString("200")

	suite.mockProductionRepo.On("CompleteProduction", ctx, int64(6), meters, decimal.Zero, "user-1", mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrValidation).Once()

	run, err := suite.productionService.CompleteProduction(ctx, 6, dto.CompleteProductionRequest{FabricProducedM: meters, ProductionCost: decimal.Zero}, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(run)
}

func (suite *ProductionServiceTestSuite) TestCancelProduction() {
	ctx := context.Background()

	suite.mockProductionRepo.On("CancelProduction", ctx, int64(6), "user-1", mock.AnythingOfType("time.Time")).
		Return(&domain.FabricProduction{ProductionID: 6, Status: domain.ProcessCancelled}, nil).Once()

	run, err := suite.productionService.CancelProduction(ctx, 6, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ProcessCancelled, run.Status)
	suite.mockProductionRepo.AssertExpectations(suite.T())
}

func TestProductionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductionServiceTestSuite))
}

package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sutratex/bunai-backend/internal/core/domain"
	"github.com/sutratex/bunai-backend/internal/core/services"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAnalyticsRepository
	service  *services.AnalyticsService
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAnalyticsRepository)
	suite.service = services.NewAnalyticsService(suite.mockRepo)
}

func (suite *AnalyticsServiceTestSuite) TestGetDashboard_AllSectionsPopulated() {
	ctx := context.Background()

	suite.mockRepo.On("GetInventoryValue", ctx).
		Return(decimal.RequireFromString("12000"), nil).Once()
	suite.mockRepo.On("GetOutstandingReceivable", ctx).
		Return(decimal.RequireFromString("3400"), nil).Once()
	suite.mockRepo.On("GetOutstandingPayable", ctx).
		Return(decimal.RequireFromString("1800"), nil).Once()
	suite.mockRepo.On("GetMonthlySales", ctx, 12).
		Return([]domain.MonthlySalesPoint{{Month: "2026-08", Total: decimal.RequireFromString("900")}}, nil).Once()
	suite.mockRepo.On("GetTopParties", ctx, 5).
		Return([]domain.PartyTotal{{PartyID: 3, Name: "Ram Traders", Total: decimal.RequireFromString("700")}}, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx)

	suite.Require().NoError(err)
	suite.False(dashboard.PartialData)
	suite.True(dashboard.InventoryValue.Equal(decimal.RequireFromString("12000")))
	suite.True(dashboard.OutstandingReceivable.Equal(decimal.RequireFromString("3400")))
	suite.True(dashboard.OutstandingPayable.Equal(decimal.RequireFromString("1800")))
	suite.Len(dashboard.MonthlySales, 1)
	suite.Len(dashboard.TopParties, 1)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestGetDashboard_FailedSectionFlagsPartial() {
	ctx := context.Background()

	suite.mockRepo.On("GetInventoryValue", ctx).
		Return(decimal.Zero, errors.New("relation does not exist")).Once()
	suite.mockRepo.On("GetOutstandingReceivable", ctx).
		Return(decimal.RequireFromString("3400"), nil).Once()
	suite.mockRepo.On("GetOutstandingPayable", ctx).
		Return(decimal.RequireFromString("1800"), nil).Once()
	suite.mockRepo.On("GetMonthlySales", ctx, 12).
		Return([]domain.MonthlySalesPoint{}, nil).Once()
	suite.mockRepo.On("GetTopParties", ctx, 5).
		Return([]domain.PartyTotal{}, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx)

	suite.Require().NoError(err)
	suite.True(dashboard.PartialData)
	suite.True(dashboard.InventoryValue.IsZero())
	suite.True(dashboard.OutstandingReceivable.Equal(decimal.RequireFromString("3400")))
}

func (suite *AnalyticsServiceTestSuite) TestGetDashboard_AllSectionsFailed() {
	ctx := context.Background()
	dbDown := errors.New("connection refused")

	suite.mockRepo.On("GetInventoryValue", ctx).Return(decimal.Zero, dbDown).Once()
	suite.mockRepo.On("GetOutstandingReceivable", ctx).Return(decimal.Zero, dbDown).Once()
	suite.mockRepo.On("GetOutstandingPayable", ctx).Return(decimal.Zero, dbDown).Once()
	suite.mockRepo.On("GetMonthlySales", ctx, 12).Return(nil, dbDown).Once()
	suite.mockRepo.On("GetTopParties", ctx, 5).Return(nil, dbDown).Once()

	dashboard, err := suite.service.GetDashboard(ctx)

	suite.Require().NoError(err)
	suite.True(dashboard.PartialData)
	suite.NotNil(dashboard.MonthlySales)
	suite.NotNil(dashboard.TopParties)
	suite.Empty(dashboard.MonthlySales)
	suite.Empty(dashboard.TopParties)
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

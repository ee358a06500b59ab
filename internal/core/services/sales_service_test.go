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

type SalesServiceTestSuite struct {
	suite.Suite
	mockSalesRepo   *MockSalesRepository
	mockPaymentRepo *MockPaymentRepository
	salesService    *services.SalesService
	paymentService  *services.PaymentService
}

func (suite *SalesServiceTestSuite) SetupTest() {
	suite.mockSalesRepo = new(MockSalesRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.salesService = services.NewSalesService(suite.mockSalesRepo)
	suite.paymentService = services.NewPaymentService(suite.mockPaymentRepo)
}

func (suite *SalesServiceTestSuite) TestCreateOrder_PricesLines() {
	ctx := context.Background()
	req := dto.CreateSalesOrderRequest{
		CustomerName: "Gupta Fabrics",
		Items: []dto.SalesOrderItemRequest{
			{ItemID: 1, Quantity: decimal.RequireFromString("10"), UnitPrice: decimal.RequireFromString("150")},
			{ItemID: 2, Quantity: decimal.RequireFromString("5"), UnitPrice: decimal.RequireFromString("90")},
		},
	}

	var saved domain.SalesOrder
	suite.mockSalesRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.SalesOrder")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.SalesOrder)
		}).
		Return(int64(7), nil).Once()
	suite.mockSalesRepo.On("FindOrderByID", ctx, int64(7)).
		Return(&domain.SalesOrder{OrderID: 7, OrderNumber: "SO-7"}, nil).Once()

	order, err := suite.salesService.CreateOrder(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("SO-7", order.OrderNumber)
	suite.True(saved.TotalAmount.Equal(decimal.RequireFromString("1950")))
	suite.Require().Len(saved.Items, 2)
	suite.True(saved.Items[0].LineTotal.Equal(decimal.RequireFromString("1500")))
	suite.Equal(domain.StatusPending, saved.Status)
	suite.Equal(domain.DeliveryPending, saved.DeliveryStatus)

	suite.mockSalesRepo.AssertExpectations(suite.T())
}

func (suite *SalesServiceTestSuite) TestCreateOrder_RejectsNonPositiveQuantity() {
	ctx := context.Background()
	req := dto.CreateSalesOrderRequest{
		CustomerName: "Gupta Fabrics",
		Items: []dto.SalesOrderItemRequest{
			{ItemID: 1, Quantity: decimal.Zero, UnitPrice: decimal.RequireFromString("150")},
		},
	}

	order, err := suite.salesService.CreateOrder(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(order)
	suite.mockSalesRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *SalesServiceTestSuite) TestCreateOrder_ShortStockPassedThrough() {
	ctx := context.Background()
	req := dto.CreateSalesOrderRequest{
		CustomerName: "Gupta Fabrics",
		Items: []dto.SalesOrderItemRequest{
			{ItemID: 1, Quantity: decimal.RequireFromString("1000"), UnitPrice: decimal.RequireFromString("150")},
		},
	}

	suite.mockSalesRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.SalesOrder")).
		Return(int64(0), apperrors.ErrValidation).Once()

	order, err := suite.salesService.CreateOrder(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(order)
}

func (suite *SalesServiceTestSuite) TestRecordPayment_ReturnsSettledStatus() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		TargetKind: domain.TargetSale,
		TargetID:   7,
		Amount:     decimal.RequireFromString("1950"),
		Method:     domain.MethodBankTransfer,
		Reference:  "UTR-9981",
	}

	var recorded domain.Payment
	suite.mockPaymentRepo.On("RecordPayment", ctx, mock.AnythingOfType("domain.Payment")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(domain.Payment)
		}).
		Return(&domain.Payment{PaymentID: 31, TargetKind: domain.TargetSale, TargetID: 7}, domain.StatusPaid, nil).Once()

	payment, status, err := suite.paymentService.RecordPayment(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(31), payment.PaymentID)
	suite.Equal(domain.StatusPaid, status)
	suite.Equal(domain.TargetSale, recorded.TargetKind)
	suite.Equal("UTR-9981", recorded.Reference)
	suite.Equal("user-1", recorded.CreatedBy)

	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *SalesServiceTestSuite) TestRecordPayment_MissingTarget() {
	ctx := context.Background()
	req := dto.RecordPaymentRequest{
		TargetKind: domain.TargetPurchase,
		TargetID:   404,
		Amount:     decimal.RequireFromString("100"),
		Method:     domain.MethodCash,
	}

	suite.mockPaymentRepo.On("RecordPayment", ctx, mock.AnythingOfType("domain.Payment")).
		Return(nil, domain.PaymentStatus(""), apperrors.ErrNotFound).Once()

	payment, status, err := suite.paymentService.RecordPayment(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.Nil(payment)
	suite.Empty(status)
}

func TestSalesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalesServiceTestSuite))
}

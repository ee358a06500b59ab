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

type BillServiceTestSuite struct {
	suite.Suite
	mockBillRepo  *MockBillRepository
	mockPartyRepo *MockPartyRepository
	service       *services.BillService
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.service = services.NewBillService(suite.mockBillRepo, suite.mockPartyRepo, testDefaultKhataID)
}

func (suite *BillServiceTestSuite) TestCreateBill_DefaultsKhata() {
	ctx := context.Background()
	req := dto.CreateBillRequest{
		BillNumber: "0042",
		Amount:     decimal.RequireFromString("1500"),
	}

	var saved domain.Bill
	suite.mockBillRepo.On("SaveBill", ctx, mock.AnythingOfType("domain.Bill")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Bill)
		}).
		Return(int64(11), nil).Once()

	bill, err := suite.service.CreateBill(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(11), bill.BillID)
	suite.Equal(testDefaultKhataID, saved.KhataID)
	suite.Equal(domain.StatusPending, saved.Status)
	suite.Nil(saved.PartyID)

	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestCreateBill_ExplicitKhataKept() {
	ctx := context.Background()
	khataID := int64(42)
	req := dto.CreateBillRequest{
		BillNumber: "0043",
		Amount:     decimal.RequireFromString("800"),
		KhataID:    &khataID,
	}

	var saved domain.Bill
	suite.mockBillRepo.On("SaveBill", ctx, mock.AnythingOfType("domain.Bill")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Bill)
		}).
		Return(int64(12), nil).Once()

	_, err := suite.service.CreateBill(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(42), saved.KhataID)
}

func (suite *BillServiceTestSuite) TestCreateBill_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateBillRequest{
		BillNumber: "0044",
		Amount:     decimal.Zero,
	}

	bill, err := suite.service.CreateBill(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(bill)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SaveBill", mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestCreateBill_MissingParty() {
	ctx := context.Background()
	partyID := int64(77)
	req := dto.CreateBillRequest{
		BillNumber: "0045",
		Amount:     decimal.RequireFromString("100"),
		PartyID:    &partyID,
	}

	suite.mockPartyRepo.On("FindPartyByID", ctx, partyID).
		Return(nil, apperrors.ErrNotFound).Once()

	bill, err := suite.service.CreateBill(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.Nil(bill)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "SaveBill", mock.Anything, mock.Anything)
}

func (suite *BillServiceTestSuite) TestCreateBill_DuplicateNumberPassedThrough() {
	ctx := context.Background()
	req := dto.CreateBillRequest{
		BillNumber: "0042",
		Amount:     decimal.RequireFromString("1500"),
	}

	suite.mockBillRepo.On("SaveBill", ctx, mock.AnythingOfType("domain.Bill")).
		Return(int64(0), apperrors.ErrDuplicate).Once()

	bill, err := suite.service.CreateBill(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrDuplicate))
	suite.Nil(bill)
}

func (suite *BillServiceTestSuite) TestRecordTransaction_DefaultsDirectionAndMethod() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{
		Amount:    decimal.RequireFromString("500"),
		Narration: "part payment",
	}

	settled := &domain.Bill{
		BillID:     11,
		Amount:     decimal.RequireFromString("1500"),
		PaidAmount: decimal.RequireFromString("500"),
		Status:     domain.StatusPartial,
	}

	var recorded domain.Transaction
	suite.mockBillRepo.On("RecordTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(domain.Transaction)
		}).
		Return(settled, nil).Once()

	bill, err := suite.service.RecordTransaction(ctx, 11, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPartial, bill.Status)
	suite.Equal(domain.DirectionIn, recorded.Direction)
	suite.Equal(domain.MethodCash, recorded.Method)
	suite.Equal(int64(11), recorded.BillID)
	suite.Equal("part payment", recorded.Narration)

	suite.mockBillRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestRecordTransaction_ExplicitValuesKept() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{
		Amount:    decimal.RequireFromString("200"),
		Direction: domain.DirectionOut,
		Method:    domain.MethodCheque,
	}

	var recorded domain.Transaction
	suite.mockBillRepo.On("RecordTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(domain.Transaction)
		}).
		Return(&domain.Bill{BillID: 11, Status: domain.StatusPartial}, nil).Once()

	_, err := suite.service.RecordTransaction(ctx, 11, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.DirectionOut, recorded.Direction)
	suite.Equal(domain.MethodCheque, recorded.Method)
}

func (suite *BillServiceTestSuite) TestListTransactions_BillMustExist() {
	ctx := context.Background()
	suite.mockBillRepo.On("FindBillByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	txns, err := suite.service.ListTransactions(ctx, 99)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.Nil(txns)
	suite.mockBillRepo.AssertNotCalled(suite.T(), "FindTransactionsByBillID", mock.Anything, mock.Anything)
}

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sutratex/bunai-backend/internal/apperrors"
	"github.com/sutratex/bunai-backend/internal/core/domain"
	portsrepo "github.com/sutratex/bunai-backend/internal/core/ports/repositories"
	"github.com/sutratex/bunai-backend/internal/dto"
	"github.com/sutratex/bunai-backend/internal/middleware"
)

// SalesService manages fabric sales orders.
type SalesService struct {
	salesRepo portsrepo.SalesRepositoryFacade
}

func NewSalesService(salesRepo portsrepo.SalesRepositoryFacade) *SalesService {
	return &SalesService{salesRepo: salesRepo}
}

// CreateOrder prices the lines and hands the repository the whole order; it
// commits order, items and stock decrements in one transaction, so short
// stock on any line rejects the order as a unit.
func (s *SalesService) CreateOrder(ctx context.Context, req dto.CreateSalesOrderRequest, creatorUserID string) (*domain.SalesOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	orderDate := now
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	total := decimal.Zero
	items := make([]domain.SalesOrderItem, len(req.Items))
	for i, line := range req.Items {
		if !line.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: line quantity must be positive", apperrors.ErrValidation)
		}
		if line.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: line unit price cannot be negative", apperrors.ErrValidation)
		}
		lineTotal := line.Quantity.Mul(line.UnitPrice)
		items[i] = domain.SalesOrderItem{
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: lineTotal,
		}
		total = total.Add(lineTotal)
	}

	order := domain.SalesOrder{
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		TotalAmount:     total,
		Status:          domain.StatusPending,
		DeliveryStatus:  domain.DeliveryPending,
		OrderDate:       orderDate,
		Items:           items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	orderID, err := s.salesRepo.SaveOrder(ctx, order)
	if err != nil {
		logger.Error("Failed to save sales order", slog.String("error", err.Error()))
		return nil, err
	}

	// Re-read so the response carries the assigned order number and line ids.
	saved, err := s.salesRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	logger.Info("Sales order created",
		slog.Int64("order_id", orderID),
		slog.String("order_number", saved.OrderNumber),
		slog.String("total", saved.TotalAmount.String()),
	)
	return saved, nil
}

func (s *SalesService) GetOrderByID(ctx context.Context, orderID int64) (*domain.SalesOrder, error) {
	return s.salesRepo.FindOrderByID(ctx, orderID)
}

func (s *SalesService) ListOrders(ctx context.Context, status *domain.PaymentStatus, limit, offset int) ([]domain.SalesOrder, error) {
	orders, err := s.salesRepo.ListOrders(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales orders: %w", err)
	}
	return orders, nil
}

func (s *SalesService) MarkDelivered(ctx context.Context, orderID int64, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.salesRepo.MarkOrderDelivered(ctx, orderID, updaterUserID, time.Now()); err != nil {
		return err
	}

	logger.Info("Sales order delivered", slog.Int64("order_id", orderID))
	return nil
}

// PaymentService records payments against sales orders and thread purchases.
type PaymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
}

func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo}
}

// RecordPayment persists the payment; the repository settles the target's
// paid amount and status in the same transaction.
func (s *PaymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, creatorUserID string) (*domain.Payment, domain.PaymentStatus, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	payment := domain.Payment{
		TargetKind: req.TargetKind,
		TargetID:   req.TargetID,
		Amount:     req.Amount,
		Method:     req.Method,
		Reference:  req.Reference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	saved, status, err := s.paymentRepo.RecordPayment(ctx, payment)
	if err != nil {
		return nil, "", err
	}

	logger.Info("Payment recorded",
		slog.Int64("payment_id", saved.PaymentID),
		slog.String("target_kind", string(saved.TargetKind)),
		slog.Int64("target_id", saved.TargetID),
		slog.String("new_status", string(status)),
	)
	return saved, status, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, targetKind *domain.PaymentTarget, targetID *int64, limit, offset int) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx, targetKind, targetID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

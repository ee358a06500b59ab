package services

import (
	"context"
	"log/slog"

	"github.com/sutratex/bunai-backend/internal/core/domain"
	portsrepo "github.com/sutratex/bunai-backend/internal/core/ports/repositories"
	"github.com/sutratex/bunai-backend/internal/middleware"
)

const (
	dashboardMonths     = 12
	dashboardTopParties = 5
)

// AnalyticsService assembles the dashboard. Each aggregate is queried
// independently; a failed section is zeroed and flagged through PartialData
// instead of failing the whole request.
type AnalyticsService struct {
	analyticsRepo portsrepo.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo portsrepo.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo}
}

func (s *AnalyticsService) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	dashboard := &domain.Dashboard{
		MonthlySales: []domain.MonthlySalesPoint{},
		TopParties:   []domain.PartyTotal{},
	}

	inventoryValue, err := s.analyticsRepo.GetInventoryValue(ctx)
	if err != nil {
		logger.Warn("Dashboard inventory value failed", slog.String("error", err.Error()))
		dashboard.PartialData = true
	} else {
		dashboard.InventoryValue = inventoryValue
	}

	receivable, err := s.analyticsRepo.GetOutstandingReceivable(ctx)
	if err != nil {
		logger.Warn("Dashboard outstanding receivable failed", slog.String("error", err.Error()))
		dashboard.PartialData = true
	} else {
		dashboard.OutstandingReceivable = receivable
	}

	payable, err := s.analyticsRepo.GetOutstandingPayable(ctx)
	if err != nil {
		logger.Warn("Dashboard outstanding payable failed", slog.String("error", err.Error()))
		dashboard.PartialData = true
	} else {
		dashboard.OutstandingPayable = payable
	}

	monthlySales, err := s.analyticsRepo.GetMonthlySales(ctx, dashboardMonths)
	if err != nil {
		logger.Warn("Dashboard monthly sales failed", slog.String("error", err.Error()))
		dashboard.PartialData = true
	} else if monthlySales != nil {
		dashboard.MonthlySales = monthlySales
	}

	topParties, err := s.analyticsRepo.GetTopParties(ctx, dashboardTopParties)
	if err != nil {
		logger.Warn("Dashboard top parties failed", slog.String("error", err.Error()))
		dashboard.PartialData = true
	} else if topParties != nil {
		dashboard.TopParties = topParties
	}

	return dashboard, nil
}

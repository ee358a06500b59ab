package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sutratex/bunai-backend/internal/apperrors"
	"github.com/sutratex/bunai-backend/internal/core/domain"
	portsrepo "github.com/sutratex/bunai-backend/internal/core/ports/repositories"
	"github.com/sutratex/bunai-backend/internal/dto"
	"github.com/sutratex/bunai-backend/internal/middleware"
)

// DyeingService manages thread lots sent out for dyeing.
type DyeingService struct {
	dyeingRepo   portsrepo.DyeingRepositoryFacade
	purchaseRepo portsrepo.PurchaseReader
}

func NewDyeingService(dyeingRepo portsrepo.DyeingRepositoryFacade, purchaseRepo portsrepo.PurchaseReader) *DyeingService {
	return &DyeingService{
		dyeingRepo:   dyeingRepo,
		purchaseRepo: purchaseRepo,
	}
}

func (s *DyeingService) CreateDyeing(ctx context.Context, req dto.CreateDyeingRequest, creatorUserID string) (*domain.DyeingProcess, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.QuantitySentKg.IsPositive() {
		return nil, fmt.Errorf("%w: sent quantity must be positive", apperrors.ErrValidation)
	}
	if req.ChargePerKg.IsNegative() {
		return nil, fmt.Errorf("%w: charge per kg cannot be negative", apperrors.ErrValidation)
	}

	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, req.PurchaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: purchase %d does not exist", apperrors.ErrValidation, req.PurchaseID)
		}
		return nil, err
	}
	if !purchase.Received {
		return nil, fmt.Errorf("%w: purchase %d has not been received yet", apperrors.ErrValidation, req.PurchaseID)
	}
	if req.QuantitySentKg.GreaterThan(purchase.QuantityKg) {
		return nil, fmt.Errorf("%w: cannot send more than the purchased quantity", apperrors.ErrValidation)
	}

	now := time.Now()
	sentDate := now
	if req.SentDate != nil {
		sentDate = *req.SentDate
	}

	process := domain.DyeingProcess{
		PurchaseID:     req.PurchaseID,
		DyeColor:       req.DyeColor,
		QuantitySentKg: req.QuantitySentKg,
		ChargePerKg:    req.ChargePerKg,
		Status:         domain.ProcessSent,
		SentDate:       sentDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	dyeingID, err := s.dyeingRepo.SaveDyeing(ctx, process)
	if err != nil {
		logger.Error("Failed to save dyeing process", slog.String("error", err.Error()))
		return nil, err
	}
	process.DyeingID = dyeingID

	logger.Info("Dyeing lot sent", slog.Int64("dyeing_id", dyeingID), slog.String("color", req.DyeColor))
	return &process, nil
}

func (s *DyeingService) GetDyeingByID(ctx context.Context, dyeingID int64) (*domain.DyeingProcess, error) {
	return s.dyeingRepo.FindDyeingByID(ctx, dyeingID)
}

func (s *DyeingService) ListDyeing(ctx context.Context, status *domain.ProcessStatus, limit, offset int) ([]domain.DyeingProcess, error) {
	processes, err := s.dyeingRepo.ListDyeing(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list dyeing processes: %w", err)
	}
	return processes, nil
}

// ReceiveDyeing closes the lot and books the dyed thread into inventory. The
// repository does both writes in one transaction so the closed lot and its
// stock line land together.
func (s *DyeingService) ReceiveDyeing(ctx context.Context, dyeingID int64, req dto.ReceiveDyeingRequest, updaterUserID string) (*domain.DyeingProcess, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	process, err := s.dyeingRepo.ReceiveDyeing(ctx, dyeingID, req.QuantityRecvKg, updaterUserID, time.Now())
	if err != nil {
		return nil, err
	}

	logger.Info("Dyeing lot received",
		slog.Int64("dyeing_id", dyeingID),
		slog.String("loss_kg", process.LossKg.String()),
	)
	return process, nil
}

// CancelDyeing abandons a SENT lot without booking any stock.
func (s *DyeingService) CancelDyeing(ctx context.Context, dyeingID int64, updaterUserID string) (*domain.DyeingProcess, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	process, err := s.dyeingRepo.CancelDyeing(ctx, dyeingID, updaterUserID, time.Now())
	if err != nil {
		return nil, err
	}

	logger.Info("Dyeing lot cancelled", slog.Int64("dyeing_id", dyeingID))
	return process, nil
}

// ProductionService manages fabric production runs.
type ProductionService struct {
	productionRepo portsrepo.ProductionRepositoryFacade
	dyeingRepo     portsrepo.DyeingReader
}

func NewProductionService(productionRepo portsrepo.ProductionRepositoryFacade, dyeingRepo portsrepo.DyeingReader) *ProductionService {
	return &ProductionService{
		productionRepo: productionRepo,
		dyeingRepo:     dyeingRepo,
	}
}

func (s *ProductionService) CreateProduction(ctx context.Context, req dto.CreateProductionRequest, creatorUserID string) (*domain.FabricProduction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.ThreadUsedKg.IsPositive() {
		return nil, fmt.Errorf("%w: thread used must be positive", apperrors.ErrValidation)
	}
	if req.DyeingID != nil {
		dyeing, err := s.dyeingRepo.FindDyeingByID(ctx, *req.DyeingID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: dyeing process %d does not exist", apperrors.ErrValidation, *req.DyeingID)
			}
			return nil, err
		}
		if dyeing.Status != domain.ProcessReceived {
			return nil, fmt.Errorf("%w: dyeing process %d has not been received", apperrors.ErrValidation, *req.DyeingID)
		}
	}

	now := time.Now()
	startDate := now
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	run := domain.FabricProduction{
		DyeingID:     req.DyeingID,
		FabricType:   req.FabricType,
		Dimensions:   req.Dimensions,
		ThreadUsedKg: req.ThreadUsedKg,
		Status:       domain.ProcessInProgress,
		StartDate:    startDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	productionID, err := s.productionRepo.SaveProduction(ctx, run)
	if err != nil {
		logger.Error("Failed to save production run", slog.String("error", err.Error()))
		return nil, err
	}
	run.ProductionID = productionID

	logger.Info("Production run started", slog.Int64("production_id", productionID), slog.String("fabric_type", req.FabricType))
	return &run, nil
}

func (s *ProductionService) GetProductionByID(ctx context.Context, productionID int64) (*domain.FabricProduction, error) {
	return s.productionRepo.FindProductionByID(ctx, productionID)
}

func (s *ProductionService) ListProductions(ctx context.Context, status *domain.ProcessStatus, limit, offset int) ([]domain.FabricProduction, error) {
	runs, err := s.productionRepo.ListProductions(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list production runs: %w", err)
	}
	return runs, nil
}

// CompleteProduction closes the run and books the fabric into inventory.
// The repository persists the produced meters and cost and inserts the
// stock line in one transaction; unit cost is production cost spread over
// the produced meters.
func (s *ProductionService) CompleteProduction(ctx context.Context, productionID int64, req dto.CompleteProductionRequest, updaterUserID string) (*domain.FabricProduction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	run, err := s.productionRepo.CompleteProduction(ctx, productionID, req.FabricProducedM, req.ProductionCost, updaterUserID, time.Now())
	if err != nil {
		return nil, err
	}

	logger.Info("Production run completed",
		slog.Int64("production_id", productionID),
		slog.String("fabric_produced_m", run.FabricProducedM.String()),
	)
	return run, nil
}

// CancelProduction abandons an IN_PROGRESS run without booking any fabric.
func (s *ProductionService) CancelProduction(ctx context.Context, productionID int64, updaterUserID string) (*domain.FabricProduction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	run, err := s.productionRepo.CancelProduction(ctx, productionID, updaterUserID, time.Now())
	if err != nil {
		return nil, err
	}

	logger.Info("Production run cancelled", slog.Int64("production_id", productionID))
	return run, nil
}

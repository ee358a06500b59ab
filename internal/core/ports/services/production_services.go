package services

import (
	"context"

	"github.com/sutratex/bunai-backend/internal/core/domain"
	"github.com/sutratex/bunai-backend/internal/dto"
)

// DyeingSvcFacade manages thread lots sent out for dyeing.
type DyeingSvcFacade interface {
	// CreateDyeing validates the source purchase and opens a SENT lot.
	CreateDyeing(ctx context.Context, req dto.CreateDyeingRequest, creatorUserID string) (*domain.DyeingProcess, error)

	GetDyeingByID(ctx context.Context, dyeingID int64) (*domain.DyeingProcess, error)
	ListDyeing(ctx context.Context, status *domain.ProcessStatus, limit, offset int) ([]domain.DyeingProcess, error)

	// ReceiveDyeing closes the lot with the returned quantity; loss and
	// total charge are computed from it.
	ReceiveDyeing(ctx context.Context, dyeingID int64, req dto.ReceiveDyeingRequest, updaterUserID string) (*domain.DyeingProcess, error)

	// CancelDyeing abandons a SENT lot.
	CancelDyeing(ctx context.Context, dyeingID int64, updaterUserID string) (*domain.DyeingProcess, error)
}

// ProductionSvcFacade manages fabric production runs.
type ProductionSvcFacade interface {
	CreateProduction(ctx context.Context, req dto.CreateProductionRequest, creatorUserID string) (*domain.FabricProduction, error)
	GetProductionByID(ctx context.Context, productionID int64) (*domain.FabricProduction, error)
	ListProductions(ctx context.Context, status *domain.ProcessStatus, limit, offset int) ([]domain.FabricProduction, error)

	// CompleteProduction closes the run and books the produced fabric into
	// inventory.
	CompleteProduction(ctx context.Context, productionID int64, req dto.CompleteProductionRequest, updaterUserID string) (*domain.FabricProduction, error)

	// CancelProduction abandons an IN_PROGRESS run.
	CancelProduction(ctx context.Context, productionID int64, updaterUserID string) (*domain.FabricProduction, error)
}

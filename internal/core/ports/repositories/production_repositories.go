package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// DyeingReader defines read operations for dyeing lots.
type DyeingReader interface {
	FindDyeingByID(ctx context.Context, dyeingID int64) (*domain.DyeingProcess, error)
	ListDyeing(ctx context.Context, status *domain.ProcessStatus, limit, offset int) ([]domain.DyeingProcess, error)
}

// DyeingWriter defines write operations for dyeing lots.
type DyeingWriter interface {
	SaveDyeing(ctx context.Context, process domain.DyeingProcess) (int64, error)

	// ReceiveDyeing records the returned quantity, computes the loss and
	// total charge, moves the lot to RECEIVED, and inserts the dyed thread
	// stock line in the same transaction. Lots not in SENT state yield
	// ErrValidation.
	ReceiveDyeing(ctx context.Context, dyeingID int64, quantityRecvKg decimal.Decimal, userID string, now time.Time) (*domain.DyeingProcess, error)

	// CancelDyeing abandons a SENT lot. Lots in any other state yield
	// ErrValidation.
	CancelDyeing(ctx context.Context, dyeingID int64, userID string, now time.Time) (*domain.DyeingProcess, error)
}

// DyeingRepositoryFacade combines all dyeing repository interfaces.
type DyeingRepositoryFacade interface {
	DyeingReader
	DyeingWriter
}

// ProductionReader defines read operations for fabric production runs.
type ProductionReader interface {
	FindProductionByID(ctx context.Context, productionID int64) (*domain.FabricProduction, error)
	ListProductions(ctx context.Context, status *domain.ProcessStatus, limit, offset int) ([]domain.FabricProduction, error)
}

// ProductionWriter defines write operations for fabric production runs.
type ProductionWriter interface {
	SaveProduction(ctx context.Context, run domain.FabricProduction) (int64, error)

	// CompleteProduction records the produced meters and cost, moves the
	// run to COMPLETED, and inserts the fabric stock line in the same
	// transaction. Runs not IN_PROGRESS yield ErrValidation.
	CompleteProduction(ctx context.Context, productionID int64, fabricProducedM, productionCost decimal.Decimal, userID string, now time.Time) (*domain.FabricProduction, error)

	// CancelProduction abandons an IN_PROGRESS run. Runs in any other
	// state yield ErrValidation.
	CancelProduction(ctx context.Context, productionID int64, userID string, now time.Time) (*domain.FabricProduction, error)
}

// ProductionRepositoryFacade combines all production repository interfaces.
type ProductionRepositoryFacade interface {
	ProductionReader
	ProductionWriter
}

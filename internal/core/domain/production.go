package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessStatus tracks dyeing lots and production runs.
type ProcessStatus string

const (
	ProcessSent       ProcessStatus = "SENT"
	ProcessInProgress ProcessStatus = "IN_PROGRESS"
	ProcessReceived   ProcessStatus = "RECEIVED"
	ProcessCompleted  ProcessStatus = "COMPLETED"
	ProcessCancelled  ProcessStatus = "CANCELLED"
)

// DyeingProcess tracks a lot of thread sent out for dyeing. Loss is the
// difference between what was sent and what came back.
type DyeingProcess struct {
	DyeingID         int64           `json:"dyeingID"`
	PurchaseID       int64           `json:"purchaseID"`
	DyeColor         string          `json:"dyeColor"`
	QuantitySentKg   decimal.Decimal `json:"quantitySentKg"`
	QuantityRecvKg   decimal.Decimal `json:"quantityRecvKg"`
	LossKg           decimal.Decimal `json:"lossKg"`
	ChargePerKg      decimal.Decimal `json:"chargePerKg"`
	TotalCharge      decimal.Decimal `json:"totalCharge"`
	Status           ProcessStatus   `json:"status"`
	SentDate         time.Time       `json:"sentDate"`
	ReceivedDate     *time.Time      `json:"receivedDate,omitempty"`
	AuditFields
}

// FabricProduction tracks a weaving run turning (usually dyed) thread into
// fabric. DyeingID is nullable: grey fabric is woven from undyed thread.
type FabricProduction struct {
	ProductionID     int64           `json:"productionID"`
	DyeingID         *int64          `json:"dyeingID,omitempty"`
	FabricType       string          `json:"fabricType"`
	Dimensions       string          `json:"dimensions"` // e.g. "44 inch"
	ThreadUsedKg     decimal.Decimal `json:"threadUsedKg"`
	FabricProducedM  decimal.Decimal `json:"fabricProducedM"`
	ProductionCost   decimal.Decimal `json:"productionCost"`
	Status           ProcessStatus   `json:"status"`
	StartDate        time.Time       `json:"startDate"`
	CompletedDate    *time.Time      `json:"completedDate,omitempty"`
	AuditFields
}

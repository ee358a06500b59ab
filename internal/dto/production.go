package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// CreateDyeingRequest defines a thread lot sent out for dyeing.
type CreateDyeingRequest struct {
	PurchaseID     int64           `json:"purchaseId" binding:"required"`
	DyeColor       string          `json:"dyeColor" binding:"required"`
	QuantitySentKg decimal.Decimal `json:"quantitySentKg" binding:"required"`
	ChargePerKg    decimal.Decimal `json:"chargePerKg" binding:"required"`
	SentDate       *time.Time      `json:"sentDate"`
}

// ReceiveDyeingRequest closes a dyeing lot with the quantity that came back.
type ReceiveDyeingRequest struct {
	QuantityRecvKg decimal.Decimal `json:"quantityRecvKg" binding:"required"`
}

// DyeingResponse defines the data returned for a dyeing process.
type DyeingResponse struct {
	DyeingID       int64           `json:"dyeingID"`
	PurchaseID     int64           `json:"purchaseID"`
	DyeColor       string          `json:"dyeColor"`
	QuantitySentKg decimal.Decimal `json:"quantitySentKg"`
	QuantityRecvKg decimal.Decimal `json:"quantityRecvKg"`
	LossKg         decimal.Decimal `json:"lossKg"`
	ChargePerKg    decimal.Decimal `json:"chargePerKg"`
	TotalCharge    decimal.Decimal `json:"totalCharge"`
	Status         string          `json:"status"`
	SentDate       time.Time       `json:"sentDate"`
	ReceivedDate   *time.Time      `json:"receivedDate,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToDyeingResponse converts a domain.DyeingProcess to DyeingResponse DTO
func ToDyeingResponse(d *domain.DyeingProcess) DyeingResponse {
	return DyeingResponse{
		DyeingID:       d.DyeingID,
		PurchaseID:     d.PurchaseID,
		DyeColor:       d.DyeColor,
		QuantitySentKg: d.QuantitySentKg,
		QuantityRecvKg: d.QuantityRecvKg,
		LossKg:         d.LossKg,
		ChargePerKg:    d.ChargePerKg,
		TotalCharge:    d.TotalCharge,
		Status:         string(d.Status),
		SentDate:       d.SentDate,
		ReceivedDate:   d.ReceivedDate,
		CreatedAt:      d.CreatedAt,
	}
}

// ListDyeingsResponse wraps the list of dyeing processes.
type ListDyeingsResponse struct {
	Dyeings []DyeingResponse `json:"dyeings"`
}

// ToListDyeingsResponse converts dyeing processes to their list DTO.
func ToListDyeingsResponse(dyeings []domain.DyeingProcess) ListDyeingsResponse {
	res := make([]DyeingResponse, len(dyeings))
	for i, d := range dyeings {
		res[i] = ToDyeingResponse(&d)
	}
	return ListDyeingsResponse{Dyeings: res}
}

// CreateProductionRequest defines a weaving run. DyeingID is omitted for
// grey fabric woven from undyed thread.
type CreateProductionRequest struct {
	DyeingID     *int64          `json:"dyeingId"`
	FabricType   string          `json:"fabricType" binding:"required"`
	Dimensions   string          `json:"dimensions"`
	ThreadUsedKg decimal.Decimal `json:"threadUsedKg" binding:"required"`
	StartDate    *time.Time      `json:"startDate"`
}

// CompleteProductionRequest closes a weaving run with its output.
type CompleteProductionRequest struct {
	FabricProducedM decimal.Decimal `json:"fabricProducedM" binding:"required"`
	ProductionCost  decimal.Decimal `json:"productionCost"`
}

// ProductionResponse defines the data returned for a fabric production run.
type ProductionResponse struct {
	ProductionID    int64           `json:"productionID"`
	DyeingID        *int64          `json:"dyeingID,omitempty"`
	FabricType      string          `json:"fabricType"`
	Dimensions      string          `json:"dimensions"`
	ThreadUsedKg    decimal.Decimal `json:"threadUsedKg"`
	FabricProducedM decimal.Decimal `json:"fabricProducedM"`
	ProductionCost  decimal.Decimal `json:"productionCost"`
	Status          string          `json:"status"`
	StartDate       time.Time       `json:"startDate"`
	CompletedDate   *time.Time      `json:"completedDate,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToProductionResponse converts a domain.FabricProduction to its DTO.
func ToProductionResponse(p *domain.FabricProduction) ProductionResponse {
	return ProductionResponse{
		ProductionID:    p.ProductionID,
		DyeingID:        p.DyeingID,
		FabricType:      p.FabricType,
		Dimensions:      p.Dimensions,
		ThreadUsedKg:    p.ThreadUsedKg,
		FabricProducedM: p.FabricProducedM,
		ProductionCost:  p.ProductionCost,
		Status:          string(p.Status),
		StartDate:       p.StartDate,
		CompletedDate:   p.CompletedDate,
		CreatedAt:       p.CreatedAt,
	}
}

// ListProductionsResponse wraps the list of production runs.
type ListProductionsResponse struct {
	Productions []ProductionResponse `json:"productions"`
}

// ToListProductionsResponse converts production runs to their list DTO.
func ToListProductionsResponse(runs []domain.FabricProduction) ListProductionsResponse {
	res := make([]ProductionResponse, len(runs))
	for i, p := range runs {
		res[i] = ToProductionResponse(&p)
	}
	return ListProductionsResponse{Productions: res}
}

// ListProcessParams defines the query parameters shared by dyeing and
// production listings.
type ListProcessParams struct {
	ListParams
	Status *string `form:"status"`
}

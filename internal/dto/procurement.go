package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// CreateVendorRequest defines the data needed to create a vendor.
type CreateVendorRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// UpdateVendorRequest defines the mutable fields of a vendor.
type UpdateVendorRequest struct {
	Name    *string `json:"name"`
	Contact *string `json:"contact"`
	Address *string `json:"address"`
}

// VendorResponse defines the data returned for a vendor.
type VendorResponse struct {
	VendorID  int64     `json:"vendorID"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToVendorResponse converts a domain.Vendor to VendorResponse DTO
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:  v.VendorID,
		Name:      v.Name,
		Contact:   v.Contact,
		Address:   v.Address,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
	}
}

// ListVendorsResponse wraps the list of vendors.
type ListVendorsResponse struct {
	Vendors []VendorResponse `json:"vendors"`
}

// ToListVendorsResponse converts a slice of domain.Vendor to its list DTO.
func ToListVendorsResponse(vendors []domain.Vendor) ListVendorsResponse {
	res := make([]VendorResponse, len(vendors))
	for i, v := range vendors {
		res[i] = ToVendorResponse(&v)
	}
	return ListVendorsResponse{Vendors: res}
}

// CreatePurchaseRequest defines the data needed to record a thread purchase.
type CreatePurchaseRequest struct {
	VendorID     int64           `json:"vendorId" binding:"required"`
	ThreadType   string          `json:"threadType" binding:"required"`
	Color        string          `json:"color"`
	QuantityKg   decimal.Decimal `json:"quantityKg" binding:"required"`
	UnitPrice    decimal.Decimal `json:"unitPrice" binding:"required"`
	PurchaseDate *time.Time      `json:"purchaseDate"`
}

// PurchaseResponse defines the data returned for a thread purchase.
type PurchaseResponse struct {
	PurchaseID   int64           `json:"purchaseID"`
	VendorID     int64           `json:"vendorID"`
	ThreadType   string          `json:"threadType"`
	Color        string          `json:"color"`
	QuantityKg   decimal.Decimal `json:"quantityKg"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	Status       string          `json:"status"`
	Received     bool            `json:"received"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToPurchaseResponse converts a domain.ThreadPurchase to PurchaseResponse DTO
func ToPurchaseResponse(p *domain.ThreadPurchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:   p.PurchaseID,
		VendorID:     p.VendorID,
		ThreadType:   p.ThreadType,
		Color:        p.Color,
		QuantityKg:   p.QuantityKg,
		UnitPrice:    p.UnitPrice,
		TotalAmount:  p.TotalAmount,
		PaidAmount:   p.PaidAmount,
		Status:       string(p.Status),
		Received:     p.Received,
		PurchaseDate: p.PurchaseDate,
		CreatedAt:    p.CreatedAt,
	}
}

// ListPurchasesResponse wraps the list of thread purchases.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

// ToListPurchasesResponse converts purchases to their list DTO.
func ToListPurchasesResponse(purchases []domain.ThreadPurchase) ListPurchasesResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		res[i] = ToPurchaseResponse(&p)
	}
	return ListPurchasesResponse{Purchases: res}
}

// ListPurchasesParams defines query parameters for listing purchases.
type ListPurchasesParams struct {
	ListParams
	VendorID *int64  `form:"vendorId"`
	Status   *string `form:"status"`
}

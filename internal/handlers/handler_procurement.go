package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sutratex/bunai-backend/internal/core/domain"
	portssvc "github.com/sutratex/bunai-backend/internal/core/ports/services"
	"github.com/sutratex/bunai-backend/internal/dto"
)

// vendorHandler handles HTTP requests for thread vendors.
type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func newVendorHandler(vs portssvc.VendorSvcFacade) *vendorHandler {
	return &vendorHandler{
		vendorService: vs,
	}
}

// registerVendorRoutes registers all vendor-related routes.
func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := newVendorHandler(vendorService)

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
		vendors.GET("/:id", h.getVendor)
		vendors.PUT("/:id", h.updateVendor)
		vendors.DELETE("/:id", h.deactivateVendor)
	}
}

// createVendor godoc
// @Summary Create a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create vendor"
// @Security BearerAuth
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create vendor")
		return
	}
	c.JSON(http.StatusCreated, dto.ToVendorResponse(vendor))
}

// getVendor godoc
// @Summary Get a vendor by ID
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} dto.VendorResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to get vendor"
// @Security BearerAuth
// @Router /vendors/{id} [get]
func (h *vendorHandler) getVendor(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), vendorID)
	if err != nil {
		respondError(c, err, "Failed to get vendor")
		return
	}
	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

// listVendors godoc
// @Summary List active vendors
// @Tags vendors
// @Produce json
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {object} dto.ListVendorsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list vendors"
// @Security BearerAuth
// @Router /vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	limit, offset := params.Normalize()

	vendors, err := h.vendorService.ListVendors(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list vendors")
		return
	}
	c.JSON(http.StatusOK, dto.ToListVendorsResponse(vendors))
}

// updateVendor godoc
// @Summary Update a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path int true "Vendor ID"
// @Param vendor body dto.UpdateVendorRequest true "Fields to update"
// @Success 200 {object} dto.VendorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to update vendor"
// @Security BearerAuth
// @Router /vendors/{id} [put]
func (h *vendorHandler) updateVendor(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), vendorID, req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to update vendor")
		return
	}
	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

// deactivateVendor godoc
// @Summary Deactivate a vendor
// @Description Soft-deletes a vendor. Past purchases keep referencing it.
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Vendor already inactive"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vendor not found"
// @Failure 500 {object} map[string]string "Failed to deactivate vendor"
// @Security BearerAuth
// @Router /vendors/{id} [delete]
func (h *vendorHandler) deactivateVendor(c *gin.Context) {
	vendorID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.vendorService.DeactivateVendor(c.Request.Context(), vendorID, updaterUserID); err != nil {
		respondError(c, err, "Failed to deactivate vendor")
		return
	}
	c.Status(http.StatusNoContent)
}

// purchaseHandler handles HTTP requests for thread purchases.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{
		purchaseService: ps,
	}
}

// registerPurchaseRoutes registers all purchase-related routes.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:id", h.getPurchase)
		purchases.POST("/:id/receive", h.receivePurchase)
	}
}

// createPurchase godoc
// @Summary Create a thread purchase
// @Description Records a thread purchase from a vendor. Total amount is
// @Description quantity times unit price.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input or inactive vendor"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create purchase"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create purchase")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// getPurchase godoc
// @Summary Get a purchase by ID
// @Tags purchases
// @Produce json
// @Param id path int true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to get purchase"
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	purchaseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), purchaseID)
	if err != nil {
		respondError(c, err, "Failed to get purchase")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// listPurchases godoc
// @Summary List purchases
// @Tags purchases
// @Produce json
// @Param vendorId query int false "Filter by vendor"
// @Param status query string false "Filter by payment status"
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {object} dto.ListPurchasesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list purchases"
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	var params dto.ListPurchasesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	limit, offset := params.Normalize()

	var status *domain.PaymentStatus
	if params.Status != nil {
		s := domain.PaymentStatus(*params.Status)
		status = &s
	}

	purchases, err := h.purchaseService.ListPurchases(c.Request.Context(), params.VendorID, status, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list purchases")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPurchasesResponse(purchases))
}

// receivePurchase godoc
// @Summary Mark a purchase as received
// @Description Flags the thread as physically received and books the
// @Description quantity into inventory as THREAD stock.
// @Tags purchases
// @Produce json
// @Param id path int true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} map[string]string "Purchase already received"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to receive purchase"
// @Security BearerAuth
// @Router /purchases/{id}/receive [post]
func (h *purchaseHandler) receivePurchase(c *gin.Context) {
	purchaseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	purchase, err := h.purchaseService.ReceivePurchase(c.Request.Context(), purchaseID, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to receive purchase")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

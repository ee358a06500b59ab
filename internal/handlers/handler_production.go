package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sutratex/bunai-backend/internal/core/domain"
	portssvc "github.com/sutratex/bunai-backend/internal/core/ports/services"
	"github.com/sutratex/bunai-backend/internal/dto"
)

// dyeingHandler handles HTTP requests for dyeing lots.
type dyeingHandler struct {
	dyeingService portssvc.DyeingSvcFacade
}

func newDyeingHandler(ds portssvc.DyeingSvcFacade) *dyeingHandler {
	return &dyeingHandler{
		dyeingService: ds,
	}
}

// registerDyeingRoutes registers all dyeing-related routes.
func registerDyeingRoutes(rg *gin.RouterGroup, dyeingService portssvc.DyeingSvcFacade) {
	h := newDyeingHandler(dyeingService)

	dyeing := rg.Group("/dyeing")
	{
		dyeing.POST("", h.createDyeing)
		dyeing.GET("", h.listDyeing)
		dyeing.GET("/:id", h.getDyeing)
		dyeing.POST("/:id/receive", h.receiveDyeing)
		dyeing.POST("/:id/cancel", h.cancelDyeing)
	}
}

// createDyeing godoc
// @Summary Send a thread lot for dyeing
// @Description Opens a SENT dyeing lot against a received purchase.
// @Tags dyeing
// @Accept json
// @Produce json
// @Param dyeing body dto.CreateDyeingRequest true "Dyeing lot details"
// @Success 201 {object} dto.DyeingResponse
// @Failure 400 {object} map[string]string "Invalid input or quantity exceeds purchase"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create dyeing lot"
// @Security BearerAuth
// @Router /dyeing [post]
func (h *dyeingHandler) createDyeing(c *gin.Context) {
	var req dto.CreateDyeingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	dyeing, err := h.dyeingService.CreateDyeing(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create dyeing lot")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDyeingResponse(dyeing))
}

// getDyeing godoc
// @Summary Get a dyeing lot by ID
// @Tags dyeing
// @Produce json
// @Param id path int true "Dyeing ID"
// @Success 200 {object} dto.DyeingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dyeing lot not found"
// @Failure 500 {object} map[string]string "Failed to get dyeing lot"
// @Security BearerAuth
// @Router /dyeing/{id} [get]
func (h *dyeingHandler) getDyeing(c *gin.Context) {
	dyeingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dyeing, err := h.dyeingService.GetDyeingByID(c.Request.Context(), dyeingID)
	if err != nil {
		respondError(c, err, "Failed to get dyeing lot")
		return
	}
	c.JSON(http.StatusOK, dto.ToDyeingResponse(dyeing))
}

// listDyeing godoc
// @Summary List dyeing lots
// @Tags dyeing
// @Produce json
// @Param status query string false "Filter by process status (SENT, RECEIVED or CANCELLED)"
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {object} dto.ListDyeingsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list dyeing lots"
// @Security BearerAuth
// @Router /dyeing [get]
func (h *dyeingHandler) listDyeing(c *gin.Context) {
	var params dto.ListProcessParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	limit, offset := params.Normalize()

	var status *domain.ProcessStatus
	if params.Status != nil {
		s := domain.ProcessStatus(*params.Status)
		status = &s
	}

	lots, err := h.dyeingService.ListDyeing(c.Request.Context(), status, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list dyeing lots")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDyeingsResponse(lots))
}

// receiveDyeing godoc
// @Summary Receive a dyeing lot back
// @Description Closes the lot with the returned quantity. Loss and total
// @Description charge are computed from it, and the dyed thread is booked
// @Description into inventory.
// @Tags dyeing
// @Accept json
// @Produce json
// @Param id path int true "Dyeing ID"
// @Param receive body dto.ReceiveDyeingRequest true "Received quantity"
// @Success 200 {object} dto.DyeingResponse
// @Failure 400 {object} map[string]string "Invalid quantity or lot not SENT"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dyeing lot not found"
// @Failure 500 {object} map[string]string "Failed to receive dyeing lot"
// @Security BearerAuth
// @Router /dyeing/{id}/receive [post]
func (h *dyeingHandler) receiveDyeing(c *gin.Context) {
	dyeingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ReceiveDyeingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	dyeing, err := h.dyeingService.ReceiveDyeing(c.Request.Context(), dyeingID, req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to receive dyeing lot")
		return
	}
	c.JSON(http.StatusOK, dto.ToDyeingResponse(dyeing))
}

// cancelDyeing godoc
// @Summary Cancel a dyeing lot
// @Description Abandons a SENT lot. No stock is booked.
// @Tags dyeing
// @Produce json
// @Param id path int true "Dyeing ID"
// @Success 200 {object} dto.DyeingResponse
// @Failure 400 {object} map[string]string "Lot not SENT"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dyeing lot not found"
// @Failure 500 {object} map[string]string "Failed to cancel dyeing lot"
// @Security BearerAuth
// @Router /dyeing/{id}/cancel [post]
func (h *dyeingHandler) cancelDyeing(c *gin.Context) {
	dyeingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	dyeing, err := h.dyeingService.CancelDyeing(c.Request.Context(), dyeingID, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to cancel dyeing lot")
		return
	}
	c.JSON(http.StatusOK, dto.ToDyeingResponse(dyeing))
}

// productionHandler handles HTTP requests for fabric production runs.
type productionHandler struct {
	productionService portssvc.ProductionSvcFacade
}

func newProductionHandler(ps portssvc.ProductionSvcFacade) *productionHandler {
	return &productionHandler{
		productionService: ps,
	}
}

// registerProductionRoutes registers all production-related routes.
func registerProductionRoutes(rg *gin.RouterGroup, productionService portssvc.ProductionSvcFacade) {
	h := newProductionHandler(productionService)

	productions := rg.Group("/productions")
	{
		productions.POST("", h.createProduction)
		productions.GET("", h.listProductions)
		productions.GET("/:id", h.getProduction)
		productions.POST("/:id/complete", h.completeProduction)
		productions.POST("/:id/cancel", h.cancelProduction)
	}
}

// createProduction godoc
// @Summary Start a fabric production run
// @Tags productions
// @Accept json
// @Produce json
// @Param production body dto.CreateProductionRequest true "Production details"
// @Success 201 {object} dto.ProductionResponse
// @Failure 400 {object} map[string]string "Invalid input or dyeing lot not received"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create production run"
// @Security BearerAuth
// @Router /productions [post]
func (h *productionHandler) createProduction(c *gin.Context) {
	var req dto.CreateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	production, err := h.productionService.CreateProduction(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create production run")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductionResponse(production))
}

// getProduction godoc
// @Summary Get a production run by ID
// @Tags productions
// @Produce json
// @Param id path int true "Production ID"
// @Success 200 {object} dto.ProductionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Production run not found"
// @Failure 500 {object} map[string]string "Failed to get production run"
// @Security BearerAuth
// @Router /productions/{id} [get]
func (h *productionHandler) getProduction(c *gin.Context) {
	productionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	production, err := h.productionService.GetProductionByID(c.Request.Context(), productionID)
	if err != nil {
		respondError(c, err, "Failed to get production run")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductionResponse(production))
}

// listProductions godoc
// @Summary List production runs
// @Tags productions
// @Produce json
// @Param status query string false "Filter by process status (IN_PROGRESS, COMPLETED or CANCELLED)"
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {object} dto.ListProductionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list production runs"
// @Security BearerAuth
// @Router /productions [get]
func (h *productionHandler) listProductions(c *gin.Context) {
	var params dto.ListProcessParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	limit, offset := params.Normalize()

	var status *domain.ProcessStatus
	if params.Status != nil {
		s := domain.ProcessStatus(*params.Status)
		status = &s
	}

	runs, err := h.productionService.ListProductions(c.Request.Context(), status, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list production runs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductionsResponse(runs))
}

// completeProduction godoc
// @Summary Complete a production run
// @Description Closes the run with the produced meters and books the fabric
// @Description into inventory.
// @Tags productions
// @Accept json
// @Produce json
// @Param id path int true "Production ID"
// @Param complete body dto.CompleteProductionRequest true "Production output"
// @Success 200 {object} dto.ProductionResponse
// @Failure 400 {object} map[string]string "Invalid output or run not in progress"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Production run not found"
// @Failure 500 {object} map[string]string "Failed to complete production run"
// @Security BearerAuth
// @Router /productions/{id}/complete [post]
func (h *productionHandler) completeProduction(c *gin.Context) {
	productionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CompleteProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	production, err := h.productionService.CompleteProduction(c.Request.Context(), productionID, req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to complete production run")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductionResponse(production))
}

// cancelProduction godoc
// @Summary Cancel a production run
// @Description Abandons an IN_PROGRESS run. No fabric is booked.
// @Tags productions
// @Produce json
// @Param id path int true "Production ID"
// @Success 200 {object} dto.ProductionResponse
// @Failure 400 {object} map[string]string "Run not in progress"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Production run not found"
// @Failure 500 {object} map[string]string "Failed to cancel production run"
// @Security BearerAuth
// @Router /productions/{id}/cancel [post]
func (h *productionHandler) cancelProduction(c *gin.Context) {
	productionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	production, err := h.productionService.CancelProduction(c.Request.Context(), productionID, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to cancel production run")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductionResponse(production))
}

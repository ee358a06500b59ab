package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sutratex/bunai-backend/internal/core/ports/services"
	"github.com/sutratex/bunai-backend/internal/dto"
	"github.com/sutratex/bunai-backend/internal/middleware"
)

// khataHandler handles HTTP requests for khatas (account books).
type khataHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newKhataHandler(ls portssvc.LedgerSvcFacade) *khataHandler {
	return &khataHandler{
		ledgerService: ls,
	}
}

// registerKhataRoutes registers all khata-related routes.
func registerKhataRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newKhataHandler(ledgerService)

	khatas := rg.Group("/khatas")
	{
		khatas.POST("", h.createKhata)
		khatas.GET("", h.listKhatas)
		khatas.GET("/:id", h.getKhata)
		khatas.GET("/:id/entries", h.listKhataEntries)
		khatas.GET("/:id/summary", h.getKhataSummary)
	}
}

// createKhata godoc
// @Summary Create a khata
// @Description Opens a new account book.
// @Tags khatas
// @Accept json
// @Produce json
// @Param khata body dto.CreateKhataRequest true "Khata details"
// @Success 201 {object} dto.KhataResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create khata"
// @Security BearerAuth
// @Router /khatas [post]
func (h *khataHandler) createKhata(c *gin.Context) {
	var req dto.CreateKhataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	khata, err := h.ledgerService.CreateKhata(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create khata")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Khata created", slog.Int64("khata_id", khata.KhataID), slog.String("name", khata.Name))
	c.JSON(http.StatusCreated, dto.ToKhataResponse(khata))
}

// getKhata godoc
// @Summary Get a khata by ID
// @Tags khatas
// @Produce json
// @Param id path int true "Khata ID"
// @Success 200 {object} dto.KhataResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Khata not found"
// @Failure 500 {object} map[string]string "Failed to get khata"
// @Security BearerAuth
// @Router /khatas/{id} [get]
func (h *khataHandler) getKhata(c *gin.Context) {
	khataID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	khata, err := h.ledgerService.GetKhataByID(c.Request.Context(), khataID)
	if err != nil {
		respondError(c, err, "Failed to get khata")
		return
	}
	c.JSON(http.StatusOK, dto.ToKhataResponse(khata))
}

// listKhatas godoc
// @Summary List khatas
// @Tags khatas
// @Produce json
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {object} dto.ListKhatasResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list khatas"
// @Security BearerAuth
// @Router /khatas [get]
func (h *khataHandler) listKhatas(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	limit, offset := params.Normalize()

	khatas, err := h.ledgerService.ListKhatas(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list khatas")
		return
	}
	c.JSON(http.StatusOK, dto.ToListKhatasResponse(khatas))
}

// listKhataEntries godoc
// @Summary List the entries of a khata
// @Description Lists the ledger entries tagged to this khata. The tag match
// @Description is boundary aware, so khata 1 does not pick up khata 10.
// @Tags khatas
// @Produce json
// @Param id path int true "Khata ID"
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Khata not found"
// @Failure 500 {object} map[string]string "Failed to list khata entries"
// @Security BearerAuth
// @Router /khatas/{id}/entries [get]
func (h *khataHandler) listKhataEntries(c *gin.Context) {
	khataID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	limit, offset := params.Normalize()

	entries, err := h.ledgerService.ListKhataEntries(c.Request.Context(), khataID, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list khata entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

// getKhataSummary godoc
// @Summary Summarize a khata
// @Description Aggregates the entries tagged to this khata: entry count,
// @Description total amount, outstanding amount and status breakdown.
// @Tags khatas
// @Produce json
// @Param id path int true "Khata ID"
// @Success 200 {object} dto.KhataSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Khata not found"
// @Failure 500 {object} map[string]string "Failed to summarize khata"
// @Security BearerAuth
// @Router /khatas/{id}/summary [get]
func (h *khataHandler) getKhataSummary(c *gin.Context) {
	khataID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.ledgerService.GetKhataSummary(c.Request.Context(), khataID)
	if err != nil {
		respondError(c, err, "Failed to summarize khata")
		return
	}
	c.JSON(http.StatusOK, dto.ToKhataSummaryResponse(summary))
}

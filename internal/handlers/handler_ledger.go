package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sutratex/bunai-backend/internal/core/domain"
	portssvc "github.com/sutratex/bunai-backend/internal/core/ports/services"
	"github.com/sutratex/bunai-backend/internal/dto"
	"github.com/sutratex/bunai-backend/internal/middleware"
)

// ledgerHandler handles the unified ledger entry routes and the khatabook
// reconciliation triggers.
type ledgerHandler struct {
	ledgerService         portssvc.LedgerSvcFacade
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, rs portssvc.ReconciliationSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService:         ls,
		reconciliationService: rs,
	}
}

// registerLedgerRoutes registers the ledger entry and reconciliation routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newLedgerHandler(ledgerService, reconciliationService)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/entries", h.createEntry)
		ledger.GET("/entries", h.listEntries)
		ledger.GET("/entries/:id", h.getEntry)
		ledger.PUT("/entries/:id", h.updateEntry)
		ledger.POST("/entries/:id/cancel", h.cancelEntry)

		ledger.POST("/sync", h.syncBills)
		ledger.POST("/backfill", h.backfillDefaultKhata)
	}
}

// createEntry godoc
// @Summary Create a ledger entry
// @Description Creates a ledger entry. When khataId is set the entry is
// @Description tagged into that khata's book.
// @Tags ledger
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Security BearerAuth
// @Router /ledger/entries [post]
func (h *ledgerHandler) createEntry(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a ledger entry by ID
// @Tags ledger
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to get entry"
// @Security BearerAuth
// @Router /ledger/entries/{id} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.ledgerService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, err, "Failed to get entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List ledger entries
// @Description Lists ledger entries, optionally narrowed by khataId (tag
// @Description filter), entryType and status.
// @Tags ledger
// @Produce json
// @Param khataId query int false "Filter by khata tag"
// @Param entryType query string false "Filter by entry type"
// @Param status query string false "Filter by payment status"
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /ledger/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	limit, offset := params.Normalize()

	filter := domain.EntryListFilter{
		KhataID: params.KhataID,
		Limit:   limit,
		Offset:  offset,
	}
	if params.EntryType != nil {
		et := domain.EntryType(*params.EntryType)
		filter.EntryType = &et
	}
	if params.Status != nil {
		st := domain.PaymentStatus(*params.Status)
		filter.Status = &st
	}

	entries, err := h.ledgerService.ListEntries(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

// updateEntry godoc
// @Summary Update a ledger entry
// @Description Updates an entry's description, notes or reference.
// @Tags ledger
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /ledger/entries/{id} [put]
func (h *ledgerHandler) updateEntry(c *gin.Context) {
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.ledgerService.UpdateEntry(c.Request.Context(), entryID, req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to update entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// cancelEntry godoc
// @Summary Cancel a ledger entry
// @Description Moves a PENDING or PARTIAL entry to CANCELLED. PAID and
// @Description already-cancelled entries are rejected.
// @Tags ledger
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Entry cannot be cancelled"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to cancel entry"
// @Security BearerAuth
// @Router /ledger/entries/{id}/cancel [post]
func (h *ledgerHandler) cancelEntry(c *gin.Context) {
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.ledgerService.CancelEntry(c.Request.Context(), entryID, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to cancel entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// syncBills godoc
// @Summary Sync khatabook bills into the ledger
// @Description Copies every khatabook bill into the unified ledger as a BILL
// @Description entry. Idempotent: bills already mirrored (matched by their
// @Description BILL-<number> reference) are skipped. Row failures are counted,
// @Description not fatal.
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.SyncResultResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to sync bills"
// @Security BearerAuth
// @Router /ledger/sync [post]
func (h *ledgerHandler) syncBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	logger.Info("Bill sync triggered", slog.String("user_id", userID))

	result, err := h.reconciliationService.SyncBills(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to sync bills")
		return
	}
	c.JSON(http.StatusOK, dto.SyncResultResponse{
		Synced:  result.Synced,
		Skipped: result.Skipped,
		Failed:  result.Failed,
	})
}

// backfillDefaultKhata godoc
// @Summary Backfill untagged entries into the default khata
// @Description Tags every ledger entry that carries no khata tag with the
// @Description configured default khata so it shows up in the default book.
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.BackfillResultResponse
// @Failure 400 {object} map[string]string "Default khata not configured or missing"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to backfill entries"
// @Security BearerAuth
// @Router /ledger/backfill [post]
func (h *ledgerHandler) backfillDefaultKhata(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	logger.Info("Default khata backfill triggered", slog.String("user_id", userID))

	result, err := h.reconciliationService.BackfillDefaultKhata(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to backfill entries")
		return
	}
	c.JSON(http.StatusOK, dto.BackfillResultResponse{
		Tagged:  result.Tagged,
		KhataID: result.KhataID,
	})
}

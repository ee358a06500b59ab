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

// partyHandler handles HTTP requests for khatabook parties.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

func newPartyHandler(ps portssvc.PartySvcFacade) *partyHandler {
	return &partyHandler{
		partyService: ps,
	}
}

// registerPartyRoutes registers all party-related routes.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	h := newPartyHandler(partyService)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:id", h.getParty)
		parties.PUT("/:id", h.updateParty)
	}
}

// createParty godoc
// @Summary Create a party
// @Description Registers a vendor or customer in the khatabook.
// @Tags parties
// @Accept json
// @Produce json
// @Param party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create party"
// @Security BearerAuth
// @Router /parties [post]
func (h *partyHandler) createParty(c *gin.Context) {
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create party")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// getParty godoc
// @Summary Get a party by ID
// @Tags parties
// @Produce json
// @Param id path int true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to get party"
// @Security BearerAuth
// @Router /parties/{id} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	partyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	party, err := h.partyService.GetPartyByID(c.Request.Context(), partyID)
	if err != nil {
		respondError(c, err, "Failed to get party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List parties
// @Tags parties
// @Produce json
// @Param kind query string false "Filter by party kind (VENDOR or CUSTOMER)"
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {object} dto.ListPartiesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list parties"
// @Security BearerAuth
// @Router /parties [get]
func (h *partyHandler) listParties(c *gin.Context) {
	var params dto.ListPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	limit, offset := params.Normalize()

	var kind *domain.PartyKind
	if params.Kind != nil {
		k := domain.PartyKind(*params.Kind)
		kind = &k
	}

	parties, err := h.partyService.ListParties(c.Request.Context(), kind, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list parties")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPartiesResponse(parties))
}

// updateParty godoc
// @Summary Update a party
// @Tags parties
// @Accept json
// @Produce json
// @Param id path int true "Party ID"
// @Param party body dto.UpdatePartyRequest true "Fields to update"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to update party"
// @Security BearerAuth
// @Router /parties/{id} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	partyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), partyID, req, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to update party")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// billHandler handles HTTP requests for khatabook bills and their payment
// transactions.
type billHandler struct {
	billService portssvc.BillSvcFacade
}

func newBillHandler(bs portssvc.BillSvcFacade) *billHandler {
	return &billHandler{
		billService: bs,
	}
}

// registerBillRoutes registers all bill-related routes.
func registerBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade) {
	h := newBillHandler(billService)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/:id", h.getBill)
		bills.POST("/:id/transactions", h.recordTransaction)
		bills.GET("/:id/transactions", h.listTransactions)
		bills.POST("/:id/cancel", h.cancelBill)
	}
}

// createBill godoc
// @Summary Create a bill
// @Description Creates a khatabook bill. The bill reaches the unified ledger
// @Description view through the next sync run, not immediately.
// @Tags bills
// @Accept json
// @Produce json
// @Param bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Bill number already exists"
// @Failure 500 {object} map[string]string "Failed to create bill"
// @Security BearerAuth
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create bill")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Bill created", slog.Int64("bill_id", bill.BillID), slog.String("bill_number", bill.BillNumber))
	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// getBill godoc
// @Summary Get a bill by ID
// @Tags bills
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to get bill"
// @Security BearerAuth
// @Router /bills/{id} [get]
func (h *billHandler) getBill(c *gin.Context) {
	billID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	bill, err := h.billService.GetBillByID(c.Request.Context(), billID)
	if err != nil {
		respondError(c, err, "Failed to get bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// listBills godoc
// @Summary List bills
// @Tags bills
// @Produce json
// @Param status query string false "Filter by payment status"
// @Param partyId query int false "Filter by party"
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {object} dto.ListBillsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list bills"
// @Security BearerAuth
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	var params dto.ListBillsParams
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

	bills, err := h.billService.ListBills(c.Request.Context(), status, params.PartyID, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list bills")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBillsResponse(bills))
}

// recordTransaction godoc
// @Summary Record a payment transaction against a bill
// @Description Records a payment on a bill. The transaction insert and the
// @Description bill's paid amount and status update commit together.
// @Tags bills
// @Accept json
// @Produce json
// @Param id path int true "Bill ID"
// @Param transaction body dto.RecordTransactionRequest true "Transaction details"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid input or cancelled bill"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Router /bills/{id}/transactions [post]
func (h *billHandler) recordTransaction(c *gin.Context) {
	billID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	bill, err := h.billService.RecordTransaction(c.Request.Context(), billID, req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to record transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// listTransactions godoc
// @Summary List the transactions of a bill
// @Tags bills
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /bills/{id}/transactions [get]
func (h *billHandler) listTransactions(c *gin.Context) {
	billID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	transactions, err := h.billService.ListTransactions(c.Request.Context(), billID)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(transactions))
}

// cancelBill godoc
// @Summary Cancel a bill
// @Description Moves a PENDING or PARTIAL bill to CANCELLED.
// @Tags bills
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Bill cannot be cancelled"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to cancel bill"
// @Security BearerAuth
// @Router /bills/{id}/cancel [post]
func (h *billHandler) cancelBill(c *gin.Context) {
	billID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	bill, err := h.billService.CancelBill(c.Request.Context(), billID, updaterUserID)
	if err != nil {
		respondError(c, err, "Failed to cancel bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/planwise/budget_planner_app/internal/core/ports/services"
	"github.com/planwise/budget_planner_app/internal/dto"
)

// transactionHandler handles HTTP requests for the ledger.
type transactionHandler struct {
	ledgerService portssvc.LedgerService
}

func newTransactionHandler(ls portssvc.LedgerService) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers ledger routes.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerService) {
	h := newTransactionHandler(ledgerService)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.recordTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/month/:year_month", h.listTransactionsByMonth)
		txns.GET("/:transaction_id", h.getTransaction)
		txns.PUT("/:transaction_id", h.updateTransaction)
		txns.PATCH("/:transaction_id/status", h.updateTransactionStatus)
	}
}

// recordTransaction godoc
// @Summary Record a transaction
// @Description Records an INCOME, EXPENSE or TRANSFER. Status defaults to POSTED.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Non-positive amount, inactive account or invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Failure 404 {object} map[string]string "Account or category not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/transactions [post]
func (h *transactionHandler) recordTransaction(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.RecordTransaction(c.Request.Context(), workspaceID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record transaction")
		return
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", txn.TransactionID), slog.String("type", string(txn.Type)))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns a cursor-paginated page of transactions, newest first.
// @Tags transactions
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   limit query int false "Page size (default 50, max 100)"
// @Param   nextToken query string false "Cursor returned by the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Malformed cursor"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	nextToken := c.Query("nextToken")

	txns, newToken, err := h.ledgerService.ListTransactions(c.Request.Context(), workspaceID, limit, nextToken, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, newToken))
}

// listTransactionsByMonth godoc
// @Summary List a month's transactions
// @Description Returns all non-VOID transactions whose date falls in the calendar month.
// @Tags transactions
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   year_month path string true "Month in YYYY-MM format"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Malformed month key"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/transactions/month/{year_month} [get]
func (h *transactionHandler) listTransactionsByMonth(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	yearMonth := c.Param("year_month")

	txns, err := h.ledgerService.ListTransactionsByMonth(c.Request.Context(), workspaceID, yearMonth, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list month transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, ""))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a member of the workspace"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	transactionID := c.Param("transaction_id")

	txn, err := h.ledgerService.GetTransactionByID(c.Request.Context(), workspaceID, transactionID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Edits amount, date, category or description. VOID transactions are immutable.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   transaction_id path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Transaction is VOID or invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/transactions/{transaction_id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	transactionID := c.Param("transaction_id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.UpdateTransaction(c.Request.Context(), workspaceID, transactionID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransactionStatus godoc
// @Summary Change a transaction's status
// @Description Moves the transaction between PLANNED, POSTED and VOID. VOID is terminal.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   transaction_id path string true "Transaction ID"
// @Param   status body dto.UpdateTransactionStatusRequest true "Target status"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Illegal status transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller lacks MEMBER role"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/transactions/{transaction_id}/status [patch]
func (h *transactionHandler) updateTransactionStatus(c *gin.Context) {
	logger, userID, ok := requestIdentity(c)
	if !ok {
		return
	}
	workspaceID := c.Param("workspace_id")
	transactionID := c.Param("transaction_id")

	var req dto.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransactionStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.UpdateTransactionStatus(c.Request.Context(), workspaceID, transactionID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update transaction status")
		return
	}

	logger.Info("Transaction status updated", slog.String("transaction_id", transactionID), slog.String("status", string(txn.Status)))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

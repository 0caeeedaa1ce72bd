package handler

import (
	"net/http"
	"strconv"

	"github.com/adhishcp/upi-app/internal/domain/entity"
	domainerr "github.com/adhishcp/upi-app/internal/domain/error"
	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/domain/port/persistence"
	"github.com/adhishcp/upi-app/internal/domain/port/usecase"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/api/dto"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TransferHandler handles money-movement HTTP requests
type TransferHandler struct {
	transfers usecase.TransferUseCase
	logger    coreport.Logger
}

// NewTransferHandler creates a new transfer handler instance
func NewTransferHandler(transfers usecase.TransferUseCase, logger coreport.Logger) *TransferHandler {
	return &TransferHandler{
		transfers: transfers,
		logger:    logger,
	}
}

// Deposit handles POST /transactions/deposit
func (h *TransferHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	outcome, err := h.transfers.Deposit(c.Request.Context(), req.AccountID, req.Amount, middleware.Key(c), middleware.UserID(c))
	respondOutcome(c, outcome, err)
}

// Withdraw handles POST /transactions/withdraw
func (h *TransferHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	outcome, err := h.transfers.Withdraw(c.Request.Context(), req.AccountID, req.Amount, middleware.Key(c), middleware.UserID(c))
	respondOutcome(c, outcome, err)
}

// Transfer handles POST /transactions/transfer
func (h *TransferHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	outcome, err := h.transfers.Transfer(c.Request.Context(), usecase.TransferRequest{
		ToVPA:         req.ToVPA,
		Amount:        req.Amount,
		Reason:        req.Reason,
		FromAccountID: req.FromAccountID,
	}, middleware.Key(c), middleware.UserID(c))
	respondOutcome(c, outcome, err)
}

// BulkTransfer handles POST /transactions/bulk-transfer
func (h *TransferHandler) BulkTransfer(c *gin.Context) {
	var req dto.BulkTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	transfers := make([]usecase.TransferRequest, 0, len(req.Transfers))
	for _, t := range req.Transfers {
		transfers = append(transfers, usecase.TransferRequest{
			ToVPA:         t.ToVPA,
			Amount:        t.Amount,
			Reason:        t.Reason,
			FromAccountID: t.FromAccountID,
		})
	}

	result, err := h.transfers.BulkTransfer(c.Request.Context(), usecase.BulkTransferRequest{Transfers: transfers}, middleware.Key(c), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Retry handles POST /transactions/:txnId/retry
func (h *TransferHandler) Retry(c *gin.Context) {
	outcome, err := h.transfers.Retry(c.Request.Context(), c.Param("txnId"), middleware.UserID(c))
	respondOutcome(c, outcome, err)
}

// GetTransaction handles GET /transactions/:txnId
func (h *TransferHandler) GetTransaction(c *gin.Context) {
	detail, err := h.transfers.GetTransaction(c.Request.Context(), c.Param("txnId"), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetTransactionStatus handles GET /transactions/:txnId/status
func (h *TransferHandler) GetTransactionStatus(c *gin.Context) {
	view, err := h.transfers.GetTransactionStatus(c.Request.Context(), c.Param("txnId"), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListTransactions handles GET /transactions
func (h *TransferHandler) ListTransactions(c *gin.Context) {
	filter := persistence.TransactionFilter{
		Status: entity.TransactionStatus(c.Query("status")),
		Type:   entity.TransactionType(c.Query("type")),
	}
	page := persistence.Page{
		Number: queryInt(c, "page", 1),
		Size:   queryInt(c, "limit", 20),
	}

	result, err := h.transfers.ListTransactions(c.Request.Context(), middleware.UserID(c), filter, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Summarize handles GET /transactions/summary
func (h *TransferHandler) Summarize(c *gin.Context) {
	summary, err := h.transfers.Summarize(c.Request.Context(), middleware.UserID(c), c.DefaultQuery("period", "30d"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *TransferHandler) badRequest(c *gin.Context, err error) {
	h.logger.Debug("Invalid request format", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}

// queryInt parses an integer query parameter with a fallback
func queryInt(c *gin.Context, name string, fallback int) int {
	val, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return val
}

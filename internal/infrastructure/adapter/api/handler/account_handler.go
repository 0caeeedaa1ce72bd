package handler

import (
	"net/http"

	domainerr "github.com/adhishcp/upi-app/internal/domain/error"
	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/domain/port/persistence"
	"github.com/adhishcp/upi-app/internal/domain/port/usecase"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/api/dto"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles bank account HTTP requests
type AccountHandler struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accounts usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// Create handles POST /accounts
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	view, err := h.accounts.Create(c.Request.Context(), middleware.UserID(c), req.AccountRef)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// List handles GET /accounts
func (h *AccountHandler) List(c *gin.Context) {
	views, err := h.accounts.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// Get handles GET /accounts/:accountId
func (h *AccountHandler) Get(c *gin.Context) {
	view, err := h.accounts.Get(c.Request.Context(), c.Param("accountId"), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateRef handles PATCH /accounts/:accountId
func (h *AccountHandler) UpdateRef(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	view, err := h.accounts.UpdateRef(c.Request.Context(), c.Param("accountId"), middleware.UserID(c), req.AccountRef)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /accounts/:accountId
func (h *AccountHandler) Delete(c *gin.Context) {
	if err := h.accounts.Delete(c.Request.Context(), c.Param("accountId"), middleware.UserID(c)); err != nil {
		if domainerr.ErrorCode(err) == domainerr.CodeAccountNotEmpty {
			c.JSON(http.StatusConflict, dto.ErrorResponse{
				Code:    domainerr.CodeAccountNotEmpty,
				Message: err.Error(),
			})
			return
		}
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBalance handles GET /accounts/:accountId/balance
func (h *AccountHandler) GetBalance(c *gin.Context) {
	view, err := h.accounts.GetBalance(c.Request.Context(), c.Param("accountId"), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetLedger handles GET /accounts/:accountId/ledger
func (h *AccountHandler) GetLedger(c *gin.Context) {
	page := persistence.Page{
		Number: queryInt(c, "page", 1),
		Size:   queryInt(c, "limit", 20),
	}

	result, err := h.accounts.GetLedger(c.Request.Context(), c.Param("accountId"), middleware.UserID(c), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Audit handles GET /accounts/:accountId/audit
func (h *AccountHandler) Audit(c *gin.Context) {
	report, err := h.accounts.Audit(c.Request.Context(), c.Param("accountId"), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

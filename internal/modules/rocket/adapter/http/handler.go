// Package http provides the gin adapter for the rocket round.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunova/game_economy/internal/modules/rocket/domain"
	"github.com/sunova/game_economy/internal/modules/rocket/usecase"
	walletdomain "github.com/sunova/game_economy/internal/modules/wallet/domain"
)

// Handler handles HTTP requests for the rocket module
type Handler struct {
	svc *usecase.RocketUseCase
}

// NewHandler creates a new HTTP handler
func NewHandler(svc *usecase.RocketUseCase) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all rocket routes
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	rocket := api.Group("/rocket")
	rocket.GET("/state", h.State)
	rocket.POST("/join", h.Join)
	rocket.POST("/cashout", h.CashOut)
	rocket.POST("/update-multiplier", h.UpdateMultiplier)
	rocket.POST("/settle", h.Settle)
}

type joinRequest struct {
	UserID string `json:"userId" binding:"required"`
	Amount int64  `json:"bet" binding:"required"`
}

type cashOutRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type multiplierRequest struct {
	Multiplier *float64 `json:"multiplier" binding:"required"`
}

// State returns a snapshot of the current round
func (h *Handler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.State())
}

// Join enters the player into the pending round
func (h *Handler) Join(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and bet are required"})
		return
	}

	balance, err := h.svc.Join(c.Request.Context(), req.UserID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoundInProgress),
			errors.Is(err, domain.ErrInvalidBet),
			errors.Is(err, walletdomain.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// CashOut locks in and credits the player's winnings
func (h *Handler) CashOut(c *gin.Context) {
	var req cashOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	winnings, multiplier, balance, err := h.svc.CashOut(c.Request.Context(), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotJoined),
			errors.Is(err, domain.ErrAlreadyCashedOut):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"winnings":   winnings,
		"multiplier": multiplier,
		"balance":    balance,
	})
}

// UpdateMultiplier records the multiplier pushed by the round driver
func (h *Handler) UpdateMultiplier(c *gin.Context) {
	var req multiplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multiplier is required"})
		return
	}

	if err := h.svc.UpdateMultiplier(c.Request.Context(), *req.Multiplier); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Settle ends the round and resets the machine
func (h *Handler) Settle(c *gin.Context) {
	crashed, cashedOut, err := h.svc.Settle(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"crashed":   crashed,
		"cashedOut": cashedOut,
	})
}

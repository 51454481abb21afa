// Package http provides the gin adapter for the wallet module.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunova/game_economy/internal/modules/wallet/domain"
	"github.com/sunova/game_economy/internal/modules/wallet/usecase"
	"github.com/sunova/game_economy/pkg/logger"
)

// Handler handles HTTP requests for the wallet module
type Handler struct {
	svc *usecase.WalletUseCase
}

// NewHandler creates a new HTTP handler
func NewHandler(svc *usecase.WalletUseCase) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all wallet routes
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, legacy *gin.RouterGroup) {
	api.POST("/register", h.Register)
	api.GET("/balance/:userId", h.Balance)
	api.GET("/user/:userId/refresh", h.Refresh)
	api.POST("/topup", h.Topup)
	api.POST("/gift", h.Gift)
	api.GET("/transactions/:userId", h.Transactions)

	// Historical paths kept for older clients
	legacy.GET("/user/:userId", h.Refresh)
	legacy.POST("/user/update", h.Update)
}

type registerRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type updateRequest struct {
	UserID string `json:"userId" binding:"required"`
	Amount *int64 `json:"amount" binding:"required"`
	Reason string `json:"reason"`
}

type topupRequest struct {
	UserID string `json:"userId" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
	Ref    string `json:"ref"`
}

type giftRequest struct {
	SenderID   string `json:"senderId" binding:"required"`
	ReceiverID string `json:"receiverId" binding:"required"`
	Amount     int64  `json:"amount" binding:"required"`
}

// Register resolves (lazily creating) an account
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	acc, _, err := h.svc.Resolve(c.Request.Context(), req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"userId":   acc.UserID,
		"balance":  acc.Balance,
		"diamonds": acc.Diamonds,
	})
}

// Balance returns the user's balances
func (h *Handler) Balance(c *gin.Context) {
	acc, _, err := h.svc.Resolve(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": acc.Balance, "diamonds": acc.Diamonds})
}

// Refresh returns balances plus today's daily score
func (h *Handler) Refresh(c *gin.Context) {
	acc, day, score, err := h.svc.Refresh(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId":     acc.UserID,
		"balance":    acc.Balance,
		"diamonds":   acc.Diamonds,
		"day":        day,
		"dailyScore": score,
	})
}

// Update applies an external signed balance adjustment
func (h *Handler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and amount are required"})
		return
	}

	balance, err := h.svc.Adjust(c.Request.Context(), req.UserID, *req.Amount, req.Reason)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient balance for requested deduction"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "userId": req.UserID, "balance": balance})
}

// Topup credits purchased coins
func (h *Handler) Topup(c *gin.Context) {
	var req topupRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topup request"})
		return
	}

	balance, err := h.svc.Topup(c.Request.Context(), req.UserID, req.Amount, req.Ref)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "balance": balance})
}

// Gift converts sender coins into receiver diamonds
func (h *Handler) Gift(c *gin.Context) {
	var req giftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gift request"})
		return
	}

	senderBalance, receiverDiamonds, err := h.svc.Gift(c.Request.Context(), req.SenderID, req.ReceiverID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfGift),
			errors.Is(err, domain.ErrInvalidAmount),
			errors.Is(err, domain.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error(c.Request.Context()).Err(err).Msg("Gift failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":               true,
		"senderBalance":    senderBalance,
		"receiverDiamonds": receiverDiamonds,
	})
}

// Transactions lists the user's recent transactions
func (h *Handler) Transactions(c *gin.Context) {
	list, err := h.svc.Transactions(c.Request.Context(), c.Param("userId"), 200)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

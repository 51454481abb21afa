// Package http provides the gin adapter for the roulette module.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	walletdomain "github.com/sunova/game_economy/internal/modules/wallet/domain"
	"github.com/sunova/game_economy/internal/modules/roulette/domain"
	"github.com/sunova/game_economy/internal/modules/roulette/usecase"
)

// Handler handles HTTP requests for the roulette module
type Handler struct {
	svc *usecase.RouletteUseCase
}

// NewHandler creates a new HTTP handler
func NewHandler(svc *usecase.RouletteUseCase) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all roulette routes
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/place-bet", h.PlaceBet)
	api.POST("/settle", h.Settle)
}

type placeBetRequest struct {
	UserID   string `json:"userId" binding:"required"`
	RoundID  string `json:"roundId" binding:"required"`
	OptionID string `json:"optionId" binding:"required"`
	Amount   int64  `json:"amount" binding:"required"`
}

type settleRequest struct {
	RoundID string `json:"roundId" binding:"required"`
	Result  *int   `json:"result" binding:"required"`
}

// PlaceBet places a wager on the current round
func (h *Handler) PlaceBet(c *gin.Context) {
	var req placeBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId, roundId, optionId and amount are required"})
		return
	}

	_, balance, err := h.svc.PlaceBet(c.Request.Context(), req.UserID, req.RoundID, req.OptionID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBet),
			errors.Is(err, walletdomain.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// Settle distributes payouts for a drawn result
func (h *Handler) Settle(c *gin.Context) {
	var req settleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roundId and result are required"})
		return
	}

	res, err := h.svc.SettleRound(c.Request.Context(), req.RoundID, *req.Result)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoundNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrRoundSettled),
			errors.Is(err, domain.ErrInvalidResult):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":           true,
		"roundId":      res.RoundID,
		"result":       res.Result,
		"totalPayouts": res.TotalPayouts,
	})
}

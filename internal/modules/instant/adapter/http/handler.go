// Package http provides the gin adapter for the instant play-once games.
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunova/game_economy/internal/modules/instant/domain"
	"github.com/sunova/game_economy/internal/modules/instant/usecase"
	walletdomain "github.com/sunova/game_economy/internal/modules/wallet/domain"
)

// Handler handles HTTP requests for the instant games
type Handler struct {
	svc *usecase.InstantUseCase
}

// NewHandler creates a new HTTP handler
func NewHandler(svc *usecase.InstantUseCase) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers one play endpoint per configured game, e.g.
// POST /api/greedy-cat/play.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	for _, g := range h.svc.Games() {
		code := g.Code
		api.POST("/"+g.Route+"/play", func(c *gin.Context) {
			h.play(c, code)
		})
	}
}

type playRequest struct {
	UserID string `json:"userId" binding:"required"`
	Amount int64  `json:"betAmount" binding:"required"`
}

func (h *Handler) play(c *gin.Context, gameCode string) {
	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and betAmount are required"})
		return
	}

	outcome, err := h.svc.Play(c.Request.Context(), req.UserID, gameCode, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownGame):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrInvalidBet),
			errors.Is(err, walletdomain.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, outcome)
}

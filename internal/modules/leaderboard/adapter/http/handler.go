// Package http provides the gin adapter for the leaderboard module.
package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	walletdomain "github.com/sunova/game_economy/internal/modules/wallet/domain"
	"github.com/sunova/game_economy/internal/modules/leaderboard/usecase"
	"github.com/sunova/game_economy/pkg/logger"
)

// DailyScores is the slice of the wallet module the leaderboard reads:
// today's top scores and the day-boundary reset.
type DailyScores interface {
	DailyTop(ctx context.Context, limit int) ([]walletdomain.DailyEntry, error)
	DailyReset(ctx context.Context) error
}

// Handler handles HTTP requests for the leaderboard module
type Handler struct {
	svc   *usecase.LeaderboardUseCase
	daily DailyScores
}

// NewHandler creates a new HTTP handler
func NewHandler(svc *usecase.LeaderboardUseCase, daily DailyScores) *Handler {
	return &Handler{svc: svc, daily: daily}
}

// RegisterRoutes registers all leaderboard routes
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/daily-top", h.DailyTop)
	api.GET("/top-winners", h.TopWinners)
	api.GET("/winners", h.Winners)
	api.GET("/winners/:roundId", h.WinnersByRound)
	api.GET("/cron/daily-reset", h.DailyReset)
}

// DailyTop returns today's top 20 by net flow
func (h *Handler) DailyTop(c *gin.Context) {
	entries, err := h.daily.DailyTop(c.Request.Context(), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// TopWinners returns the 10 most recent winners
func (h *Handler) TopWinners(c *gin.Context) {
	winners, err := h.svc.TopWinners(c.Request.Context(), 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, winners)
}

// Winners returns the 50 most recent winners
func (h *Handler) Winners(c *gin.Context) {
	winners, err := h.svc.TopWinners(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, winners)
}

// WinnersByRound returns the winners of one round
func (h *Handler) WinnersByRound(c *gin.Context) {
	winners, err := h.svc.WinnersByRound(c.Request.Context(), c.Param("roundId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, winners)
}

// DailyReset drops every day's scores other than today's. Triggered by an
// external cron at the UTC day boundary.
func (h *Handler) DailyReset(c *gin.Context) {
	if err := h.daily.DailyReset(c.Request.Context()); err != nil {
		logger.Error(c.Request.Context()).Err(err).Msg("Daily reset failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	logger.Info(c.Request.Context()).Msg("Daily leaderboard reset completed")
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Daily reset completed"})
}

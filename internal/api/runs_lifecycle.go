package api

import (
	"net/http"
	"unicode/utf8"

	"github.com/Drakonfox/Hard-to-Die/internal/constants"
	"github.com/Drakonfox/Hard-to-Die/internal/game"
	"github.com/Drakonfox/Hard-to-Die/internal/logging"

	"github.com/gin-gonic/gin"
)

type CreateRunPayload struct {
	Difficulty game.Difficulty `json:"difficulty"`
	PlayerName string          `json:"player_name"`
}

// CreateRun starts a new run and returns its id plus the opening snapshot.
func (h *RunHandler) CreateRun(c *gin.Context) {
	var req CreateRunPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = game.DifficultyNormal
	}
	if utf8.RuneCountInString(req.PlayerName) > 32 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerNameExceeds})
		return
	}
	if req.PlayerName == "" {
		req.PlayerName = "Anonymous"
	}

	s, err := h.manager.CreateRun(req.Difficulty, req.PlayerName)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	snap := s.Snapshot()
	logging.Info("run created", logging.Fields{
		constants.LogFieldRunID:      snap.ID,
		constants.LogFieldDifficulty: string(snap.Difficulty),
	})
	c.JSON(http.StatusCreated, gin.H{
		"run_id": snap.ID,
		"run":    snap,
		"shop":   s.ShopItems(),
	})
}

// GetRun returns the current run snapshot. While the run sits in the shop
// phase the response also carries the shop listing.
func (h *RunHandler) GetRun(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	snap := s.Snapshot()
	out := gin.H{"run": snap}
	if snap.Phase == game.PhaseShop {
		out["shop"] = s.ShopItems()
	}
	c.JSON(http.StatusOK, out)
}

// Restart abandons the current run and resets the session to a fresh run at
// the same difficulty.
func (h *RunHandler) Restart(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	s.Restart()
	c.JSON(http.StatusOK, gin.H{
		"run":  s.Snapshot(),
		"shop": s.ShopItems(),
	})
}

package api

import (
	"net/http"
	"strconv"

	"github.com/Drakonfox/Hard-to-Die/internal/constants"
	"github.com/Drakonfox/Hard-to-Die/internal/dedupe"
	"github.com/Drakonfox/Hard-to-Die/internal/game"

	"github.com/gin-gonic/gin"
)

// Leaderboard returns the best finished runs, limited to top 10 by default.
// Concurrent requests for the same limit collapse into a single query.
func (h *RunHandler) Leaderboard(c *gin.Context) {
	// optional ?limit=N
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	key := "leaderboard:" + strconv.Itoa(limit)
	v, err, _ := dedupe.LeaderboardGroup.Do(key, func() (interface{}, error) {
		return h.repo.GetTopRuns(limit)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	records, _ := v.([]game.RunRecord)
	c.JSON(http.StatusOK, records)
}

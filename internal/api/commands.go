package api

import (
	"net/http"

	"github.com/Drakonfox/Hard-to-Die/internal/constants"

	"github.com/gin-gonic/gin"
)

// StartLevel leaves the shop into the next level and starts its tick loop.
func (h *RunHandler) StartLevel(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := s.ProceedFromShop(); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"run": s.Snapshot()})
}

type UseActionPayload struct {
	ActionID string `json:"action_id"`
}

// UseAction triggers a roster action. An action on cooldown, a stunned
// player or a wrong phase makes the command a no-op; the response carries
// whether it fired so clients can give feedback without treating it as an
// error.
func (h *RunHandler) UseAction(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req UseActionPayload
	if err := c.ShouldBindJSON(&req); err != nil || req.ActionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrActionIDRequired})
		return
	}
	fired := s.UseAction(req.ActionID)
	c.JSON(http.StatusOK, gin.H{"fired": fired, "run": s.Snapshot()})
}

type UseConsumablePayload struct {
	ConsumableID string `json:"consumable_id"`
}

// UseConsumable triggers an inventory consumable. Same no-op contract as
// UseAction.
func (h *RunHandler) UseConsumable(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req UseConsumablePayload
	if err := c.ShouldBindJSON(&req); err != nil || req.ConsumableID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrConsumableIDRequired})
		return
	}
	fired := s.UseConsumable(req.ConsumableID)
	c.JSON(http.StatusOK, gin.H{"fired": fired, "run": s.Snapshot()})
}

// EnterShop moves a won level into the shop phase and returns the listing.
func (h *RunHandler) EnterShop(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := s.EnterShop(); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"run":  s.Snapshot(),
		"shop": s.ShopItems(),
	})
}

type BuyPayload struct {
	ItemID string `json:"item_id"`
}

// ShopBuy purchases a shop item. When an action purchase hits the roster
// cap the snapshot comes back with a pending purchase the client must
// resolve via replace or cancel.
func (h *RunHandler) ShopBuy(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req BuyPayload
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrItemIDRequired})
		return
	}
	if err := s.Buy(req.ItemID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"run":  s.Snapshot(),
		"shop": s.ShopItems(),
	})
}

type ReplacePayload struct {
	ActionID string `json:"action_id"`
}

// ShopReplace resolves a pending purchase by swapping out a roster action.
func (h *RunHandler) ShopReplace(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req ReplacePayload
	if err := c.ShouldBindJSON(&req); err != nil || req.ActionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrActionIDRequired})
		return
	}
	if err := s.ConfirmReplacement(req.ActionID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"run":  s.Snapshot(),
		"shop": s.ShopItems(),
	})
}

// ShopCancel abandons a pending purchase and refunds its cost.
func (h *RunHandler) ShopCancel(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := s.CancelReplacement(); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"run":  s.Snapshot(),
		"shop": s.ShopItems(),
	})
}

// Catalog returns the static game content: purchasable actions and
// consumables plus the difficulty table.
func (h *RunHandler) Catalog(c *gin.Context) {
	cat := h.manager.Catalog()
	c.JSON(http.StatusOK, gin.H{
		"actions":      cat.Actions,
		"consumables":  cat.Consumables,
		"upgrades":     cat.Upgrades,
		"difficulties": cat.Difficulties,
	})
}

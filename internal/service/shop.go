package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Drakonfox/Hard-to-Die/internal/game"
)

var (
	ErrUnknownItem       = errors.New("unknown shop item")
	ErrInsufficientFunds = errors.New("not enough rage points")
	ErrAlreadyOwned      = errors.New("action already owned")
	ErrInventoryFull     = errors.New("consumable inventory is full")
	ErrMaxLevel          = errors.New("action is already at max level")
	ErrPendingPurchase   = errors.New("a pending purchase must be resolved first")
	ErrNoPendingPurchase = errors.New("no pending purchase to resolve")
	ErrBadReplacement    = errors.New("replacement target is not in the roster")
)

// ShopItem is one purchasable entry of the shop catalog, rebuilt from the
// current run state on every read.
type ShopItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // action | upgrade | consumable
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Owned       bool   `json:"owned"`
	// TargetID and NextLevel are set for upgrade items.
	TargetID  string `json:"target_id,omitempty"`
	NextLevel int    `json:"next_level,omitempty"`
}

const (
	itemPrefixAction     = "action_"
	itemPrefixUpgrade    = "upgrade_"
	itemPrefixConsumable = "consumable_"
)

// ShopItems lists the catalog against the current run: every action with an
// owned flag, an upgrade entry per owned action below max level, and every
// consumable.
func (s *Session) ShopItems() []ShopItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.sim.Run()

	items := make([]ShopItem, 0, len(s.catalog.Actions)+len(s.catalog.Consumables)+len(r.Actions))
	for i := range s.catalog.Actions {
		ca := &s.catalog.Actions[i]
		items = append(items, ShopItem{
			ID:          itemPrefixAction + ca.ID,
			Type:        "action",
			Name:        ca.Name,
			Icon:        ca.Icon,
			Description: ca.Description,
			Cost:        ca.Cost,
			Owned:       r.FindAction(ca.ID) != nil,
		})
	}
	for i := range r.Actions {
		a := &r.Actions[i]
		step, ok := s.catalog.Upgrades[a.ID]
		if !ok || a.Level >= game.MaxActionLevel {
			continue
		}
		items = append(items, ShopItem{
			ID:          itemPrefixUpgrade + a.ID,
			Type:        "upgrade",
			Name:        fmt.Sprintf("%s Lv.%d", a.Name, a.Level+1),
			Icon:        a.Icon,
			Description: fmt.Sprintf("Upgrade %s: +%.0f damage, -%.1fs cooldown.", a.Name, step.DamagePlus, step.CooldownMinus),
			Cost:        step.Cost * a.Level,
			TargetID:    a.ID,
			NextLevel:   a.Level + 1,
		})
	}
	for i := range s.catalog.Consumables {
		cc := &s.catalog.Consumables[i]
		items = append(items, ShopItem{
			ID:          itemPrefixConsumable + cc.ID,
			Type:        "consumable",
			Name:        cc.Name,
			Icon:        cc.Icon,
			Description: cc.Description,
			Cost:        cc.Cost,
			Owned:       r.FindConsumable(cc.ID) != nil,
		})
	}
	return items
}

// Buy purchases a shop item. Action purchases against a full roster debit
// the currency and park the purchase as pending: the buyer must confirm a
// replacement or cancel for a refund, so spent currency always ends up
// exchanged or returned.
func (s *Session) Buy(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.sim.Run()
	if r.Phase != game.PhaseShop {
		return ErrWrongPhase
	}
	if r.Pending != nil {
		return ErrPendingPurchase
	}

	switch {
	case strings.HasPrefix(itemID, itemPrefixAction):
		return s.buyActionLocked(itemID, strings.TrimPrefix(itemID, itemPrefixAction))
	case strings.HasPrefix(itemID, itemPrefixUpgrade):
		return s.buyUpgradeLocked(strings.TrimPrefix(itemID, itemPrefixUpgrade))
	case strings.HasPrefix(itemID, itemPrefixConsumable):
		return s.buyConsumableLocked(strings.TrimPrefix(itemID, itemPrefixConsumable))
	default:
		return ErrUnknownItem
	}
}

func (s *Session) buyActionLocked(itemID, actionID string) error {
	r := s.sim.Run()
	tpl := s.catalog.ActionByID(actionID)
	if tpl == nil {
		return ErrUnknownItem
	}
	if r.FindAction(actionID) != nil {
		return ErrAlreadyOwned
	}
	if r.RagePoints < tpl.Cost {
		return ErrInsufficientFunds
	}
	r.RagePoints -= tpl.Cost
	action := cloneAction(tpl)
	if len(r.Actions) >= game.MaxActions {
		r.Pending = &game.PendingPurchase{ItemID: itemID, Action: action, Cost: tpl.Cost}
		return nil
	}
	r.Actions = append(r.Actions, action)
	return nil
}

func (s *Session) buyUpgradeLocked(actionID string) error {
	r := s.sim.Run()
	a := r.FindAction(actionID)
	if a == nil {
		return ErrUnknownItem
	}
	step, ok := s.catalog.Upgrades[actionID]
	if !ok {
		return ErrUnknownItem
	}
	if a.Level >= game.MaxActionLevel {
		return ErrMaxLevel
	}
	cost := step.Cost * a.Level
	if r.RagePoints < cost {
		return ErrInsufficientFunds
	}
	r.RagePoints -= cost

	a.Damage += step.DamagePlus
	a.Cooldown -= step.CooldownMinus
	if a.Cooldown < game.MinCooldown {
		a.Cooldown = game.MinCooldown
	}
	if a.Dot != nil && step.DotPerSecondPlus > 0 {
		a.Dot.PerSecond += step.DotPerSecondPlus
	}
	a.Level++
	return nil
}

func (s *Session) buyConsumableLocked(consumableID string) error {
	r := s.sim.Run()
	tpl := s.catalog.ConsumableByID(consumableID)
	if tpl == nil {
		return ErrUnknownItem
	}
	if existing := r.FindConsumable(consumableID); existing != nil {
		if r.RagePoints < tpl.Cost {
			return ErrInsufficientFunds
		}
		r.RagePoints -= tpl.Cost
		existing.Quantity++
		return nil
	}
	if len(r.Consumables) >= game.MaxConsumableTypes {
		return ErrInventoryFull
	}
	if r.RagePoints < tpl.Cost {
		return ErrInsufficientFunds
	}
	r.RagePoints -= tpl.Cost
	c := tpl.Consumable
	if c.Effect.Dot != nil {
		dot := *c.Effect.Dot
		c.Effect.Dot = &dot
	}
	c.Quantity = 1
	r.Consumables = append(r.Consumables, c)
	return nil
}

// ConfirmReplacement completes a pending action purchase by swapping out an
// existing roster action. A target id that is not in the roster aborts the
// transaction: the purchase is refunded, the pending state cleared and the
// caller gets a diagnostic.
func (s *Session) ConfirmReplacement(existingActionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.sim.Run()
	if r.Pending == nil {
		return ErrNoPendingPurchase
	}
	for i := range r.Actions {
		if r.Actions[i].ID == existingActionID {
			r.Actions[i] = r.Pending.Action
			r.Pending = nil
			return nil
		}
	}
	r.RagePoints += r.Pending.Cost
	r.Pending = nil
	return ErrBadReplacement
}

// CancelReplacement abandons a pending action purchase and refunds its cost.
func (s *Session) CancelReplacement() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.sim.Run()
	if r.Pending == nil {
		return ErrNoPendingPurchase
	}
	r.RagePoints += r.Pending.Cost
	r.Pending = nil
	return nil
}

// cloneAction copies a catalog template into a fresh roster entry. The DoT
// template is deep-copied because upgrades mutate it in place.
func cloneAction(tpl *game.CatalogAction) game.ActionState {
	a := tpl.ActionState
	if a.Dot != nil {
		dot := *a.Dot
		a.Dot = &dot
	}
	a.Level = 1
	a.CurrentCooldown = 0
	return a
}

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Drakonfox/Hard-to-Die/internal/game"
)

func TestBuyActionDebitsAndAddsToRoster(t *testing.T) {
	s := newTestSession(t, nil)
	if err := s.Buy("action_nuke"); err != nil {
		t.Fatalf("buy: %v", err)
	}
	snap := s.Snapshot()
	if snap.RagePoints != game.StartingRagePoints-10 {
		t.Fatalf("expected 10 rage debited, got %d", snap.RagePoints)
	}
	if len(snap.Actions) != 1 || snap.Actions[0].ID != "nuke" || snap.Actions[0].Level != 1 {
		t.Fatalf("unexpected roster: %+v", snap.Actions)
	}
}

func TestBuyActionRejections(t *testing.T) {
	s := newTestSession(t, nil)
	_ = s.Buy("action_nuke")

	if err := s.Buy("action_nuke"); !errors.Is(err, ErrAlreadyOwned) {
		t.Fatalf("expected ErrAlreadyOwned, got %v", err)
	}
	if err := s.Buy("action_golden_hammer"); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if err := s.Buy("action_ghost"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if err := s.Buy("mystery_box"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem for unprefixed id, got %v", err)
	}
}

func TestBuyWrongPhase(t *testing.T) {
	s := newTestSession(t, nil)
	_ = s.Buy("action_nuke")
	_ = s.ProceedFromShop()
	if err := s.Buy("action_a1"); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase, got %v", err)
	}
}

func TestBuyUpgradeAppliesStepAndScalesCost(t *testing.T) {
	s := newTestSession(t, nil)
	_ = s.Buy("action_nuke") // 50 - 10 = 40

	if err := s.Buy("upgrade_nuke"); err != nil { // level 1 -> cost 20
		t.Fatalf("upgrade: %v", err)
	}
	snap := s.Snapshot()
	if snap.RagePoints != 20 {
		t.Fatalf("expected 20 rage left, got %d", snap.RagePoints)
	}
	a := snap.Actions[0]
	if a.Level != 2 || a.Damage != 505 || a.Cooldown != 0.9 {
		t.Fatalf("expected step applied (level 2, 505 damage, 0.9 cd), got %+v", a)
	}

	// Level 2 -> cost 40, but only 20 rage remains.
	if err := s.Buy("upgrade_nuke"); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds on scaled cost, got %v", err)
	}
}

func TestUpgradeDoesNotMutateEarlierSnapshots(t *testing.T) {
	s := newTestSession(t, nil)
	if err := s.Buy("action_gash"); err != nil {
		t.Fatalf("buy: %v", err)
	}
	snap := s.Snapshot()

	if err := s.Buy("upgrade_gash"); err != nil {
		t.Fatalf("upgrade: %v", err)
	}

	if got := snap.Actions[0].Dot.PerSecond; got != 3 {
		t.Fatalf("snapshot changed behind the reader's back: Dot.PerSecond 3 -> %v", got)
	}
	if got := s.Snapshot().Actions[0].Dot.PerSecond; got != 4 {
		t.Fatalf("expected live roster upgraded to 4/s, got %v", got)
	}
}

func TestBuyUpgradeMaxLevel(t *testing.T) {
	s := newTestSession(t, nil)
	_ = s.Buy("action_a1")
	// Force the roster entry to the cap.
	s.mu.Lock()
	s.sim.Run().Actions[0].Level = game.MaxActionLevel
	s.sim.Run().RagePoints = 10000
	s.mu.Unlock()

	if err := s.Buy("upgrade_a1"); !errors.Is(err, ErrMaxLevel) {
		t.Fatalf("expected ErrMaxLevel, got %v", err)
	}
}

func TestCooldownUpgradeFloors(t *testing.T) {
	s := newTestSession(t, nil)
	_ = s.Buy("action_nuke")
	s.mu.Lock()
	s.sim.Run().Actions[0].Cooldown = game.MinCooldown + 0.05
	s.sim.Run().RagePoints = 10000
	s.mu.Unlock()

	if err := s.Buy("upgrade_nuke"); err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if got := s.Snapshot().Actions[0].Cooldown; got != game.MinCooldown {
		t.Fatalf("expected cooldown floored at %v, got %v", game.MinCooldown, got)
	}
}

func fillRoster(t *testing.T, s *Session) {
	t.Helper()
	s.mu.Lock()
	s.sim.Run().RagePoints = 1000
	s.mu.Unlock()
	for i := 1; i <= game.MaxActions; i++ {
		if err := s.Buy(fmt.Sprintf("action_a%d", i)); err != nil {
			t.Fatalf("buy a%d: %v", i, err)
		}
	}
}

func TestPendingPurchaseConfirmSwapsAction(t *testing.T) {
	s := newTestSession(t, nil)
	fillRoster(t, s)
	before := s.Snapshot().RagePoints

	if err := s.Buy("action_a7"); err != nil {
		t.Fatalf("buy against full roster: %v", err)
	}
	snap := s.Snapshot()
	if snap.Pending == nil || snap.Pending.Action.ID != "a7" {
		t.Fatalf("expected a pending purchase, got %+v", snap.Pending)
	}
	if snap.RagePoints != before-5 {
		t.Fatalf("expected cost debited while pending, got %d", snap.RagePoints)
	}
	if len(snap.Actions) != game.MaxActions {
		t.Fatalf("expected roster unchanged while pending, got %d", len(snap.Actions))
	}

	// A second purchase and leaving the shop are blocked until resolved.
	if err := s.Buy("consumable_c1"); !errors.Is(err, ErrPendingPurchase) {
		t.Fatalf("expected ErrPendingPurchase, got %v", err)
	}
	if err := s.ProceedFromShop(); !errors.Is(err, ErrPendingPurchase) {
		t.Fatalf("expected ErrPendingPurchase on level start, got %v", err)
	}

	if err := s.ConfirmReplacement("a3"); err != nil {
		t.Fatalf("ConfirmReplacement: %v", err)
	}
	snap = s.Snapshot()
	if snap.Pending != nil {
		t.Fatalf("expected pending cleared, got %+v", snap.Pending)
	}
	ids := make([]string, 0, len(snap.Actions))
	for _, a := range snap.Actions {
		ids = append(ids, a.ID)
	}
	found := false
	for _, id := range ids {
		if id == "a3" {
			t.Fatalf("expected a3 swapped out, roster=%v", ids)
		}
		if id == "a7" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a7 swapped in, roster=%v", ids)
	}
}

func TestPendingPurchaseCancelRefunds(t *testing.T) {
	s := newTestSession(t, nil)
	fillRoster(t, s)
	before := s.Snapshot().RagePoints

	_ = s.Buy("action_a7")
	if err := s.CancelReplacement(); err != nil {
		t.Fatalf("CancelReplacement: %v", err)
	}
	snap := s.Snapshot()
	if snap.Pending != nil || snap.RagePoints != before {
		t.Fatalf("expected refund and cleared pending, got rage=%d pending=%+v", snap.RagePoints, snap.Pending)
	}
}

func TestPendingPurchaseBadTargetRefunds(t *testing.T) {
	s := newTestSession(t, nil)
	fillRoster(t, s)
	before := s.Snapshot().RagePoints

	_ = s.Buy("action_a7")
	if err := s.ConfirmReplacement("ghost"); !errors.Is(err, ErrBadReplacement) {
		t.Fatalf("expected ErrBadReplacement, got %v", err)
	}
	snap := s.Snapshot()
	if snap.Pending != nil || snap.RagePoints != before {
		t.Fatalf("expected refund after bad target, got rage=%d pending=%+v", snap.RagePoints, snap.Pending)
	}
}

func TestReplacementWithoutPending(t *testing.T) {
	s := newTestSession(t, nil)
	if err := s.ConfirmReplacement("a1"); !errors.Is(err, ErrNoPendingPurchase) {
		t.Fatalf("expected ErrNoPendingPurchase, got %v", err)
	}
	if err := s.CancelReplacement(); !errors.Is(err, ErrNoPendingPurchase) {
		t.Fatalf("expected ErrNoPendingPurchase, got %v", err)
	}
}

func TestBuyConsumableStacksAndCaps(t *testing.T) {
	s := newTestSession(t, nil)
	s.mu.Lock()
	s.sim.Run().RagePoints = 1000
	s.mu.Unlock()

	if err := s.Buy("consumable_c1"); err != nil {
		t.Fatalf("buy c1: %v", err)
	}
	if err := s.Buy("consumable_c1"); err != nil {
		t.Fatalf("buy c1 again: %v", err)
	}
	snap := s.Snapshot()
	if len(snap.Consumables) != 1 || snap.Consumables[0].Quantity != 2 {
		t.Fatalf("expected one stack of 2, got %+v", snap.Consumables)
	}

	for i := 2; i <= game.MaxConsumableTypes; i++ {
		if err := s.Buy(fmt.Sprintf("consumable_c%d", i)); err != nil {
			t.Fatalf("buy c%d: %v", i, err)
		}
	}
	if err := s.Buy("consumable_c5"); !errors.Is(err, ErrInventoryFull) {
		t.Fatalf("expected ErrInventoryFull on fifth type, got %v", err)
	}
	// Topping up an owned stack is still allowed at the cap.
	if err := s.Buy("consumable_c1"); err != nil {
		t.Fatalf("expected restock to bypass the type cap, got %v", err)
	}
}

func TestShopItemsListing(t *testing.T) {
	s := newTestSession(t, nil)
	_ = s.Buy("action_nuke")

	items := s.ShopItems()
	var sawOwnedNuke, sawNukeUpgrade, sawConsumable bool
	for _, it := range items {
		switch {
		case it.ID == "action_nuke":
			sawOwnedNuke = it.Owned
		case it.ID == "upgrade_nuke":
			sawNukeUpgrade = true
			if it.NextLevel != 2 || it.Cost != 20 {
				t.Fatalf("unexpected upgrade entry: %+v", it)
			}
		case it.Type == "consumable":
			sawConsumable = true
		}
	}
	if !sawOwnedNuke || !sawNukeUpgrade || !sawConsumable {
		t.Fatalf("listing incomplete: owned=%v upgrade=%v consumable=%v", sawOwnedNuke, sawNukeUpgrade, sawConsumable)
	}
}

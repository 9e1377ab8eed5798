package game

import "testing"

func TestGenerateLevelThresholds(t *testing.T) {
	names := func(l Level) map[string]int {
		out := map[string]int{}
		for _, h := range l.Healers {
			out[h.Name]++
		}
		return out
	}

	l1 := GenerateLevel(1)
	if len(l1.Healers) != 1 || l1.Healers[0].Name != "Acolyte" {
		t.Fatalf("expected a lone acolyte on level 1, got %+v", l1.Healers)
	}
	if l1.MaxHP != BaseHP || l1.Timer != LevelTime {
		t.Fatalf("unexpected level 1 stats: %+v", l1)
	}

	l2 := names(GenerateLevel(2))
	if l2["Cleric"] != 1 || len(GenerateLevel(2).Healers) != 1 {
		t.Fatalf("expected a lone cleric on level 2, got %v", l2)
	}

	l3 := names(GenerateLevel(3))
	if l3["Cleric"] != 1 || l3["Shaman"] != 1 || l3["Acolyte"] != 1 {
		t.Fatalf("expected cleric+shaman+acolyte on level 3, got %v", l3)
	}

	l5 := names(GenerateLevel(5))
	if l5["Paladin"] != 1 || l5["Shaman"] != 1 || l5["Cleric"] != 1 {
		t.Fatalf("expected paladin to join at level 5, got %v", l5)
	}

	l6 := names(GenerateLevel(6))
	if l6["Acolyte"] != 1 {
		t.Fatalf("expected the extra acolyte every third level, got %v", l6)
	}
}

func TestGenerateLevelScaling(t *testing.T) {
	l4 := GenerateLevel(4)
	if l4.MaxHP != BaseHP+3*HPPerLevel {
		t.Fatalf("expected max HP %v on level 4, got %v", BaseHP+3*HPPerLevel, l4.MaxHP)
	}
	if GenerateLevel(0).Level != 1 {
		t.Fatalf("expected level floor at 1")
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	r := &Run{
		ID:     "r1",
		Phase:  PhasePlaying,
		HP:     -5,
		MaxHP:  100,
		Shield: &Shield{Amount: 10},
		Healers: []Healer{{
			ID:        "h1",
			Abilities: []HealerAbility{{ID: "heal", Cooldown: 6}},
		}},
		ActiveDots: []ActiveEffect{{EffectID: "bleed", RemainingDuration: 2}},
		Actions: []ActionState{{
			ID: "bleed", Dot: &EffectTemplate{ID: "bleed", PerSecond: 3, Duration: 4},
		}},
		Consumables: []Consumable{{
			ID:     "dagger",
			Effect: ConsumableEffect{Kind: ConsumableDamageAndDot, Damage: 20, Dot: &EffectTemplate{ID: "wound", PerSecond: 5, Duration: 6}},
		}},
		Pending: &PendingPurchase{
			ItemID: "action_fire",
			Action: ActionState{ID: "fire", Dot: &EffectTemplate{ID: "burn", PerSecond: 6, Duration: 3}},
		},
	}

	snap := r.Snapshot()
	if snap.HP != 0 {
		t.Fatalf("expected display-clamped HP, got %v", snap.HP)
	}

	snap.Shield.Amount = 999
	snap.Healers[0].Abilities[0].Cooldown = 999
	snap.ActiveDots[0].RemainingDuration = 999
	snap.Actions[0].Dot.PerSecond = 999
	snap.Consumables[0].Effect.Dot.PerSecond = 999
	snap.Pending.Action.Dot.PerSecond = 999

	if r.Shield.Amount != 10 {
		t.Fatalf("snapshot aliased shield: %+v", r.Shield)
	}
	if r.Healers[0].Abilities[0].Cooldown != 6 {
		t.Fatalf("snapshot aliased healer abilities")
	}
	if r.ActiveDots[0].RemainingDuration != 2 {
		t.Fatalf("snapshot aliased effect ledger")
	}
	if r.Actions[0].Dot.PerSecond != 3 {
		t.Fatalf("snapshot aliased action DoT template")
	}
	if r.Consumables[0].Effect.Dot.PerSecond != 5 {
		t.Fatalf("snapshot aliased consumable DoT template")
	}
	if r.Pending.Action.Dot.PerSecond != 6 {
		t.Fatalf("snapshot aliased pending purchase DoT template")
	}
}

func TestAddEventBoundsLog(t *testing.T) {
	r := &Run{}
	for i := 0; i < EventLogLimit+10; i++ {
		r.AddEvent(EventInfo, "tick")
	}
	if len(r.Events) != EventLogLimit {
		t.Fatalf("expected log bounded at %d, got %d", EventLogLimit, len(r.Events))
	}
	if r.Events[len(r.Events)-1].Seq != EventLogLimit+10 {
		t.Fatalf("expected newest event kept, got seq %d", r.Events[len(r.Events)-1].Seq)
	}
}

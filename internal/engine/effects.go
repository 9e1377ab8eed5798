package engine

import (
	"fmt"

	"github.com/Drakonfox/Hard-to-Die/internal/game"
)

// AddDot installs a DoT instance, refreshing the existing instance when one
// with the same effect id is active. Refresh replaces remaining duration and
// magnitude; it never stacks.
func (s *Sim) AddDot(tpl game.EffectTemplate) {
	s.run.ActiveDots = upsertEffect(s.run.ActiveDots, tpl)
	s.run.AddEvent(game.EventEffect, fmt.Sprintf("%s %s afflicts you (%.0f/s for %.0fs)", tpl.Icon, tpl.ID, tpl.PerSecond, tpl.Duration))
}

// AddHot installs a HoT instance with the same refresh-not-stack rule.
func (s *Sim) AddHot(tpl game.EffectTemplate) {
	s.run.ActiveHots = upsertEffect(s.run.ActiveHots, tpl)
	s.run.AddEvent(game.EventEffect, fmt.Sprintf("%s %s takes hold (%.1f/s for %.0fs)", tpl.Icon, tpl.ID, tpl.PerSecond, tpl.Duration))
}

func upsertEffect(ledger []game.ActiveEffect, tpl game.EffectTemplate) []game.ActiveEffect {
	for i := range ledger {
		if ledger[i].EffectID == tpl.ID {
			ledger[i].RemainingDuration = tpl.Duration
			ledger[i].PerSecond = tpl.PerSecond
			ledger[i].Icon = tpl.Icon
			return ledger
		}
	}
	return append(ledger, game.ActiveEffect{
		EffectID:          tpl.ID,
		Icon:              tpl.Icon,
		RemainingDuration: tpl.Duration,
		PerSecond:         tpl.PerSecond,
	})
}

// ClearDots removes every DoT instance unconditionally. HoTs are untouched.
// Used by the cleanse ability.
func (s *Sim) ClearDots() {
	if len(s.run.ActiveDots) == 0 {
		return
	}
	s.run.ActiveDots = s.run.ActiveDots[:0]
}

// tickEffects accrues every active effect over delta and expires finished
// instances. It returns the aggregated damage and healing totals so the
// combat resolver applies each once per tick, keeping shield absorption
// order well-defined.
func (s *Sim) tickEffects(delta float64) (dotTotal, hotTotal float64) {
	s.run.ActiveDots, dotTotal = accrue(s.run.ActiveDots, delta)
	s.run.ActiveHots, hotTotal = accrue(s.run.ActiveHots, delta)
	return dotTotal, hotTotal
}

func accrue(ledger []game.ActiveEffect, delta float64) ([]game.ActiveEffect, float64) {
	total := 0.0
	kept := ledger[:0]
	for i := range ledger {
		total += ledger[i].PerSecond * delta
		ledger[i].RemainingDuration -= delta
		if ledger[i].RemainingDuration > 0 {
			kept = append(kept, ledger[i])
		}
	}
	return kept, total
}

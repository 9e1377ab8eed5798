package engine

import (
	"fmt"
	"math"

	"github.com/Drakonfox/Hard-to-Die/internal/game"
)

// Advance runs one fixed-step simulation tick. Order per step: run timers
// and cooldowns wind down, the effect ledger accrues and expires, the
// aggregated effect totals go through the combat resolver, healer abilities
// fire, and only then are the terminal conditions evaluated. Reaching zero
// HP wins the level and takes priority over timer expiry in the same step.
func (s *Sim) Advance(delta float64) {
	if s.run.Phase != game.PhasePlaying || delta <= 0 {
		return
	}
	r := s.run

	r.Timer = clampZero(r.Timer - delta)
	r.StunTimer = clampZero(r.StunTimer - delta)
	r.InstabilityFlash = clampZero(r.InstabilityFlash - delta)
	r.HealingReduced.Remaining = clampZero(r.HealingReduced.Remaining - delta)
	for i := range r.Actions {
		r.Actions[i].CurrentCooldown = clampZero(r.Actions[i].CurrentCooldown - delta)
	}
	s.tickHealerTimers(delta)

	dotTotal, hotTotal := s.tickEffects(delta)
	s.ApplyDamage(dotTotal, true)
	s.ApplyHealing(hotTotal)

	s.triggerHealers()

	switch {
	case r.HP <= 0:
		s.winLevel()
	case r.Timer <= 0:
		r.Win = false
		r.Phase = game.PhaseGameOver
		r.AddEvent(game.EventInfo, "Time is up. The healers kept you alive.")
	}
}

// winLevel computes the level summary from the raw (possibly negative) HP
// and credits the total as rage points.
func (s *Sim) winLevel() {
	r := s.run
	damageDone := r.MaxHP - r.DisplayHP()
	overkill := 0.0
	if r.HP < 0 {
		overkill = -r.HP
	}
	summary := &game.LevelSummary{
		DamageBonus:   int(math.Floor(damageDone * 1.5)),
		TimeBonus:     int(math.Floor(r.Timer * 10)),
		OverkillBonus: int(math.Floor(overkill * 5)),
	}
	summary.Total = summary.DamageBonus + summary.TimeBonus + summary.OverkillBonus

	r.Summary = summary
	r.RagePoints += summary.Total
	r.Win = true
	r.Phase = game.PhaseLevelWon
	r.AddEvent(game.EventInfo, fmt.Sprintf("You died! Level %d complete (+%d rage)", r.CurrentLevel, summary.Total))
}

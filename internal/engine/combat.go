package engine

import (
	"fmt"

	"github.com/Drakonfox/Hard-to-Die/internal/game"
)

// ApplyDamage routes a raw damage amount through shield absorption into HP.
// Non-DoT damage is scaled by the difficulty's player-damage modifier; DoT
// totals were already computed from action stats and pass through unscaled.
// HP may go negative here — the overkill bonus needs the raw value — and is
// clamped at the read surface.
func (s *Sim) ApplyDamage(amount float64, isDot bool) {
	if amount <= 0 {
		return
	}
	if !isDot {
		amount *= s.mods.PlayerDamage
	}
	if sh := s.run.Shield; sh != nil && sh.Amount > 0 {
		absorbed := sh.Amount
		if amount < absorbed {
			absorbed = amount
		}
		sh.Amount -= absorbed
		amount -= absorbed
		s.run.AddEvent(game.EventShield, fmt.Sprintf("Shield absorbs %.0f damage", absorbed))
		if sh.Amount <= 0 {
			s.run.Shield = nil
			s.run.AddEvent(game.EventShield, "Shield shattered")
		}
	}
	if amount > 0 {
		s.run.HP -= amount
		s.run.AddEvent(game.EventDamage, fmt.Sprintf("You take %.0f damage", amount))
	}
}

// ApplyHealing adds to HP, dampened by an active healing-reduction window
// and clamped at max HP.
func (s *Sim) ApplyHealing(amount float64) {
	if amount <= 0 {
		return
	}
	if s.run.HealingReduced.Remaining > 0 {
		amount *= 1 - s.run.HealingReduced.Percent
	}
	s.run.HP += amount
	if s.run.HP > s.run.MaxHP {
		s.run.HP = s.run.MaxHP
	}
}

// AddShield grows the run's shield, creating it when absent. Shields from
// multiple sources accumulate additively and are never overwritten.
func (s *Sim) AddShield(amount float64) {
	if amount <= 0 {
		return
	}
	if s.run.Shield == nil {
		s.run.Shield = &game.Shield{}
	}
	s.run.Shield.Amount += amount
}

package engine

import (
	"fmt"

	"github.com/Drakonfox/Hard-to-Die/internal/game"
)

// UseAction invokes a roster action. Invalid invocations — unknown id, on
// cooldown, player stunned, level not running — are silent no-ops by design:
// the UI disables these buttons, and the core guards anyway. Returns whether
// the action fired.
func (s *Sim) UseAction(id string) bool {
	r := s.run
	if r.Phase != game.PhasePlaying {
		return false
	}
	a := r.FindAction(id)
	if a == nil || a.CurrentCooldown > 0 || r.StunTimer > 0 {
		return false
	}

	a.CurrentCooldown = a.Cooldown

	// Missing-HP scaling joins base damage before the difficulty modifier
	// is applied inside ApplyDamage.
	damage := a.Damage
	if a.MissingHPScalar > 0 {
		damage += a.MissingHPScalar * (r.MaxHP - r.DisplayHP())
	}
	if damage > 0 {
		r.AddEvent(game.EventDamage, fmt.Sprintf("%s %s!", a.Icon, a.Name))
		s.ApplyDamage(damage, false)
	}

	s.gainInstability(a.InstabilityGain)

	if a.SelfStunDuration > 0 && a.SelfStunDuration > r.StunTimer {
		// Self-stun overwrites rather than accumulates; it can only extend.
		r.StunTimer = a.SelfStunDuration
		r.AddEvent(game.EventInfo, fmt.Sprintf("You are stunned for %.0fs", a.SelfStunDuration))
	}
	if a.Dot != nil {
		s.AddDot(*a.Dot)
	}
	if a.HealerStunChance > 0 && s.rng.Float64() < a.HealerStunChance {
		s.stunRandomHealer(a.HealerStunDuration)
	}
	return true
}

// UseConsumable spends one charge of an inventory consumable and dispatches
// its tagged effect. Unknown ids and empty stacks are silent no-ops. The
// entry is removed from the inventory once its quantity reaches zero.
func (s *Sim) UseConsumable(id string) bool {
	r := s.run
	if r.Phase != game.PhasePlaying {
		return false
	}
	c := r.FindConsumable(id)
	if c == nil || c.Quantity <= 0 {
		return false
	}
	c.Quantity--

	switch c.Effect.Kind {
	case game.ConsumableStunAllHealers:
		for i := range r.Healers {
			r.Healers[i].StunTimer += c.Effect.Duration
		}
		r.AddEvent(game.EventInfo, fmt.Sprintf("%s %s: all healers stunned for %.0fs", c.Icon, c.Name, c.Effect.Duration))
	case game.ConsumableApplySelfDot:
		if c.Effect.Dot != nil {
			s.AddDot(*c.Effect.Dot)
		}
	case game.ConsumableReduceHealing:
		r.HealingReduced = game.HealingReduction{
			Remaining: c.Effect.Duration,
			Percent:   c.Effect.Percent,
		}
		r.AddEvent(game.EventEffect, fmt.Sprintf("%s %s: healing reduced %.0f%% for %.0fs", c.Icon, c.Name, c.Effect.Percent*100, c.Effect.Duration))
	case game.ConsumableDamageAndDot:
		r.AddEvent(game.EventDamage, fmt.Sprintf("%s %s!", c.Icon, c.Name))
		s.ApplyDamage(c.Effect.Damage, false)
		if c.Effect.Dot != nil {
			s.AddDot(*c.Effect.Dot)
		}
	}

	if c.Quantity <= 0 {
		kept := r.Consumables[:0]
		for i := range r.Consumables {
			if r.Consumables[i].ID != id {
				kept = append(kept, r.Consumables[i])
			}
		}
		r.Consumables = kept
	}
	return true
}

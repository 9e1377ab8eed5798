package engine

import (
	"fmt"

	"github.com/Drakonfox/Hard-to-Die/internal/game"
)

// tickHealerTimers advances stun timers and ability countdowns. A stunned
// healer freezes all of its ability countdowns, but its own stun timer
// always runs down.
func (s *Sim) tickHealerTimers(delta float64) {
	for i := range s.run.Healers {
		h := &s.run.Healers[i]
		if h.StunTimer > 0 {
			h.StunTimer = clampZero(h.StunTimer - delta)
			continue
		}
		for j := range h.Abilities {
			h.Abilities[j].TimeToNextUse = clampZero(h.Abilities[j].TimeToNextUse - delta)
		}
	}
}

// triggerHealers fires every ready ability of every non-stunned healer and
// resets its countdown, scaled by the difficulty's healer-cooldown modifier
// at the moment of the reset.
func (s *Sim) triggerHealers() {
	for i := range s.run.Healers {
		h := &s.run.Healers[i]
		if h.Stunned() {
			continue
		}
		for j := range h.Abilities {
			ab := &h.Abilities[j]
			if ab.TimeToNextUse > 0 {
				continue
			}
			s.resolveAbility(h, ab)
			ab.TimeToNextUse = ab.Cooldown * s.mods.HealerCooldown
		}
	}
}

func (s *Sim) resolveAbility(h *game.Healer, ab *game.HealerAbility) {
	switch ab.Kind {
	case game.AbilityDirectHeal:
		s.ApplyHealing(ab.Amount)
		s.run.AddEvent(game.EventHeal, fmt.Sprintf("%s %s casts %s for %.0f", h.Icon, h.Name, ab.Name, ab.Amount))
	case game.AbilityShield:
		s.AddShield(ab.Amount)
		s.run.AddEvent(game.EventShield, fmt.Sprintf("%s %s raises %s (%.0f)", h.Icon, h.Name, ab.Name, ab.Amount))
	case game.AbilityRegeneration:
		if ab.Duration <= 0 {
			return
		}
		s.AddHot(game.EffectTemplate{
			ID:        ab.ID,
			Icon:      ab.Icon,
			PerSecond: ab.Amount / ab.Duration,
			Duration:  ab.Duration,
		})
	case game.AbilityCleanse:
		s.ClearDots()
		s.run.AddEvent(game.EventHeal, fmt.Sprintf("%s %s purges your wounds", h.Icon, h.Name))
	}
}

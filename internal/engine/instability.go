package engine

import (
	"fmt"

	"github.com/Drakonfox/Hard-to-Die/internal/game"
)

// gainInstability accumulates the meter and resolves overflows. One large
// gain can overflow several times; each overflow stuns a uniformly random
// healer chosen among those not stunned at that moment, so a chain of
// overflows in one event never hits the same healer twice. When no healer
// is left to stun the remaining overflows are forfeited.
func (s *Sim) gainInstability(amount float64) {
	if amount <= 0 {
		return
	}
	s.run.Instability += amount
	for s.run.Instability >= game.MaxInstability {
		s.run.Instability -= game.MaxInstability
		s.run.InstabilityFlash = game.InstabilityFlashWindow
		if !s.stunRandomHealer(game.InstabilityStunDuration) {
			// Healers exhausted: forfeit remaining overflow stuns but keep
			// draining the meter below the threshold.
			for s.run.Instability >= game.MaxInstability {
				s.run.Instability -= game.MaxInstability
			}
			break
		}
	}
}

// stunRandomHealer adds a stun to one random non-stunned healer. External
// stuns are additive, unlike the player's own overwrite-style self-stun.
// Returns false when every healer is already stunned.
func (s *Sim) stunRandomHealer(duration float64) bool {
	candidates := s.run.UnstunnedHealers()
	if len(candidates) == 0 {
		return false
	}
	target := candidates[s.rng.Intn(len(candidates))]
	target.StunTimer += duration
	s.run.AddEvent(game.EventInfo, fmt.Sprintf("%s %s is stunned for %.0fs!", target.Icon, target.Name, duration))
	return true
}

package engine

import (
	"math/rand"

	"github.com/Drakonfox/Hard-to-Die/internal/game"
)

// Sim drives a single run's simulation. It owns no goroutines and performs
// no I/O: the caller invokes Advance with fixed-step deltas and the command
// methods between ticks. All randomness flows through the injected source so
// a run is reproducible from a seed and a command script.
type Sim struct {
	run  *game.Run
	mods game.DifficultyModifiers
	rng  *rand.Rand
}

// New wires a simulation around run with the difficulty pair selected at
// run start.
func New(run *game.Run, mods game.DifficultyModifiers, rng *rand.Rand) *Sim {
	return &Sim{run: run, mods: mods, rng: rng}
}

// Run exposes the simulated run to the owning session.
func (s *Sim) Run() *game.Run { return s.run }

// Modifiers returns the difficulty pair fixed at run start.
func (s *Sim) Modifiers() game.DifficultyModifiers { return s.mods }

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

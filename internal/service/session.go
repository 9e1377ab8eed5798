package service

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Drakonfox/Hard-to-Die/internal/engine"
	"github.com/Drakonfox/Hard-to-Die/internal/game"
	"github.com/Drakonfox/Hard-to-Die/internal/logging"
	"github.com/Drakonfox/Hard-to-Die/internal/storage"
)

var (
	ErrRunNotFound       = errors.New("run not found")
	ErrWrongPhase        = errors.New("command not valid in current phase")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

// TickInterval is the fixed step of the level loop.
const TickInterval = 100 * time.Millisecond

// Session owns one run: its state, its difficulty-fixed simulation and the
// level tick loop. Every command and every tick serializes on mu, so
// commands are atomic with respect to the simulation (no partial state is
// ever observable).
type Session struct {
	mu   sync.Mutex
	sim  *engine.Sim
	rng  *rand.Rand
	loop *loopHandle

	catalog    *game.Catalog
	repo       storage.Repository
	playerName string

	started  bool // a level has been loaded at least once this run
	recorded bool // the run outcome has been written to storage
	headless bool // no tick loop; the caller drives Advance itself
}

// loopHandle is the cancellable scheduled task driving one level. Stop is
// idempotent and safe from both the terminal-condition path and external
// teardown.
type loopHandle struct {
	stop chan struct{}
	once sync.Once
}

func newLoopHandle() *loopHandle { return &loopHandle{stop: make(chan struct{})} }

func (l *loopHandle) Stop() {
	if l == nil {
		return
	}
	l.once.Do(func() { close(l.stop) })
}

// NewSession creates a session for a fresh run at the given difficulty.
// A nil repo disables run recording (tests, headless simulation).
func NewSession(id string, difficulty game.Difficulty, playerName string, catalog *game.Catalog, repo storage.Repository, seed int64) *Session {
	run := &game.Run{
		ID:         id,
		Difficulty: difficulty,
		Phase:      game.PhaseStart,
	}
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		sim:        engine.New(run, catalog.Modifiers(difficulty), rng),
		rng:        rng,
		catalog:    catalog,
		repo:       repo,
		playerName: playerName,
	}
	s.startRunLocked()
	return s
}

// NewHeadlessSession creates a session without a real-time tick loop. The
// caller steps the simulation via Advance with deltas of its choosing, which
// makes runs fully deterministic for a fixed seed.
func NewHeadlessSession(id string, difficulty game.Difficulty, playerName string, catalog *game.Catalog, repo storage.Repository, seed int64) *Session {
	s := NewSession(id, difficulty, playerName, catalog, repo, seed)
	s.headless = true
	return s
}

// startRunLocked resets currency, roster and level counter to their initial
// values and sends the player to the shop. Callers hold mu (or own the
// session exclusively, as NewSession does).
func (s *Session) startRunLocked() {
	r := s.sim.Run()
	r.Phase = game.PhaseShop
	r.RagePoints = game.StartingRagePoints
	r.CurrentLevel = 1
	r.Actions = nil
	r.Consumables = nil
	r.Healers = nil
	r.Summary = nil
	r.Pending = nil
	r.Win = false
	r.Events = nil
	s.started = false
	s.recorded = false
	r.AddEvent(game.EventInfo, "Welcome to the shop. Buy something to hurt yourself with.")
}

// LoadLevel deterministically builds the level from its number, resets the
// per-level state and starts the tick loop. Any prior loop is stopped
// first: two loops never run for one session.
func (s *Session) LoadLevel(levelNumber int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLevelLocked(levelNumber)
}

func (s *Session) loadLevelLocked(levelNumber int) {
	s.loop.Stop()

	lvl := game.GenerateLevel(levelNumber)
	r := s.sim.Run()
	r.CurrentLevel = lvl.Level
	r.MaxHP = lvl.MaxHP
	r.HP = lvl.MaxHP
	r.Timer = lvl.Timer
	r.Healers = lvl.Healers
	r.Shield = nil
	r.Instability = 0
	r.InstabilityFlash = 0
	r.StunTimer = 0
	r.HealingReduced = game.HealingReduction{}
	r.ActiveDots = nil
	r.ActiveHots = nil
	r.Summary = nil
	r.Win = false
	r.Phase = game.PhasePlaying
	for i := range r.Actions {
		r.Actions[i].CurrentCooldown = 0
	}
	r.AddEvent(game.EventInfo, "The healers arrive. Die before the timer runs out!")

	s.started = true
	if s.headless {
		return
	}
	s.loop = newLoopHandle()
	go s.runLoop(s.loop)
}

// runLoop drives the simulation at the fixed step until the level reaches a
// terminal phase or the handle is stopped. Deltas are measured so a slow
// scheduler does not dilate game time.
func (s *Session) runLoop(handle *loopHandle) {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-handle.stop:
			return
		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now

			phase, ok := s.advanceFromLoop(handle, delta)
			if !ok {
				return
			}
			if phase != game.PhasePlaying {
				handle.Stop()
				return
			}
		}
	}
}

// advanceFromLoop applies one measured tick on behalf of handle. A tick that
// was already in flight when the handle was stopped, or whose handle is no
// longer the session's current loop (a new level loaded in between), must
// not touch the state; both are re-checked under the mutex.
func (s *Session) advanceFromLoop(handle *loopHandle, delta float64) (game.Phase, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-handle.stop:
		return "", false
	default:
	}
	if s.loop != handle {
		return "", false
	}
	s.sim.Advance(delta)
	phase := s.sim.Run().Phase
	if phase == game.PhaseGameOver {
		s.recordRunLocked("timer_expired")
	}
	return phase, true
}

// StopLoop halts the current level loop, if any. Idempotent; callable from
// teardown regardless of session state.
func (s *Session) StopLoop() {
	s.mu.Lock()
	handle := s.loop
	s.mu.Unlock()
	handle.Stop()
}

// Advance steps the simulation manually. Used by tests and the headless
// simulator instead of the real-time loop.
func (s *Session) Advance(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sim.Advance(delta)
	if s.sim.Run().Phase == game.PhaseGameOver {
		s.recordRunLocked("timer_expired")
	}
}

// ProceedFromShop leaves the shop into the next level: the first level when
// none was played yet, otherwise the one after the last.
func (s *Session) ProceedFromShop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.sim.Run()
	if r.Phase != game.PhaseShop {
		return ErrWrongPhase
	}
	if r.Pending != nil {
		return ErrPendingPurchase
	}
	next := r.CurrentLevel
	if s.started {
		next++
	}
	s.loadLevelLocked(next)
	return nil
}

// EnterShop moves a won level into the shop phase.
func (s *Session) EnterShop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.sim.Run()
	if r.Phase != game.PhaseLevelWon {
		return ErrWrongPhase
	}
	r.Phase = game.PhaseShop
	return nil
}

// Restart abandons the current run and resets to a fresh one at the same
// difficulty. An in-progress run is recorded as abandoned.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loop.Stop()
	if s.started {
		s.recordRunLocked("abandoned")
	}
	s.startRunLocked()
}

// UseAction forwards the player command to the simulation. Invalid commands
// are silent no-ops per the engine contract.
func (s *Session) UseAction(actionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.UseAction(actionID)
}

// UseConsumable forwards the player command to the simulation.
func (s *Session) UseConsumable(consumableID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.UseConsumable(consumableID)
}

// Snapshot returns a deep copy of the run's read surface.
func (s *Session) Snapshot() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Run().Snapshot()
}

// recordRunLocked writes the run outcome once. Callers hold mu.
func (s *Session) recordRunLocked(outcome string) {
	if s.recorded || s.repo == nil {
		return
	}
	s.recorded = true
	r := s.sim.Run()
	rec := &game.RunRecord{
		RunID:         r.ID,
		PlayerName:    s.playerName,
		Difficulty:    string(r.Difficulty),
		LevelsCleared: r.CurrentLevel - 1,
		RagePoints:    r.RagePoints,
		Outcome:       outcome,
	}
	if err := s.repo.SaveRunRecord(rec); err != nil {
		logging.Error("failed to record finished run", err, logging.Fields{"run_id": r.ID})
	}
}

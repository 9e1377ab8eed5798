package game

import (
	"gorm.io/gorm"
)

// Phase is the lifecycle state of a run. Using a dedicated type instead of
// plain string makes code safer and self-documenting.
type Phase string

const (
	PhaseStart    Phase = "start"
	PhaseShop     Phase = "shop"
	PhasePlaying  Phase = "playing"
	PhaseLevelWon Phase = "level_won"
	PhaseGameOver Phase = "game_over"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyModifiers is the pair of scalars selected at run start.
// HealerCooldown multiplies every healer ability cooldown at the moment the
// ability resets (easier difficulty means slower healer cadence);
// PlayerDamage multiplies all non-DoT player damage at application time.
type DifficultyModifiers struct {
	Description    string  `json:"description" yaml:"description"`
	HealerCooldown float64 `json:"healer_cooldown" yaml:"healer_cooldown"`
	PlayerDamage   float64 `json:"player_damage" yaml:"player_damage"`
}

// Global tuning values. Gameplay numbers that vary per entry live in the
// catalog; these are structural limits of a run.
const (
	BaseHP         = 100.0
	HPPerLevel     = 20.0
	LevelTime      = 60.0
	MaxInstability = 100.0

	// Duration of the healer stun issued by an instability overflow.
	InstabilityStunDuration = 3.0
	// Observational window for the "instability triggered" flash.
	InstabilityFlashWindow = 0.5

	MaxActions         = 6
	MaxActionLevel     = 5
	MaxConsumableTypes = 4
	MinCooldown        = 0.5

	StartingRagePoints = 50

	EventLogLimit = 40
)

// EffectTemplate describes a DoT or HoT before it is applied. PerSecond is
// the accrual rate; Duration the total lifetime in seconds.
type EffectTemplate struct {
	ID        string  `json:"id" yaml:"id"`
	Icon      string  `json:"icon" yaml:"icon"`
	PerSecond float64 `json:"per_second" yaml:"per_second"`
	Duration  float64 `json:"duration" yaml:"duration"`
}

// ActiveEffect is a live DoT/HoT instance in the run's effect ledger.
// Instances with the same EffectID never coexist: re-application refreshes
// RemainingDuration instead of stacking.
type ActiveEffect struct {
	EffectID          string  `json:"effect_id"`
	Icon              string  `json:"icon"`
	RemainingDuration float64 `json:"remaining_duration"`
	PerSecond         float64 `json:"per_second"`
}

// Shield absorbs incoming damage before HP. Shields from multiple sources
// accumulate additively into the single instance owned by the run.
type Shield struct {
	Amount float64 `json:"amount"`
}

// HealingReduction is a timed window during which all incoming healing is
// multiplied by (1 - Percent).
type HealingReduction struct {
	Remaining float64 `json:"remaining"`
	Percent   float64 `json:"percent"`
}

// ActionState is a self-damaging action in the player's roster. The optional
// fields (SelfStunDuration, Dot, MissingHPScalar, HealerStunChance) are zero
// valued when the action does not carry the mechanic.
type ActionState struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Icon        string `json:"icon" yaml:"icon"`
	Description string `json:"description" yaml:"description"`

	Damage          float64 `json:"damage" yaml:"damage"`
	Cooldown        float64 `json:"cooldown" yaml:"cooldown"`
	CurrentCooldown float64 `json:"current_cooldown" yaml:"-"`
	InstabilityGain float64 `json:"instability_gain" yaml:"instability_gain"`
	Level           int     `json:"level" yaml:"-"`

	SelfStunDuration   float64         `json:"self_stun_duration,omitempty" yaml:"self_stun_duration"`
	Dot                *EffectTemplate `json:"dot,omitempty" yaml:"dot"`
	MissingHPScalar    float64         `json:"missing_hp_scalar,omitempty" yaml:"missing_hp_scalar"`
	HealerStunChance   float64         `json:"healer_stun_chance,omitempty" yaml:"healer_stun_chance"`
	HealerStunDuration float64         `json:"healer_stun_duration,omitempty" yaml:"healer_stun_duration"`
}

// AbilityKind is the closed set of healer ability behaviors, dispatched by a
// single switch at resolution time.
type AbilityKind string

const (
	AbilityDirectHeal   AbilityKind = "direct_heal"
	AbilityCleanse      AbilityKind = "cleanse"
	AbilityShield       AbilityKind = "shield"
	AbilityRegeneration AbilityKind = "regeneration"
)

type HealerAbility struct {
	ID   string      `json:"id" yaml:"id"`
	Name string      `json:"name" yaml:"name"`
	Icon string      `json:"icon" yaml:"icon"`
	Kind AbilityKind `json:"kind" yaml:"kind"`

	Amount float64 `json:"amount" yaml:"amount"`
	// Duration applies to regeneration: the HoT runs Duration seconds and
	// accrues Amount in total.
	Duration      float64 `json:"duration,omitempty" yaml:"duration"`
	Cooldown      float64 `json:"cooldown" yaml:"cooldown"`
	TimeToNextUse float64 `json:"time_to_next_use" yaml:"time_to_next_use"`
}

// Healer is an opposing NPC. While StunTimer > 0 none of its ability
// countdowns advance; StunTimer itself always decrements.
type Healer struct {
	ID        string          `json:"id" yaml:"id"`
	Name      string          `json:"name" yaml:"name"`
	Icon      string          `json:"icon" yaml:"icon"`
	Abilities []HealerAbility `json:"abilities" yaml:"abilities"`
	StunTimer float64         `json:"stun_timer" yaml:"-"`
}

func (h *Healer) Stunned() bool { return h.StunTimer > 0 }

// ConsumableEffectKind tags the consumable effect variant.
type ConsumableEffectKind string

const (
	ConsumableStunAllHealers ConsumableEffectKind = "stun_all_healers"
	ConsumableApplySelfDot   ConsumableEffectKind = "apply_self_dot"
	ConsumableReduceHealing  ConsumableEffectKind = "reduce_healing"
	ConsumableDamageAndDot   ConsumableEffectKind = "damage_and_dot"
)

// ConsumableEffect is a tagged variant; only the fields relevant to Kind are
// set.
type ConsumableEffect struct {
	Kind     ConsumableEffectKind `json:"kind" yaml:"kind"`
	Duration float64              `json:"duration,omitempty" yaml:"duration"`
	Percent  float64              `json:"percent,omitempty" yaml:"percent"`
	Damage   float64              `json:"damage,omitempty" yaml:"damage"`
	Dot      *EffectTemplate      `json:"dot,omitempty" yaml:"dot"`
}

type Consumable struct {
	ID          string           `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Icon        string           `json:"icon" yaml:"icon"`
	Description string           `json:"description" yaml:"description"`
	Effect      ConsumableEffect `json:"effect" yaml:"effect"`
	Quantity    int              `json:"quantity" yaml:"-"`
}

// LevelSummary is computed once at the level-won transition and feeds the
// currency award.
type LevelSummary struct {
	DamageBonus   int `json:"damage_bonus"`
	TimeBonus     int `json:"time_bonus"`
	OverkillBonus int `json:"overkill_bonus"`
	Total         int `json:"total"`
}

type EventKind string

const (
	EventDamage EventKind = "damage"
	EventHeal   EventKind = "heal"
	EventShield EventKind = "shield"
	EventEffect EventKind = "effect"
	EventInfo   EventKind = "info"
)

// Event is one line of the run's bounded event log.
type Event struct {
	Seq     int       `json:"seq"`
	Kind    EventKind `json:"kind"`
	Message string    `json:"message"`
}

// PendingPurchase is the shop sub-state entered when an action purchase hits
// the roster cap. Currency was already debited; the purchase must complete
// via replacement or be refunded via cancellation.
type PendingPurchase struct {
	ItemID string      `json:"item_id"`
	Action ActionState `json:"action"`
	Cost   int         `json:"cost"`
}

// Run is the full mutable state of one play-through. It is owned exclusively
// by the run session; collaborators only ever see Snapshot copies.
type Run struct {
	ID         string     `json:"id"`
	Difficulty Difficulty `json:"difficulty"`
	Phase      Phase      `json:"phase"`

	HP             float64          `json:"-"`
	MaxHP          float64          `json:"max_hp"`
	Shield         *Shield          `json:"shield,omitempty"`
	Instability    float64          `json:"instability"`
	Timer          float64          `json:"timer"`
	StunTimer      float64          `json:"stun_timer"`
	HealingReduced HealingReduction `json:"healing_reduced"`

	ActiveDots []ActiveEffect `json:"active_dots"`
	ActiveHots []ActiveEffect `json:"active_hots"`
	Healers    []Healer       `json:"healers"`

	Actions     []ActionState `json:"actions"`
	Consumables []Consumable  `json:"consumables"`

	RagePoints   int              `json:"rage_points"`
	CurrentLevel int              `json:"current_level"`
	Win          bool             `json:"win"`
	Summary      *LevelSummary    `json:"summary,omitempty"`
	Pending      *PendingPurchase `json:"pending_purchase,omitempty"`

	// InstabilityFlash is a purely observational countdown set when an
	// overflow triggers, so the view can flash the meter.
	InstabilityFlash float64 `json:"instability_flash"`

	Events   []Event `json:"events"`
	eventSeq int
}

// DisplayHP is HP clamped to [0, MaxHP]. Raw HP may go negative transiently
// so the overkill bonus can be computed at the win transition.
func (r *Run) DisplayHP() float64 {
	if r.HP < 0 {
		return 0
	}
	if r.HP > r.MaxHP {
		return r.MaxHP
	}
	return r.HP
}

// AddEvent appends a message to the bounded event log.
func (r *Run) AddEvent(kind EventKind, message string) {
	r.eventSeq++
	r.Events = append(r.Events, Event{Seq: r.eventSeq, Kind: kind, Message: message})
	if len(r.Events) > EventLogLimit {
		r.Events = r.Events[len(r.Events)-EventLogLimit:]
	}
}

// FindAction returns the roster action with the given id, or nil.
func (r *Run) FindAction(id string) *ActionState {
	for i := range r.Actions {
		if r.Actions[i].ID == id {
			return &r.Actions[i]
		}
	}
	return nil
}

// FindConsumable returns the inventory consumable with the given id, or nil.
func (r *Run) FindConsumable(id string) *Consumable {
	for i := range r.Consumables {
		if r.Consumables[i].ID == id {
			return &r.Consumables[i]
		}
	}
	return nil
}

// UnstunnedHealers returns pointers to every healer whose stun timer has
// elapsed, in roster order.
func (r *Run) UnstunnedHealers() []*Healer {
	out := make([]*Healer, 0, len(r.Healers))
	for i := range r.Healers {
		if !r.Healers[i].Stunned() {
			out = append(out, &r.Healers[i])
		}
	}
	return out
}

// RunRecord stores the outcome of a finished run for the leaderboard.
type RunRecord struct {
	gorm.Model
	RunID         string `json:"run_id" gorm:"index"`
	PlayerName    string `json:"player_name"`
	Difficulty    string `json:"difficulty"`
	LevelsCleared int    `json:"levels_cleared"`
	RagePoints    int    `json:"rage_points"`
	Outcome       string `json:"outcome"` // timer_expired | abandoned
}

// TableName overrides the default GORM table name so the persisted table is
// `finished_runs`.
func (RunRecord) TableName() string { return "finished_runs" }

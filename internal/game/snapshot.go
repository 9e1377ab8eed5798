package game

// Snapshot is the read surface exposed to collaborators (view layer, shop
// UI). It is a deep copy of the run state taken under the session lock, so
// readers never alias live simulation data.
type Snapshot struct {
	ID         string     `json:"id"`
	Difficulty Difficulty `json:"difficulty"`
	Phase      Phase      `json:"phase"`

	HP             float64          `json:"hp"`
	MaxHP          float64          `json:"max_hp"`
	Shield         *Shield          `json:"shield,omitempty"`
	Instability    float64          `json:"instability"`
	MaxInstability float64          `json:"max_instability"`
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

	InstabilityFlash bool    `json:"instability_flash"`
	Events           []Event `json:"events"`
}

// Snapshot deep-copies the run into its read model. HP is clamped for
// display; the raw (possibly negative) value never leaves the core.
func (r *Run) Snapshot() Snapshot {
	s := Snapshot{
		ID:             r.ID,
		Difficulty:     r.Difficulty,
		Phase:          r.Phase,
		HP:             r.DisplayHP(),
		MaxHP:          r.MaxHP,
		Instability:    r.Instability,
		MaxInstability: MaxInstability,
		Timer:          r.Timer,
		StunTimer:      r.StunTimer,
		HealingReduced: r.HealingReduced,
		RagePoints:     r.RagePoints,
		CurrentLevel:   r.CurrentLevel,
		Win:            r.Win,

		InstabilityFlash: r.InstabilityFlash > 0,

		ActiveDots:  append([]ActiveEffect(nil), r.ActiveDots...),
		ActiveHots:  append([]ActiveEffect(nil), r.ActiveHots...),
		Actions:     append([]ActionState(nil), r.Actions...),
		Consumables: append([]Consumable(nil), r.Consumables...),
		Events:      append([]Event(nil), r.Events...),
	}
	// Upgrades mutate DoT templates in place, so the pointers inside the
	// copied slices must be cloned too.
	for i := range s.Actions {
		s.Actions[i].Dot = cloneEffect(s.Actions[i].Dot)
	}
	for i := range s.Consumables {
		s.Consumables[i].Effect.Dot = cloneEffect(s.Consumables[i].Effect.Dot)
	}
	if r.Shield != nil {
		sh := *r.Shield
		s.Shield = &sh
	}
	if r.Summary != nil {
		sum := *r.Summary
		s.Summary = &sum
	}
	if r.Pending != nil {
		p := *r.Pending
		p.Action.Dot = cloneEffect(p.Action.Dot)
		s.Pending = &p
	}
	s.Healers = make([]Healer, len(r.Healers))
	for i := range r.Healers {
		h := r.Healers[i]
		h.Abilities = append([]HealerAbility(nil), h.Abilities...)
		s.Healers[i] = h
	}
	return s
}

func cloneEffect(tpl *EffectTemplate) *EffectTemplate {
	if tpl == nil {
		return nil
	}
	c := *tpl
	return &c
}

package game

// CatalogAction is a purchasable action template with its shop cost.
type CatalogAction struct {
	ActionState `yaml:",inline"`
	Cost        int `json:"cost" yaml:"cost"`
}

// CatalogConsumable is a purchasable consumable template with its shop cost.
type CatalogConsumable struct {
	Consumable `yaml:",inline"`
	Cost       int `json:"cost" yaml:"cost"`
}

// UpgradeStep is the fixed per-action improvement applied on each level-up.
// Every field only ever improves the action; cooldown reduction floors at
// MinCooldown.
type UpgradeStep struct {
	DamagePlus       float64 `json:"damage_plus" yaml:"damage_plus"`
	CooldownMinus    float64 `json:"cooldown_minus" yaml:"cooldown_minus"`
	DotPerSecondPlus float64 `json:"dot_per_second_plus" yaml:"dot_per_second_plus"`
	// Cost of the first upgrade; subsequent upgrades cost Cost x current level.
	Cost int `json:"cost" yaml:"cost"`
}

// Catalog is the full purchasable content of the game plus the difficulty
// table. The compiled-in default can be replaced via the YAML config file.
type Catalog struct {
	Actions      []CatalogAction                    `yaml:"actions"`
	Consumables  []CatalogConsumable                `yaml:"consumables"`
	Upgrades     map[string]UpgradeStep             `yaml:"upgrades"`
	Difficulties map[Difficulty]DifficultyModifiers `yaml:"difficulties"`
}

// ActionByID returns the catalog action template with the given id, or nil.
func (c *Catalog) ActionByID(id string) *CatalogAction {
	for i := range c.Actions {
		if c.Actions[i].ID == id {
			return &c.Actions[i]
		}
	}
	return nil
}

// ConsumableByID returns the catalog consumable with the given id, or nil.
func (c *Catalog) ConsumableByID(id string) *CatalogConsumable {
	for i := range c.Consumables {
		if c.Consumables[i].ID == id {
			return &c.Consumables[i]
		}
	}
	return nil
}

// Modifiers returns the difficulty pair for d, falling back to normal when
// the difficulty is unknown.
func (c *Catalog) Modifiers(d Difficulty) DifficultyModifiers {
	if m, ok := c.Difficulties[d]; ok {
		return m
	}
	return c.Difficulties[DifficultyNormal]
}

// DefaultCatalog returns the built-in game content. The shop sells actions
// and consumables; upgrades are generated per owned action from the upgrade
// table.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Actions: []CatalogAction{
			{Cost: 25, ActionState: ActionState{
				ID: "slap", Name: "Slap", Icon: "🖐️",
				Description: "A brisk slap across your own face. Cheap and always available.",
				Damage:      6, Cooldown: 1.5, InstabilityGain: 5,
			}},
			{Cost: 30, ActionState: ActionState{
				ID: "stub_toe", Name: "Stub Toe", Icon: "🦶",
				Description: "Deliberately stub your toe. Annoyingly painful.",
				Damage:      5, Cooldown: 1, InstabilityGain: 4,
			}},
			{Cost: 40, ActionState: ActionState{
				ID: "punch", Name: "Self Punch", Icon: "👊",
				Description: "A simple punch to the face. It's a start.",
				Damage:      10, Cooldown: 2, InstabilityGain: 8,
			}},
			{Cost: 75, ActionState: ActionState{
				ID: "bleed", Name: "Bleed", Icon: "🔪",
				Description: "Open a bleeding wound. Deals damage over time.",
				Damage:      5, Cooldown: 8, InstabilityGain: 12,
				Dot: &EffectTemplate{ID: "bleed", Icon: "🩸", PerSecond: 3, Duration: 4},
			}},
			{Cost: 90, ActionState: ActionState{
				ID: "set_on_fire", Name: "Set on Fire", Icon: "🔥",
				Description: "A fiery embrace. Rapid damage over a short time.",
				Damage:      5, Cooldown: 12, InstabilityGain: 15,
				Dot: &EffectTemplate{ID: "burn", Icon: "🔥", PerSecond: 6, Duration: 3},
			}},
			{Cost: 120, ActionState: ActionState{
				ID: "poison_self", Name: "Poison Self", Icon: "🧪",
				Description: "Ingest a foul concoction. Slow damage over a long time.",
				Damage:      2, Cooldown: 15, InstabilityGain: 10,
				Dot: &EffectTemplate{ID: "poison", Icon: "☠️", PerSecond: 2, Duration: 10},
			}},
			{Cost: 100, ActionState: ActionState{
				ID: "bang_head", Name: "Bang Head", Icon: "🤕",
				Description: "Bang your head against the wall. Effective, but dizzying.",
				Damage:      25, Cooldown: 5, InstabilityGain: 18,
			}},
			{Cost: 110, ActionState: ActionState{
				ID: "self_stun", Name: "Knockout Blow", Icon: "😵",
				Description: "Hit yourself so hard you black out for two seconds.",
				Damage:      18, Cooldown: 12, InstabilityGain: 20,
				SelfStunDuration: 2,
			}},
			{Cost: 130, ActionState: ActionState{
				ID: "desperate_blow", Name: "Desperate Blow", Icon: "💥",
				Description: "Hits harder the closer you are to full health.",
				Damage:      8, Cooldown: 10, InstabilityGain: 14,
				MissingHPScalar: 0.15,
			}},
			{Cost: 100, ActionState: ActionState{
				ID: "headbutt", Name: "Headbutt", Icon: "🐏",
				Description: "Charge head-first. May leave a nearby healer reeling.",
				Damage:      12, Cooldown: 6, InstabilityGain: 10,
				HealerStunChance: 0.35, HealerStunDuration: 2,
			}},
		},
		Consumables: []CatalogConsumable{
			{Cost: 60, Consumable: Consumable{
				ID: "painful_onion", Name: "Painful Onion", Icon: "🧅",
				Description: "Bite into a raw onion. The tears burn for a while.",
				Effect: ConsumableEffect{
					Kind: ConsumableApplySelfDot,
					Dot:  &EffectTemplate{ID: "onion_tears", Icon: "😭", PerSecond: 4, Duration: 5},
				},
			}},
			{Cost: 80, Consumable: Consumable{
				ID: "corrupted_coffee", Name: "Corrupted Coffee", Icon: "☕",
				Description: "Healing magic struggles to take hold of a caffeinated body.",
				Effect: ConsumableEffect{
					Kind: ConsumableReduceHealing, Percent: 0.5, Duration: 8,
				},
			}},
			{Cost: 70, Consumable: Consumable{
				ID: "flashbang", Name: "Flashbang", Icon: "🎇",
				Description: "Blind every healer in the room for a few seconds.",
				Effect: ConsumableEffect{
					Kind: ConsumableStunAllHealers, Duration: 3,
				},
			}},
			{Cost: 120, Consumable: Consumable{
				ID: "cursed_dagger", Name: "Cursed Dagger", Icon: "🗡️",
				Description: "A deep cut that refuses to close.",
				Effect: ConsumableEffect{
					Kind: ConsumableDamageAndDot, Damage: 20,
					Dot: &EffectTemplate{ID: "deep_wound", Icon: "💔", PerSecond: 5, Duration: 6},
				},
			}},
		},
		Upgrades: map[string]UpgradeStep{
			"slap":           {DamagePlus: 3, CooldownMinus: 0.1, Cost: 20},
			"stub_toe":       {DamagePlus: 3, CooldownMinus: 0.1, Cost: 20},
			"punch":          {DamagePlus: 5, CooldownMinus: 0.1, Cost: 30},
			"bleed":          {DamagePlus: 2, CooldownMinus: 0.3, DotPerSecondPlus: 1, Cost: 40},
			"set_on_fire":    {DamagePlus: 2, CooldownMinus: 0.4, DotPerSecondPlus: 1.5, Cost: 45},
			"poison_self":    {DamagePlus: 1, CooldownMinus: 0.5, DotPerSecondPlus: 0.5, Cost: 50},
			"bang_head":      {DamagePlus: 7, CooldownMinus: 0.2, Cost: 50},
			"self_stun":      {DamagePlus: 6, CooldownMinus: 0.4, Cost: 50},
			"desperate_blow": {DamagePlus: 3, CooldownMinus: 0.3, Cost: 55},
			"headbutt":       {DamagePlus: 4, CooldownMinus: 0.2, Cost: 45},
		},
		Difficulties: map[Difficulty]DifficultyModifiers{
			DifficultyEasy: {
				Description:    "Healers are sluggish and your blows land harder. A gentle path to the afterlife.",
				HealerCooldown: 1.25,
				PlayerDamage:   1.15,
			},
			DifficultyNormal: {
				Description:    "A balanced challenge. The healers won't make it easy for you.",
				HealerCooldown: 1.0,
				PlayerDamage:   1.0,
			},
			DifficultyHard: {
				Description:    "Healers are relentless and your self-harm is dampened. For the truly committed.",
				HealerCooldown: 0.85,
				PlayerDamage:   0.9,
			},
		},
	}
}

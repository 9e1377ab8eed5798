package game

import (
	"fmt"
	"math"
)

// Level is the deterministic per-level setup built from the level number.
type Level struct {
	Level   int
	MaxHP   float64
	Timer   float64
	Healers []Healer
}

func acolyte(id string, level int) Healer {
	return Healer{
		ID: id, Name: "Acolyte", Icon: "🧑‍⚕️",
		Abilities: []HealerAbility{
			{ID: id + "-mend", Name: "Minor Mend", Icon: "🩹", Kind: AbilityDirectHeal,
				Amount: 5 + float64(level), Cooldown: 8, TimeToNextUse: 4},
		},
	}
}

func cleric(id string, level int) Healer {
	return Healer{
		ID: id, Name: "Cleric", Icon: "🙏",
		Abilities: []HealerAbility{
			{ID: id + "-heal", Name: "Heal", Icon: "✨", Kind: AbilityDirectHeal,
				Amount: 10 + math.Floor(1.5*float64(level)), Cooldown: 6, TimeToNextUse: 5},
			{ID: id + "-purify", Name: "Purify", Icon: "💧", Kind: AbilityCleanse,
				Cooldown: 15, TimeToNextUse: 15},
		},
	}
}

func shaman(id string, level int) Healer {
	return Healer{
		ID: id, Name: "Shaman", Icon: "🌿",
		Abilities: []HealerAbility{
			{ID: id + "-regrowth", Name: "Regrowth", Icon: "🌱", Kind: AbilityRegeneration,
				Amount: 12 + 2*float64(level), Duration: 6, Cooldown: 18, TimeToNextUse: 10},
			{ID: id + "-mend", Name: "Mend", Icon: "❤️", Kind: AbilityDirectHeal,
				Amount: 6 + float64(level), Cooldown: 7, TimeToNextUse: 6},
		},
	}
}

func paladin(id string, level int) Healer {
	return Healer{
		ID: id, Name: "Paladin", Icon: "🛡️",
		Abilities: []HealerAbility{
			{ID: id + "-barrier", Name: "Barrier", Icon: "🔵", Kind: AbilityShield,
				Amount: 15 + 2*float64(level), Cooldown: 12, TimeToNextUse: 8},
			{ID: id + "-lay-on-hands", Name: "Lay on Hands", Icon: "🙌", Kind: AbilityDirectHeal,
				Amount: 12 + float64(level), Cooldown: 9, TimeToNextUse: 9},
		},
	}
}

// GenerateLevel builds the healer roster and player stats for a level
// number. Level 1 is a lone weak healer to introduce the mechanics; new
// archetypes join at fixed thresholds and every third level adds an extra
// acolyte. The construction is fully deterministic.
func GenerateLevel(levelNumber int) Level {
	if levelNumber < 1 {
		levelNumber = 1
	}
	healers := make([]Healer, 0, 4)
	if levelNumber == 1 {
		healers = append(healers, acolyte(fmt.Sprintf("acolyte-%d", levelNumber), levelNumber))
	} else {
		healers = append(healers, cleric(fmt.Sprintf("cleric-%d", levelNumber), levelNumber))
		if levelNumber >= 3 {
			healers = append(healers, shaman(fmt.Sprintf("shaman-%d", levelNumber), levelNumber))
		}
		if levelNumber >= 5 {
			healers = append(healers, paladin(fmt.Sprintf("paladin-%d", levelNumber), levelNumber))
		}
		if levelNumber%3 == 0 {
			healers = append(healers, acolyte(fmt.Sprintf("acolyte-%d", levelNumber), levelNumber))
		}
	}

	return Level{
		Level:   levelNumber,
		MaxHP:   BaseHP + HPPerLevel*float64(levelNumber-1),
		Timer:   LevelTime,
		Healers: healers,
	}
}

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Drakonfox/Hard-to-Die/internal/game"
)

type rawConfig struct {
	Server *struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database *struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	// Optional content override. When present it fully replaces the
	// built-in catalog, so a file must carry the whole shop.
	Catalog *game.Catalog `yaml:"catalog"`
}

// LoadedConfig contains the game catalog plus the server address and the
// run-record database path.
type LoadedConfig struct {
	Catalog       *game.Catalog
	ServerAddress string
	DatabasePath  string
}

// Default returns the configuration used when no config file is given.
func Default() *LoadedConfig {
	return &LoadedConfig{
		Catalog:       game.DefaultCatalog(),
		ServerAddress: "",
		DatabasePath:  "",
	}
}

// LoadConfig reads the YAML configuration file at path. Every section is
// optional; omitted sections fall back to built-in defaults.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := yaml.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	out := Default()
	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.Database != nil && rc.Database.Path != "" {
		out.DatabasePath = rc.Database.Path
	}
	if rc.Catalog != nil {
		if err := validateCatalog(rc.Catalog); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		out.Catalog = rc.Catalog
	}
	return out, nil
}

// validateCatalog enforces the cross-entry rules a loaded catalog must
// satisfy: unique ids, named entries, sane numbers, upgrade entries that
// reference real actions and a complete difficulty table.
func validateCatalog(c *game.Catalog) error {
	if len(c.Actions) == 0 {
		return fmt.Errorf("catalog has no actions (provide 'actions' array)")
	}
	actionIDs := make(map[string]struct{}, len(c.Actions))
	for _, a := range c.Actions {
		id := strings.TrimSpace(a.ID)
		if id == "" {
			return fmt.Errorf("action entry missing 'id'")
		}
		if a.Name == "" {
			return fmt.Errorf("action '%s' missing 'name'", id)
		}
		if _, exists := actionIDs[id]; exists {
			return fmt.Errorf("duplicate action id '%s'", id)
		}
		actionIDs[id] = struct{}{}
		if a.Cooldown < game.MinCooldown {
			return fmt.Errorf("action '%s': cooldown %.2f below minimum %.2f", id, a.Cooldown, game.MinCooldown)
		}
		if a.Cost <= 0 {
			return fmt.Errorf("action '%s': cost must be positive", id)
		}
		if a.Dot != nil && (a.Dot.PerSecond <= 0 || a.Dot.Duration <= 0) {
			return fmt.Errorf("action '%s': dot needs positive per_second and duration", id)
		}
		if a.HealerStunChance < 0 || a.HealerStunChance > 1 {
			return fmt.Errorf("action '%s': healer_stun_chance must be in [0,1]", id)
		}
	}

	consumableIDs := make(map[string]struct{}, len(c.Consumables))
	for _, cs := range c.Consumables {
		id := strings.TrimSpace(cs.ID)
		if id == "" {
			return fmt.Errorf("consumable entry missing 'id'")
		}
		if cs.Name == "" {
			return fmt.Errorf("consumable '%s' missing 'name'", id)
		}
		if _, exists := consumableIDs[id]; exists {
			return fmt.Errorf("duplicate consumable id '%s'", id)
		}
		consumableIDs[id] = struct{}{}
		switch cs.Effect.Kind {
		case game.ConsumableStunAllHealers:
			if cs.Effect.Duration <= 0 {
				return fmt.Errorf("consumable '%s': stun needs positive duration", id)
			}
		case game.ConsumableApplySelfDot:
			if cs.Effect.Dot == nil {
				return fmt.Errorf("consumable '%s': missing dot", id)
			}
		case game.ConsumableReduceHealing:
			if cs.Effect.Percent <= 0 || cs.Effect.Percent > 1 {
				return fmt.Errorf("consumable '%s': percent must be in (0,1]", id)
			}
		case game.ConsumableDamageAndDot:
			if cs.Effect.Damage <= 0 {
				return fmt.Errorf("consumable '%s': damage must be positive", id)
			}
		default:
			return fmt.Errorf("consumable '%s': unknown effect kind '%s'", id, cs.Effect.Kind)
		}
	}

	for actionID := range c.Upgrades {
		if _, exists := actionIDs[actionID]; !exists {
			return fmt.Errorf("upgrade entry references unknown action '%s'", actionID)
		}
	}

	for _, d := range []game.Difficulty{game.DifficultyEasy, game.DifficultyNormal, game.DifficultyHard} {
		m, ok := c.Difficulties[d]
		if !ok {
			return fmt.Errorf("difficulty table missing '%s'", d)
		}
		if m.HealerCooldown <= 0 || m.PlayerDamage <= 0 {
			return fmt.Errorf("difficulty '%s': modifiers must be positive", d)
		}
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Drakonfox/Hard-to-Die/internal/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  address: \":9000\"\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ServerAddress != ":9000" {
		t.Fatalf("expected address :9000, got %q", cfg.ServerAddress)
	}
	// No catalog section keeps the built-in content.
	if cfg.Catalog == nil || cfg.Catalog.ActionByID("punch") == nil {
		t.Fatalf("expected default catalog with 'punch'")
	}
	if _, ok := cfg.Catalog.Difficulties[game.DifficultyHard]; !ok {
		t.Fatalf("default catalog missing hard difficulty")
	}
}

func TestLoadConfigCatalogOverride(t *testing.T) {
	body := `
catalog:
  actions:
    - id: tap
      name: Tap
      damage: 1
      cooldown: 1
      instability_gain: 1
      cost: 10
  consumables: []
  upgrades:
    tap:
      damage_plus: 1
      cost: 5
  difficulties:
    easy: {description: e, healer_cooldown: 1.25, player_damage: 1.15}
    normal: {description: n, healer_cooldown: 1.0, player_damage: 1.0}
    hard: {description: h, healer_cooldown: 0.85, player_damage: 0.9}
`
	cfg, err := LoadConfig(writeConfig(t, body))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Catalog.Actions) != 1 || cfg.Catalog.Actions[0].ID != "tap" {
		t.Fatalf("override not applied: %+v", cfg.Catalog.Actions)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "duplicate action id",
			body: `
catalog:
  actions:
    - {id: tap, name: Tap, damage: 1, cooldown: 1, cost: 10}
    - {id: tap, name: Tap Again, damage: 1, cooldown: 1, cost: 10}
  difficulties:
    easy: {healer_cooldown: 1.25, player_damage: 1.15}
    normal: {healer_cooldown: 1.0, player_damage: 1.0}
    hard: {healer_cooldown: 0.85, player_damage: 0.9}
`,
			want: "duplicate action id",
		},
		{
			name: "cooldown below floor",
			body: `
catalog:
  actions:
    - {id: tap, name: Tap, damage: 1, cooldown: 0.1, cost: 10}
  difficulties:
    easy: {healer_cooldown: 1.25, player_damage: 1.15}
    normal: {healer_cooldown: 1.0, player_damage: 1.0}
    hard: {healer_cooldown: 0.85, player_damage: 0.9}
`,
			want: "below minimum",
		},
		{
			name: "upgrade references unknown action",
			body: `
catalog:
  actions:
    - {id: tap, name: Tap, damage: 1, cooldown: 1, cost: 10}
  upgrades:
    ghost: {damage_plus: 1, cost: 5}
  difficulties:
    easy: {healer_cooldown: 1.25, player_damage: 1.15}
    normal: {healer_cooldown: 1.0, player_damage: 1.0}
    hard: {healer_cooldown: 0.85, player_damage: 0.9}
`,
			want: "unknown action",
		},
		{
			name: "missing difficulty",
			body: `
catalog:
  actions:
    - {id: tap, name: Tap, damage: 1, cooldown: 1, cost: 10}
  difficulties:
    normal: {healer_cooldown: 1.0, player_damage: 1.0}
`,
			want: "difficulty table missing",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.body))
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not contain %q", err.Error(), tc.want)
			}
		})
	}
}

func TestDefaultCatalogPassesValidation(t *testing.T) {
	if err := validateCatalog(game.DefaultCatalog()); err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}
}

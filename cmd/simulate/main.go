package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Drakonfox/Hard-to-Die/internal/game"
	"github.com/Drakonfox/Hard-to-Die/internal/service"
)

// simulate runs a scripted play-through without a server or a real-time
// loop: fixed-step ticks, a greedy shop strategy and every action mashed as
// soon as it comes off cooldown. For a fixed seed the outcome is fully
// reproducible, which makes it a quick balance probe after catalog changes.
func main() {
	difficulty := flag.String("difficulty", "normal", "run difficulty (easy|normal|hard)")
	seed := flag.Int64("seed", 1, "rng seed")
	maxLevels := flag.Int("levels", 10, "stop after this many cleared levels")
	step := flag.Float64("step", 0.1, "tick step in seconds")
	verbose := flag.Bool("v", false, "log per-level detail")
	flag.Parse()

	catalog := game.DefaultCatalog()
	if _, ok := catalog.Difficulties[game.Difficulty(*difficulty)]; !ok {
		fmt.Fprintf(os.Stderr, "unknown difficulty %q\n", *difficulty)
		os.Exit(2)
	}

	s := service.NewHeadlessSession("simulate", game.Difficulty(*difficulty), "simulator", catalog, nil, *seed)

	for {
		buyGreedy(s)
		if err := s.ProceedFromShop(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to start level: %v\n", err)
			os.Exit(1)
		}

		snap := playLevel(s, *step)
		switch snap.Phase {
		case game.PhaseLevelWon:
			if *verbose {
				fmt.Printf("level %d cleared: time left %.1fs, +%d rage (damage %d, time %d, overkill %d)\n",
					snap.CurrentLevel, snap.Timer,
					snap.Summary.Total, snap.Summary.DamageBonus, snap.Summary.TimeBonus, snap.Summary.OverkillBonus)
			}
			if snap.CurrentLevel >= *maxLevels {
				fmt.Printf("cleared %d levels on %s (seed %d), %d rage banked\n",
					snap.CurrentLevel, *difficulty, *seed, snap.RagePoints)
				return
			}
			if err := s.EnterShop(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to enter shop: %v\n", err)
				os.Exit(1)
			}
		case game.PhaseGameOver:
			fmt.Printf("died of old age on level %d (%s, seed %d): the healers won\n",
				snap.CurrentLevel, *difficulty, *seed)
			return
		default:
			fmt.Fprintf(os.Stderr, "level ended in unexpected phase %q\n", snap.Phase)
			os.Exit(1)
		}
	}
}

// playLevel steps the simulation until the level ends, pressing every ready
// action each tick.
func playLevel(s *service.Session, step float64) game.Snapshot {
	for {
		snap := s.Snapshot()
		if snap.Phase != game.PhasePlaying {
			return snap
		}
		for _, a := range snap.Actions {
			if a.CurrentCooldown <= 0 {
				s.UseAction(a.ID)
			}
		}
		for _, c := range snap.Consumables {
			if c.Quantity > 0 {
				s.UseConsumable(c.ID)
			}
		}
		s.Advance(step)
	}
}

// buyGreedy keeps buying the cheapest affordable action or upgrade until
// nothing is left to buy.
func buyGreedy(s *service.Session) {
	for {
		items := s.ShopItems()
		snap := s.Snapshot()
		best := ""
		bestCost := 0
		for _, it := range items {
			if it.Owned || it.Cost > snap.RagePoints {
				continue
			}
			if it.Type == "consumable" {
				continue
			}
			if best == "" || it.Cost < bestCost {
				best = it.ID
				bestCost = it.Cost
			}
		}
		if best == "" {
			return
		}
		if err := s.Buy(best); err != nil {
			return
		}
		// A purchase against a full roster parks as pending; this script
		// never wants that, so cancel and stop buying actions.
		if s.Snapshot().Pending != nil {
			_ = s.CancelReplacement()
			return
		}
	}
}

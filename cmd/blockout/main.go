// blockout is a terminal brick-breaker: bounce the ball, clear the
// bricks, keep your lives.
//
// Usage:
//
//	blockout                          - Play with defaults
//	blockout --difficulty hard        - Play a preset
//	blockout --config ./my.yaml       - Play with custom tunables
//
// Flags:
//
//	--fps <rate>           - Frame rate (default: 60)
//	--seed <value>         - RNG seed for reproducible launches (0 = time-based)
//	--config <path>        - Path to custom config YAML
//	--difficulty <preset>  - easy, normal, hard, or fixed
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockout/internal/config"
	"github.com/vovakirdan/blockout/internal/core"
	"github.com/vovakirdan/blockout/internal/game"
	"github.com/vovakirdan/blockout/internal/platform/tui"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

var rootCmd = &cobra.Command{
	Use:   "blockout",
	Short: "Blockout - terminal brick-breaker",
	Long: `Blockout is a paddle-and-ball brick breaker for your terminal.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Mouse      - Aim the paddle directly
  Space      - Launch ball / toggle pause
  P/Esc      - Pause
  R          - Restart
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - 5 lives, wide paddle, slow ball
  normal - The standard game
  hard   - 2 lives, narrow paddle, fast ball
  fixed  - Standard, but the ball never speeds up

Examples:
  blockout
  blockout --difficulty hard
  blockout --seed 42 --fps 30
  blockout --config ./my-blockout.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Frame rate (ticks per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		log.Fatal("unknown difficulty preset", "preset", flagDifficulty,
			"want", "easy, normal, hard, fixed")
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		// An explicit --config that fails to load is a hard error;
		// silent fallback would hide the typo.
		log.Fatal("failed to load config", "err", err)
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	// Probe terminal size; the TUI adjusts on resize anyway
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		log.Warn("could not detect terminal size, using defaults", "err", termErr)
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g := game.New(cfg)
	if err := tui.Run(g, rt); err != nil {
		log.Fatal("game exited with error", "err", err)
	}
}

// arcade is a terminal arcade with Goblin Runner, Alien Invasion and Shield Toss.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores (or --runs for run history)
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60, env ARCADE_FPS)
//	--seed <value>        - Set RNG seed for reproducible gameplay (env ARCADE_SEED)
//	--db <path>           - Set database path (default: ~/.arcade/scores.db, env ARCADE_DB)
//	--difficulty <preset> - easy, normal, hard or fixed (env ARCADE_DIFFICULTY)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/goblin-arcade/internal/config"
	// Import games to register them
	_ "github.com/vovakirdan/goblin-arcade/internal/games/goblin"
	_ "github.com/vovakirdan/goblin-arcade/internal/games/invasion"
	_ "github.com/vovakirdan/goblin-arcade/internal/games/shield"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "arcade"})

// settings seed the flag defaults; a malformed environment falls back to defaults.
var settings, settingsErr = config.LoadSettings()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Goblin Arcade - Play retro games in your terminal",
	Long: `Goblin Arcade bundles three small games for the terminal:

  goblin    - Goblin Runner, a three-level side-scroller with a story
  invasion  - Alien Invasion, a fixed shooter against a descending fleet
  shield    - Shield Toss, throw your shield at a bouncing enemy

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and run history

Examples:
  arcade list
  arcade play goblin
  arcade menu
  arcade serve --ssh :2222
  arcade scores invasion --runs`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if settingsErr != nil {
			logger.Warn("ignoring ARCADE_* environment", "error", settingsErr)
		}
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", settings.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", settings.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", settings.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", settings.Difficulty, "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

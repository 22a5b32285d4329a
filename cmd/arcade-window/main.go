// arcade-window plays the arcade games in a desktop window.
//
// Usage:
//
//	arcade-window <game> [--fullscreen] [--difficulty easy|normal|hard|fixed]
//
// Closing the window or pressing Q ends the game. Scores go to the same
// database the terminal arcade uses.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/goblin-arcade/internal/audio"
	"github.com/vovakirdan/goblin-arcade/internal/config"
	"github.com/vovakirdan/goblin-arcade/internal/core"
	"github.com/vovakirdan/goblin-arcade/internal/platform/window"
	"github.com/vovakirdan/goblin-arcade/internal/registry"
	"github.com/vovakirdan/goblin-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/goblin-arcade/internal/games/goblin"
	_ "github.com/vovakirdan/goblin-arcade/internal/games/invasion"
	_ "github.com/vovakirdan/goblin-arcade/internal/games/shield"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "arcade-window",
})

var settings, settingsErr = config.LoadSettings()

var (
	flagFullscreen bool
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagFPS        int
	flagSeed       int64
	flagCols       int
	flagRows       int
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade-window <game>",
	Short: "Play an arcade game in a window",
	Long: `Open a window and play one of the arcade games.

Controls are the same as in the terminal: arrows or WASD to move,
Space to jump, fire or throw, P to pause, R to restart, Q to quit.

Examples:
  arcade-window goblin
  arcade-window invasion --fullscreen
  arcade-window shield --difficulty hard --mute`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&flagFullscreen, "fullscreen", settings.Fullscreen, "Start in fullscreen mode")
	f.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	f.StringVar(&flagDifficulty, "difficulty", settings.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	f.StringVar(&flagDBPath, "db", settings.DBPath, "Path to scores database")
	f.IntVar(&flagFPS, "fps", settings.FPS, "Tick rate (frames per second)")
	f.Int64Var(&flagSeed, "seed", settings.Seed, "RNG seed (0 = random based on time)")
	f.IntVar(&flagCols, "cols", 80, "Window width in character cells")
	f.IntVar(&flagRows, "rows", 24, "Window height in character cells")
	f.BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
}

func run(_ *cobra.Command, args []string) error {
	if settingsErr != nil {
		logger.Warn("ignoring ARCADE_* environment", "error", settingsErr)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	gameID := args[0]
	game, err := registry.CreateConfigured(gameID, flagConfig, flagDifficulty)
	if err != nil {
		return fmt.Errorf("%w (run 'arcade list' to see available games)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	var backend audio.Backend = audio.NewSilent()
	if !flagMute {
		backend = window.NewSpeaker()
	}
	music := audio.NewMusic(backend, logger)
	music.SetVolume(settings.Volume)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		ScreenW:  core.Max(flagCols, 20),
		ScreenH:  core.Max(flagRows, 10),
		TickRate: flagFPS,
		Seed:     seed,
	}

	logger.Info("starting", "game", gameID, "fullscreen", flagFullscreen)
	return window.Run(game, cfg, window.Options{
		Store:      store,
		Music:      music,
		Logger:     logger,
		Fullscreen: flagFullscreen,
	})
}

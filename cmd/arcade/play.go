package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/goblin-arcade/internal/audio"
	"github.com/vovakirdan/goblin-arcade/internal/core"
	"github.com/vovakirdan/goblin-arcade/internal/platform/tui"
	"github.com/vovakirdan/goblin-arcade/internal/registry"
	"github.com/vovakirdan/goblin-arcade/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move
  Space            - Jump, fire, throw, advance dialogue
  Up/Down, Enter   - Navigate and confirm in game menus
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Back to the arcade (after game over or while paused)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play goblin
  arcade play invasion --difficulty hard
  arcade play shield --seed 42
  arcade play goblin --config ./my-goblin.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// terminalConfig builds a runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database; games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newMusic returns the terminal music manager. Terminals have no audio
// device, so track changes are followed without sound.
func newMusic() *audio.Music {
	m := audio.NewMusic(audio.NewSilent(), logger)
	m.SetVolume(settings.Volume)
	return m
}

// playGame runs one game in the terminal and reports whether the user quit the arcade.
func playGame(gameID string, cfg core.RuntimeConfig, store *storage.Store) (quit bool, err error) {
	game, err := registry.CreateConfigured(gameID, flagConfig, flagDifficulty)
	if err != nil {
		return true, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	music := newMusic()
	defer music.Quit()

	return tui.Run(game, cfg, tui.Options{
		Store:  store,
		Music:  music,
		Logger: logger,
	})
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store := openStore()
	_, runErr := playGame(gameID, terminalConfig(), store)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

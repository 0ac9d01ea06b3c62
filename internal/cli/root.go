// Package cli wires the hexfield commands.
package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/hexfield/internal/chime"
	"github.com/iburimskiy/hexfield/internal/config"
	"github.com/iburimskiy/hexfield/internal/game"
	"github.com/iburimskiy/hexfield/internal/theme"
)

var (
	// Global flags
	cfgFile  string
	width    int
	height   int
	seed     int64
	hud      bool
	sound    bool
	logLevel string

	// Shared state set during PersistentPreRun
	cfg     *config.Config
	palette config.ResolvedPalette
	themes  *theme.Store

	// runWindow is swapped out by tests.
	runWindow = game.Run
)

var rootCmd = &cobra.Command{
	Use:   "hexfield",
	Short: "Ambient hexagon particle background",
	Long: `hexfield draws a slowly drifting field of translucent hexagons that wraps
around the window edges and shifts with the pointer. T toggles the dark and
light theme; the choice is remembered between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with flags
		flags := cmd.Flags()
		if flags.Changed("width") {
			cfg.Width = width
		}
		if flags.Changed("height") {
			cfg.Height = height
		}
		if flags.Changed("seed") {
			cfg.Seed = seed
		}
		if flags.Changed("hud") {
			cfg.HUD = hud
		}
		if flags.Changed("sound") {
			cfg.Sound = sound
		}
		if flags.Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if err := setupLogging(cmd, cfg.LogLevel); err != nil {
			return err
		}

		palette, err = cfg.Palette.Resolve()
		if err != nil {
			return err
		}
		themes, err = theme.Open(cfg.ThemePath)
		if err != nil {
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Int("width", cfg.Width).Int("height", cfg.Height).
			Str("theme", string(themes.Theme())).Msg("opening window")
		return runWindow(game.Options{
			Width:   cfg.Width,
			Height:  cfg.Height,
			Seed:    seedOrClock(cfg.Seed),
			HUD:     cfg.HUD,
			Palette: palette,
			Themes:  themes,
			Chime:   chime.NewPlayer(cfg.Sound),
		})
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// RootCmd returns the root cobra.Command for testing purposes.
func RootCmd() *cobra.Command {
	return rootCmd
}

// seedOrClock treats 0 as "not set".
func seedOrClock(s int64) int64 {
	if s != 0 {
		return s
	}
	return time.Now().UnixNano()
}

func setupLogging(cmd *cobra.Command, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.hexfield/config.yaml)")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.WindowWidth, "canvas width in pixels")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.WindowHeight, "canvas height in pixels")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&hud, "hud", false, "show the status line")
	rootCmd.Flags().BoolVar(&sound, "sound", false, "play a chime when the theme changes")

	rootCmd.AddCommand(snapshotCmd, themeCmd, versionCmd)
}

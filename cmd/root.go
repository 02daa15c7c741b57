package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordiz/internal/app"
	"github.com/abhisek/wordiz/internal/config"
	"github.com/abhisek/wordiz/internal/i18n"
	"github.com/abhisek/wordiz/internal/logging"
	"github.com/abhisek/wordiz/internal/screen"
	"github.com/abhisek/wordiz/internal/vocab"
)

var rootCmd = &cobra.Command{
	Use:   "wordiz",
	Short: "Terminal vocabulary trainer",
	Long:  "Wordiz — practice vocabulary units in the terminal with flashcards and typed recall quizzes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/wordiz/config.yaml)")
	rootCmd.PersistentFlags().String("lang", "", "UI and gloss language: tr, en, de, uk or es (overrides WORDIZ_LANG)")
	rootCmd.PersistentFlags().String("data", "", "Directory of unit files to use instead of the built-in library")
	rootCmd.Flags().String("unit", "", "Open this unit directly")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")

	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration with command-line flags taking
// precedence over every other source.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := make(map[string]any)
	flagKeys := map[string]string{
		"lang": "lang",
		"data": "data_dir",
		"unit": "unit",
	}
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}

	path, _ := cmd.Flags().GetString("config")
	return config.Load(config.Options{File: path, Overrides: overrides})
}

// newLibrary returns the unit library selected by the configuration.
func newLibrary(cfg *config.Config) *vocab.Library {
	if cfg.DataDir != "" {
		return vocab.NewLibrary(os.DirFS(cfg.DataDir))
	}
	return vocab.DefaultLibrary()
}

// newEnv builds the shared screen environment from the configuration.
func newEnv(cfg *config.Config, logger *slog.Logger) *screen.Env {
	return &screen.Env{
		Library:            newLibrary(cfg),
		Loc:                i18n.NewLocalizer(i18n.Resolve(cfg.Lang)),
		Logger:             logger,
		Unit:               cfg.Unit,
		AutoAdvance:        cfg.Practice.AutoAdvance,
		RecallPresets:      cfg.Practice.RecallPresets,
		RecognitionPresets: cfg.Practice.RecognitionPresets,
	}
}

// setupLogging opens the log file. The TUI owns the terminal, so a file
// that cannot be opened disables logging instead of failing.
func setupLogging(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, io.Closer) {
	logger, closer, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Logging disabled:", err)
		return slog.New(slog.DiscardHandler), io.NopCloser(nil)
	}
	return logger, closer
}

// runApp loads configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer := setupLogging(cmd, cfg)
	defer closer.Close()

	logger.Info("starting", "version", version, "lang", cfg.Lang, "data_dir", cfg.DataDir)

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Env:         newEnv(cfg, logger),
		SkipWelcome: noSplash || cfg.Unit != "",
	})
}

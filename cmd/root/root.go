// Package root contains the root command for the application
package root

import (
	"sync"

	"fjacquet/expense-ml/internal/config"
	"fjacquet/expense-ml/internal/engine"
	"fjacquet/expense-ml/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the application configuration, populated before any command runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-ml",
		Short: "A CLI tool to categorize expense descriptions.",
		Long: `expense-ml resolves a category for a short free-text expense description.
It combines per-user learned preferences, keyword matching, fuzzy matching
and a trainable statistical classifier.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			Log.Info("Welcome to expense-ml!")
			Log.Info("Use --help to see available commands")
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
			return nil
		},
	}

	// UserID is the user identifier shared by all commands
	UserID string

	// Specific predict command flags
	Title  string
	Amount string

	// Specific learn command flags
	Category string

	// Specific train command flags
	TrainingFile string

	engineOnce sync.Once
	eng        *engine.Engine
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&UserID, "user", "u", "default", "User identifier")
}

// Engine returns the shared prediction engine, building it on first use.
func Engine() *engine.Engine {
	engineOnce.Do(func() {
		eng = engine.FromConfig(Cfg, logging.NewLogrusAdapterFromLogger(Log))
	})
	return eng
}

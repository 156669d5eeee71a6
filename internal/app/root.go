package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/textsentiment/internal/config"
	"github.com/blackwell-systems/textsentiment/internal/logging"
)

var (
	dbPath     string
	configPath string
	verbose    bool

	// cfg and logger are set by PersistentPreRunE before any subcommand runs.
	cfg    *config.Config
	logger *zap.Logger

	// RootCmd is the root command for textsentiment
	RootCmd = &cobra.Command{
		Use:   "textsentiment",
		Short: "Score text sentiment with VADER and keep a local history",
		Long: `textsentiment strips digits and stopwords from the text you enter,
scores what remains with the VADER sentiment model, and stores the
original text, the processed text and a 0-1 sentiment score in a local
SQLite database.

A score of 0.5 is neutral; higher is more positive, lower more negative.

Examples:
  # Analyze and store a sentence
  textsentiment submit "I love this product!"

  # Analyze text piped on stdin
  echo "The service was slow and rude" | textsentiment submit

  # List everything stored so far
  textsentiment show

  # Chart scores in submission order
  textsentiment visualize

  # Serve the same operations over HTTP
  textsentiment serve --addr 127.0.0.1:8080`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.textsentiment/text_analysis.db)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/textsentiment/config.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2

	// Register subcommands
	RootCmd.AddCommand(submitCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(visualizeCmd)
	RootCmd.AddCommand(aboutCmd)
	RootCmd.AddCommand(serveCmd)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// setup loads configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to locate config: %w", err)
		}
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	if dbPath != "" {
		loaded.DatabasePath = dbPath
	}
	cfg = loaded

	logger, err = logging.New(cfg.LogLevel, cfg.LogFormat, verbose)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", zap.String("config", path))
	return nil
}

// getDBPath returns the database path, using the flag value or config.
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg == nil {
		return config.Default().DBPath()
	}
	return cfg.DBPath()
}

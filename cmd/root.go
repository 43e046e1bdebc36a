package cmd

import (
	"fmt"
	"os"

	"h3sed/core/config"
	"h3sed/core/logger"
	"h3sed/core/registry"
	"h3sed/feature/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configPath is the directory holding .env and h3sed.yaml.
var configPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "h3sed",
	Short: "Heroes3 savefile editor",
	Long: `h3sed inspects and edits Heroes of Might and Magic III savefiles.
It detects the game version of a savefile, looks up artifacts, creatures,
spells and skills per version, and compares hero data before and after edits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Debug level gives ISO8601 timestamps on the console
		cfg := &logger.Config{
			Level:  "debug",
			Format: logger.FormatConsole,
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory containing .env and h3sed.yaml")
}

// app holds what every command needs: configuration, a session logger and the
// frozen registry with all versions loaded.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	manager  *version.Manager
	registry *registry.Registry
}

func setup() (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithSession(l, logger.NewSessionID())

	manager, err := version.Default(cfg.Catalog, l)
	if err != nil {
		return nil, fmt.Errorf("failed to load version plugins: %w", err)
	}
	reg := registry.New(l)
	if err := manager.LoadAll(reg); err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: l, manager: manager, registry: reg}, nil
}

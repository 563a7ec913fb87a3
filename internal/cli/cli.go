// Package cli implements the eulerpath command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/eulerpath/pkg/buildinfo"
	"github.com/matzehuels/eulerpath/pkg/pipeline"
	"github.com/matzehuels/eulerpath/pkg/runlog"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "eulerpath"

	// configFile is the config file name inside the config directory.
	configFile = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string // --config; empty means the XDG default
	cfg        Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The config file is loaded before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Eulerpath finds routes that use every teleporter exactly once",
		Long: `Eulerpath reads batches of level graphs (levels joined by one-way teleporters)
and finds, for each, a route from the first level to the last that takes every
teleporter exactly once, or reports that none exists.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints errors with their code
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/eulerpath/config.toml)")

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.logsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// openRunLog opens a run log in the configured directory, or returns nil
// when run logs are disabled. A run log that cannot be created is logged
// and skipped; it never fails the solve.
func (c *CLI) openRunLog(disabled bool) *runlog.Log {
	if disabled || !c.cfg.RunLogs {
		return nil
	}
	dir, err := c.runLogDir()
	if err != nil {
		c.Logger.Warn("run log disabled", "err", err)
		return nil
	}
	rl, err := runlog.Open(dir)
	if err != nil {
		c.Logger.Warn("run log disabled", "err", err)
		return nil
	}
	c.Logger.Debug("writing run log", "path", rl.Path)
	return rl
}

// =============================================================================
// Paths
// =============================================================================

// runLogDir returns the configured run-log directory or the XDG default.
func (c *CLI) runLogDir() (string, error) {
	if c.cfg.LogDir != "" {
		return c.cfg.LogDir, nil
	}
	return runlog.Dir()
}

// configDir returns the config directory using XDG standard (~/.config/eulerpath/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/eulerpath/pkg/errors"
	"github.com/matzehuels/eulerpath/pkg/levels"
)

// Config holds user defaults. Command-line flags override every field.
type Config struct {
	Order   string `toml:"order"`    // edge choice order: lifo, insertion, lowest
	RunLogs bool   `toml:"run_logs"` // write a run log per solve
	LogDir  string `toml:"log_dir"`  // run-log directory; empty means the XDG default
	Step    bool   `toml:"step"`     // page through cases interactively
}

func defaultConfig() Config {
	return Config{
		Order:   levels.OrderLIFO.String(),
		RunLogs: true,
	}
}

// configFilePath returns the --config value or the XDG default.
func (c *CLI) configFilePath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// loadConfig reads the config file into c.cfg. A missing file leaves the
// defaults in place.
func (c *CLI) loadConfig() error {
	path, err := c.configFilePath()
	if err != nil {
		c.Logger.Debug("no config directory", "err", err)
		return nil
	}
	cfg, err := readConfig(path)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("config loaded", "path", path, "order", cfg.Order, "run_logs", cfg.RunLogs)
	return nil
}

// readConfig decodes path over the defaults. Unknown keys are an error so
// typos do not go unnoticed.
func readConfig(path string) (Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, apperrors.New(apperrors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if _, err := levels.ParseOrder(cfg.Order); err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidOrder, err, "config %s", path)
	}
	return cfg, nil
}

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the config file",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFilePath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}
			fmt.Println(path)
			return nil
		},
	}
}

func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFilePath()
			if err == nil {
				if _, statErr := os.Stat(path); statErr != nil {
					printDetail("%s not found, showing defaults", path)
				}
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(c.cfg)
		},
	}
}

// Package cli implements the gridnav command-line interface.
//
// The command tree is built with cobra. Results go to the CLI's output
// writer; diagnostics go through a charmbracelet/log logger on stderr,
// at debug level with --verbose.
//
// # Commands
//
//   - search: run one algorithm on a map file and print the outcome
//   - show: draw a map, optionally with the path an algorithm finds
//   - maps, algorithms: list what is available
//   - analyze: time algorithms over repeated runs, optionally as CSV
//   - generate: write a random map
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	out        io.Writer
	configPath string
	verbose    bool
}

// New creates a CLI writing results to out and logs to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		Config: config.Default(),
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gridnav",
		Short: "gridnav finds paths for an agent on a walled grid",
		Long: `gridnav loads grid maps with a start cell, goal cells and rectangular walls,
and searches them with BFS, DFS, IDDFS, A*, greedy best-first or bidirectional A*.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (YAML or TOML)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.searchCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.mapsCommand())
	root.AddCommand(c.algorithmsCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.generateCommand())

	return root
}

// setup loads the configuration and applies the log level.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level, _ := cfg.LogLevel()
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	c.Logger.Debug("configuration loaded", "path", c.configPath, "maps", cfg.Maps.Dir)
	return nil
}

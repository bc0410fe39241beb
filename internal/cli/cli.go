// Package cli implements the lockgraph command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lockgraph/pkg/buildinfo"
	"github.com/matzehuels/lockgraph/pkg/lockfile"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "lockgraph"

	// manifestEnv names the environment variable holding a default manifest
	// path for inspect.
	manifestEnv = "LOCKGRAPH_MANIFEST"
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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Lockgraph inspects Python dependency graphs",
		Long: `Lockgraph reads Python lock files (poetry.lock, pdm.lock, uv.lock) and
pyproject.toml manifests, normalizes them into one dependency graph and lets
you summarize it, look up single packages and export it as JSON, DOT, SVG or
CycloneDX.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.workspaceCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Options Helpers
// =============================================================================

// lockfileOptions routes parser diagnostics to the debug log.
func (c *CLI) lockfileOptions() lockfile.Options {
	return lockfile.Options{
		Logger: func(msg string, args ...any) { c.Logger.Debugf(msg, args...) },
	}
}

// defaultManifest returns the manifest path configured in the environment.
func defaultManifest() string {
	return os.Getenv(manifestEnv)
}

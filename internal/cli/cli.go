// Package cli implements the mobius command-line interface.
//
// Every command maps directly onto an operation of package mobius. Points of
// the extended plane are written the way strconv.ParseComplex accepts them
// ("2", "1.5-2i", "(0+1i)"), with "inf" and "∞" denoting the point at
// infinity. Transformations are written as four comma-separated
// coefficients, "a,b,c,d". Negative positional arguments have to follow
// "--" so that they aren't mistaken for flags.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging to stderr.
// Results are printed to stdout.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is set via ldflags: -X honnef.co/go/mobius/internal/cli.version=...
var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance that logs to w.
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
		Use:          "mobius",
		Short:        "Evaluate and combine linear fractional transformations",
		Long:         `mobius works with linear fractional (Möbius) transformations z ↦ (az+b)/(cz+d) of the extended complex plane and their relation to rotations of the Riemann sphere.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(c.applyCommand())
	root.AddCommand(c.inverseCommand())
	root.AddCommand(c.composeCommand())
	root.AddCommand(c.equalCommand())
	root.AddCommand(c.mapCommand())
	root.AddCommand(c.stereoCommand())
	root.AddCommand(c.rotateCommand())

	return root
}

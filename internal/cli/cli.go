// Package cli implements the monadviz command-line interface.
//
// This package provides commands for rendering the five-stage monad
// animation to files, playing it live in the terminal, and exporting the
// ring topology as a graph diagram. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Write the animation frames as SVG (optionally PNG, PDF, JSON)
//   - play: Play the animation in the terminal at a fixed interval
//   - topology: Export the ring network as a Graphviz diagram
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/monadviz/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/monadviz/pkg/buildinfo"
	"github.com/matzehuels/monadviz/pkg/observability"
)

// appName is the application name used for display and file naming.
const appName = "monadviz"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

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
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Monadviz animates the emergence of a monadic ring network",
		Long:         `Monadviz renders a five-stage conceptual animation: abstract monads transition from an infinite frequency field, through a singularity collapse, into a connected ring network exchanging wave signals.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			observability.SetAnimationHooks(newLogHooks(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.topologyCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Package cli implements the ggchart command line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/ggchart"
)

// globalFlags holds the flags shared by every subcommand.
type globalFlags struct {
	debug   bool
	logFile string

	logCloser io.Closer
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "ggchart",
		Short: "ggchart - render episode analytics charts",
		Long: `ggchart renders the completion, listener mix, share conversion and
subscriber growth charts from an episode dataset, as SVG or PNG.

Zoom and pan gestures can be scripted with --gesture to render a chart in
the state a viewer would see after interacting with it.`,
		Version:       ggchart.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setupLogging(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return g.close()
		},
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", "Write logs to a rotating file instead of stderr")

	cmd.AddCommand(NewRenderCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewBackendsCommand())

	return cmd
}

// setupLogging installs the library logger. Without --debug only
// warnings are shown.
func (g *globalFlags) setupLogging(stderr io.Writer) error {
	level := slog.LevelWarn
	if g.debug {
		level = slog.LevelDebug
	}

	w := stderr
	if g.logFile != "" {
		lj := &lumberjack.Logger{
			Filename:   g.logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		w = lj
		g.logCloser = lj
		if level > slog.LevelInfo {
			level = slog.LevelInfo
		}
	}

	ggchart.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

func (g *globalFlags) close() error {
	ggchart.SetLogger(nil)
	if g.logCloser == nil {
		return nil
	}
	err := g.logCloser.Close()
	g.logCloser = nil
	if err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

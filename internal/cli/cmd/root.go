// Package cmd provides Cobra CLI commands for xiboic.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/xiboic/internal/cli"
	"github.com/bnema/xiboic/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "xiboic",
		Short: "Drive a signage player the way an interactive widget does",
		Long: `xiboic - interactive control for signage widgets.

Sends the same calls a widget makes to its player: info, triggers,
expiring the widget and changing its duration. When a preview script
is configured and exposes the authoring editor, the calls are handed
to that script instead of the network.

Also applies the widget interaction locks (text selection, context
menu, pinch zoom) to an HTML file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "init", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&appOpts.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/xiboic/config.toml)")
	flags.StringVar(&appOpts.TargetID, "target-id", "", "default target identifier (overrides widget.target_id)")
	flags.StringVar(&appOpts.PreviewScript, "preview-script", "", "authoring environment script to probe for preview mode")
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mikanfactory/cxline/internal/config"
	"github.com/mikanfactory/cxline/internal/logging"
	"github.com/mikanfactory/cxline/internal/settings"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what every command needs once flags are parsed.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	viper    *viper.Viper
	settings settings.Settings
	logger   *slog.Logger
	closeLog func() error
}

// manager returns the config manager for the resolved config directory.
func (a *app) manager() *config.Manager {
	return config.NewManager(a.settings.ConfigDir, a.logger)
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		viper:    settings.New(),
		closeLog: func() error { return nil },
	}

	opts := &renderOptions{}
	root := &cobra.Command{
		Use:           "cxline",
		Short:         "Configurable status line for Codex sessions",
		Long:          "cxline renders a themeable status line and provides an interactive configurator.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.closeLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, opts)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().String(settings.KeyConfigDir, "", "configuration directory (default ~/.codex/cxline)")
	root.PersistentFlags().Bool(settings.KeyDebug, false, "append debug logs to <config-dir>/debug.log")
	addRenderFlags(root, opts)

	root.AddCommand(
		newRenderCmd(a),
		newConfigureCmd(a),
		newThemeCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := settings.BindFlags(a.viper, cmd.Flags()); err != nil {
		return err
	}
	s, err := settings.Resolve(a.viper)
	if err != nil {
		return err
	}
	a.settings = s

	logger, closeLog, err := logging.Open(s.ConfigDir, s.Debug)
	if err != nil {
		return err
	}
	a.logger = logger
	a.closeLog = closeLog
	a.logger.Debug("starting", "command", cmd.CommandPath(), "config_dir", s.ConfigDir)
	return nil
}

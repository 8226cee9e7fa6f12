package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/mikanfactory/cxline/internal/git"
	"github.com/mikanfactory/cxline/internal/tui"
)

func newConfigureCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Edit the status line interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigure()
		},
	}
}

func (a *app) runConfigure() error {
	zone.NewGlobal()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determining working directory: %w", err)
	}

	manager := a.manager()
	m := tui.NewModel(manager, manager.Load(), git.OSCommandRunner{}, cwd)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("running configurator: %w", err)
	}

	if final, ok := result.(tui.Model); ok && final.Modified() {
		fmt.Fprintln(a.stderr, "Unsaved changes were discarded.")
	}
	return nil
}

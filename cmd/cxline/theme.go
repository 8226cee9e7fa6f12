package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mikanfactory/cxline/internal/config"
	"github.com/mikanfactory/cxline/internal/document"
	"github.com/mikanfactory/cxline/internal/storage"
)

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "List, apply and save themes",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List built-in and custom themes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				manager := a.manager()
				current := manager.Load().Theme
				for _, name := range manager.Catalog.Names() {
					marker := "  "
					if name == current {
						marker = "* "
					}
					fmt.Fprintln(a.stdout, marker+name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "apply <name>",
			Short: "Replace the configuration with a theme",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name := args[0]
				manager := a.manager()
				if !slices.Contains(manager.Catalog.Names(), name) {
					return fmt.Errorf("unknown theme %q", name)
				}
				cfg := manager.Load()
				manager.ApplyTheme(&cfg, name)
				if err := manager.Save(cfg); err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "Applied theme %s\n", name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "save <name>",
			Short: "Save the current configuration as a custom theme",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				manager := a.manager()
				cfg := manager.Load()
				slug, err := manager.Catalog.Save(args[0], cfg)
				if err != nil {
					return err
				}
				cfg.Theme = slug
				if err := manager.Save(cfg); err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "Saved theme %s\n", slug)
				return nil
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the built-in themes to the themes directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.manager().Catalog.EnsureBuiltins(); err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, filepath.Join(a.settings.ConfigDir, config.ThemesSubdir))
				return nil
			},
		},
	)
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration document",
	}

	var exportFormat string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the configuration to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := document.ParseFormat(exportFormat)
			if err != nil {
				return err
			}
			manager := a.manager()
			data, err := manager.Export(manager.Load(), format)
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(data)
			return err
		},
	}
	export.Flags().StringVar(&exportFormat, "format", "toml", "output format: toml or yaml")

	var importFormat string
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the configuration with a TOML or YAML file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			name := importFormat
			if name == "" {
				name = strings.TrimPrefix(filepath.Ext(args[0]), ".")
			}
			format, err := document.ParseFormat(name)
			if err != nil {
				return err
			}
			cfg, err := a.manager().Import(data, format)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Imported configuration (theme %s)\n", cfg.Theme)
			return nil
		},
	}
	importCmd.Flags().StringVar(&importFormat, "format", "", "input format: toml or yaml (default: from the file extension)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(a.stdout, storage.NewDir(a.settings.ConfigDir).Path(config.Name))
				return nil
			},
		},
		export,
		importCmd,
	)
	return cmd
}

func (a *app) readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

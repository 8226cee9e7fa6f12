// Package config loads, saves and themes the status line configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mikanfactory/cxline/internal/document"
	"github.com/mikanfactory/cxline/internal/model"
	"github.com/mikanfactory/cxline/internal/storage"
	"github.com/mikanfactory/cxline/internal/style"
	"github.com/mikanfactory/cxline/internal/theme"
)

// Name is the storage name of the user's configuration document.
const Name = "config"

// ThemesSubdir holds custom and built-in theme files under the config dir.
const ThemesSubdir = "themes"

// DefaultDir returns ~/.codex/cxline.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".codex", "cxline"), nil
}

// ExpandHome expands a leading "~/" to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}

// Manager persists the configuration document and resolves themes.
type Manager struct {
	Store   storage.Storage
	Catalog *theme.Catalog
	Logger  *slog.Logger
}

// NewManager returns a Manager storing config.toml and themes/*.toml under
// dir.
func NewManager(dir string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		Store:   storage.NewDir(dir),
		Catalog: theme.NewCatalog(storage.NewDir(filepath.Join(dir, ThemesSubdir)), logger),
		Logger:  logger,
	}
}

func (m *Manager) logger() *slog.Logger {
	if m.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return m.Logger
}

// Load returns the stored configuration. A missing document is replaced by
// the default theme on disk; an unreadable or malformed one yields the
// default without touching the file.
func (m *Manager) Load() model.Config {
	data, err := m.Store.Read(Name)
	if err != nil {
		cfg := theme.Default()
		if storage.IsNotExist(err) {
			if err := m.Save(cfg); err != nil {
				m.logger().Warn("writing default config", "error", err)
			}
			return cfg
		}
		m.logger().Warn("reading config, using default", "error", err)
		return cfg
	}

	cfg, err := document.Decode(data, document.TOML, m.Catalog.Get)
	if err != nil {
		m.logger().Warn("parsing config, using default", "error", err)
		return theme.Default()
	}
	return cfg
}

// Save writes cfg as TOML.
func (m *Manager) Save(cfg model.Config) error {
	data, err := document.Encode(cfg, document.TOML)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := m.Store.Write(Name, data); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// ApplyTheme replaces everything in cfg except Enabled with the named theme.
func (m *Manager) ApplyTheme(cfg *model.Config, name string) {
	enabled := cfg.Enabled
	*cfg = m.Catalog.Get(name)
	cfg.Enabled = enabled
}

// Export encodes cfg for sharing.
func (m *Manager) Export(cfg model.Config, format document.Format) ([]byte, error) {
	return document.Encode(cfg, format)
}

// Import decodes a shared document, resolving missing fields against the
// catalog, and saves it as the current configuration.
func (m *Manager) Import(data []byte, format document.Format) (model.Config, error) {
	cfg, err := document.Decode(data, format, m.Catalog.Get)
	if err != nil {
		return model.Config{}, fmt.Errorf("importing config: %w", err)
	}
	if err := m.Save(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// Overrides are render-time replacements taken from the environment or flags.
type Overrides struct {
	Theme string
	Style string
}

// ApplyOverrides applies o to cfg. The theme is applied before the style so
// both can be combined.
func (m *Manager) ApplyOverrides(cfg *model.Config, o Overrides) {
	if o.Theme != "" {
		m.ApplyTheme(cfg, o.Theme)
	}
	if o.Style != "" {
		mode, err := style.ParseMode(o.Style)
		if err != nil {
			m.logger().Warn("ignoring style override", "error", err)
			return
		}
		cfg.Style = mode
	}
}

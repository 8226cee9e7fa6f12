// Package theme holds the built-in style presets and the catalog of themes
// saved by the user.
package theme

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/mikanfactory/cxline/internal/document"
	"github.com/mikanfactory/cxline/internal/model"
	"github.com/mikanfactory/cxline/internal/storage"
)

// ErrInvalidName is returned when a theme name has no usable characters.
var ErrInvalidName = errors.New("invalid theme name")

// Catalog resolves theme names against stored theme files and the built-in
// presets. Stored files shadow built-ins of the same name.
type Catalog struct {
	store  storage.Storage
	logger *slog.Logger

	mu     sync.RWMutex
	custom []string
}

// NewCatalog returns a Catalog backed by store. A nil logger discards logs.
func NewCatalog(store storage.Storage, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{store: store, logger: logger}
}

// Names returns the built-in names in order followed by the sorted names of
// custom themes.
func (c *Catalog) Names() []string {
	c.refresh()

	c.mu.RLock()
	defer c.mu.RUnlock()

	names := slices.Clone(BuiltinNames)
	return append(names, c.custom...)
}

func (c *Catalog) refresh() {
	stored, err := c.store.List()
	if err != nil {
		c.logger.Warn("listing themes", "error", err)
		return
	}

	var custom []string
	for _, name := range stored {
		if IsBuiltin(name) || Slug(name) != name {
			continue
		}
		custom = append(custom, name)
	}
	slices.Sort(custom)
	custom = slices.Compact(custom)

	c.mu.Lock()
	c.custom = custom
	c.mu.Unlock()
}

// Get returns the stored theme named name, else the built-in of that name,
// else the default theme.
func (c *Catalog) Get(name string) model.Config {
	if cfg, ok := c.load(name); ok {
		return cfg
	}
	if cfg, ok := Builtin(name); ok {
		return cfg
	}
	return Fallback()
}

// Builtin returns the built-in theme named name.
func (c *Catalog) Builtin(name string) (model.Config, bool) {
	return Builtin(name)
}

func (c *Catalog) load(name string) (model.Config, bool) {
	if name == "" || Slug(name) != name {
		return model.Config{}, false
	}

	data, err := c.store.Read(name)
	if err != nil {
		if !storage.IsNotExist(err) {
			c.logger.Warn("reading theme", "theme", name, "error", err)
		}
		return model.Config{}, false
	}

	// Theme files inherit from built-ins only, so a file naming itself
	// cannot recurse.
	cfg, err := document.Decode(data, document.TOML, resolveBuiltin)
	if err != nil {
		c.logger.Warn("parsing theme", "theme", name, "error", err)
		return model.Config{}, false
	}
	return cfg, true
}

func resolveBuiltin(name string) model.Config {
	if cfg, ok := Builtin(name); ok {
		return cfg
	}
	return Fallback()
}

// Save stores cfg as a custom theme and returns the name it was saved under.
func (c *Catalog) Save(name string, cfg model.Config) (string, error) {
	slug := Slug(name)
	if slug == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	cfg.Theme = slug
	data, err := document.Encode(cfg, document.TOML)
	if err != nil {
		return "", fmt.Errorf("encoding theme %s: %w", slug, err)
	}
	if err := c.store.Write(slug, data); err != nil {
		return "", fmt.Errorf("saving theme %s: %w", slug, err)
	}

	if !IsBuiltin(slug) {
		c.mu.Lock()
		if !slices.Contains(c.custom, slug) {
			c.custom = append(c.custom, slug)
			slices.Sort(c.custom)
		}
		c.mu.Unlock()
	}

	c.logger.Debug("saved theme", "theme", slug)
	return slug, nil
}

// EnsureBuiltins writes a file for every built-in theme that has none.
// Existing files are left untouched.
func (c *Catalog) EnsureBuiltins() error {
	stored, err := c.store.List()
	if err != nil {
		return fmt.Errorf("listing themes: %w", err)
	}

	for _, name := range BuiltinNames {
		if slices.Contains(stored, name) {
			continue
		}
		cfg, _ := Builtin(name)
		data, err := document.Encode(cfg, document.TOML)
		if err != nil {
			return fmt.Errorf("encoding theme %s: %w", name, err)
		}
		if err := c.store.Write(name, data); err != nil {
			return fmt.Errorf("writing theme %s: %w", name, err)
		}
		c.logger.Debug("wrote builtin theme", "theme", name)
	}
	return nil
}

// Next returns the theme after name in Names order, wrapping around. An
// unknown name yields the first theme.
func (c *Catalog) Next(name string) string {
	names := c.Names()
	i := slices.Index(names, name)
	return names[(i+1)%len(names)]
}

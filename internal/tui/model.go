package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/mikanfactory/cxline/internal/config"
	"github.com/mikanfactory/cxline/internal/git"
	"github.com/mikanfactory/cxline/internal/model"
	"github.com/mikanfactory/cxline/internal/picker"
	"github.com/mikanfactory/cxline/internal/segment"
	"github.com/mikanfactory/cxline/internal/style"
)

// GitPreviewMsg delivers the repository state of the working directory.
type GitPreviewMsg struct {
	Preview segment.GitPreview
	OK      bool
}

// ConfigSavedMsg is sent when the configuration has been written.
type ConfigSavedMsg struct{}

// ThemeSavedMsg is sent when the configuration has been saved as a custom
// theme under Name.
type ThemeSavedMsg struct {
	Name string
}

// SaveErrMsg is sent when writing the configuration or a theme fails.
type SaveErrMsg struct {
	Err error
}

// Field is an editable property of a segment.
type Field int

const (
	FieldEnabled Field = iota
	FieldIcon
	FieldIconColor
	FieldTextColor
	FieldBackground
	FieldBold
	fieldCount
)

var fieldNames = [...]string{
	FieldEnabled:    "Enabled",
	FieldIcon:       "Icon",
	FieldIconColor:  "Icon Color",
	FieldTextColor:  "Text Color",
	FieldBackground: "Background",
	FieldBold:       "Bold",
}

func (f Field) String() string {
	if f >= 0 && f < fieldCount {
		return fieldNames[f]
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Model is the BubbleTea model for the configurator.
type Model struct {
	manager *config.Manager
	runner  git.CommandRunner
	cwd     string

	cfg      model.Config
	cursor   int
	field    Field
	modified bool

	colors    *picker.ColorPicker
	icons     *picker.IconPicker
	separator *picker.SeparatorEditor
	name      *picker.NameInput

	help help.Model
	keys keyMap

	gitPreview *segment.GitPreview
	status     string
	err        error
	width      int
	height     int
	quitting   bool
}

// NewModel creates a configurator editing cfg. runner may be nil, in which
// case the preview shows a sample branch instead of the repository at cwd.
func NewModel(manager *config.Manager, cfg model.Config, runner git.CommandRunner, cwd string) Model {
	return Model{
		manager:   manager,
		runner:    runner,
		cwd:       cwd,
		cfg:       cfg.Clone(),
		colors:    picker.NewColorPicker(),
		icons:     picker.NewIconPicker(),
		separator: picker.NewSeparatorEditor(),
		name:      picker.NewNameInput(),
		help:      help.New(),
		keys:      keys,
		width:     80,
		height:    24,
	}
}

// Config returns the configuration being edited.
func (m Model) Config() model.Config {
	return m.cfg.Clone()
}

// Cursor returns the selected segment and field.
func (m Model) Cursor() (model.SegmentID, Field) {
	return model.SegmentOrder[m.cursor], m.field
}

// Modified reports whether there are unsaved edits.
func (m Model) Modified() bool {
	return m.modified
}

func (m Model) Init() tea.Cmd {
	if m.runner == nil || m.cwd == "" {
		return nil
	}
	return fetchGitPreviewCmd(m.runner, m.cwd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case GitPreviewMsg:
		if msg.OK {
			p := msg.Preview
			m.gitPreview = &p
		}
		return m, nil

	case ConfigSavedMsg:
		m.modified = false
		m.err = nil
		m.status = "Saved configuration"
		return m, nil

	case ThemeSavedMsg:
		m.cfg.Theme = msg.Name
		m.err = nil
		m.status = "Saved theme " + msg.Name
		return m, nil

	case SaveErrMsg:
		m.err = msg.Err
		m.status = ""
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.colors.IsOpen():
		return m.updateColorPicker(msg)
	case m.icons.IsOpen():
		return m.updateIconPicker(msg)
	case m.separator.IsOpen():
		return m.updateSeparator(msg)
	case m.name.IsOpen():
		return m.updateNameInput(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			for i, id := range model.SegmentOrder {
				if zone.Get(SegmentZoneID(id)).InBounds(msg) {
					m.cursor = i
					return m, nil
				}
			}
			for f := range fieldCount {
				if zone.Get(FieldZoneID(f)).InBounds(msg) {
					m.field = f
					return m, nil
				}
			}
		}

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)

	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, len(model.SegmentOrder)-1)

	case key.Matches(msg, m.keys.Left):
		m.field = (m.field + fieldCount - 1) % fieldCount

	case key.Matches(msg, m.keys.Right):
		m.field = (m.field + 1) % fieldCount

	case key.Matches(msg, m.keys.Toggle):
		seg := m.segment()
		if m.field == FieldBold {
			seg.Styles.TextBold = !seg.Styles.TextBold
		} else {
			seg.Enabled = !seg.Enabled
		}
		m.touch()

	case key.Matches(msg, m.keys.Edit):
		return m.editField()

	case key.Matches(msg, m.keys.Mode):
		m.cfg.Style = m.cfg.Style.Next()
		m.touch()
		m.status = "Style: " + m.cfg.Style.String()

	case key.Matches(msg, m.keys.Theme):
		next := m.manager.Catalog.Next(m.cfg.Theme)
		m.manager.ApplyTheme(&m.cfg, next)
		m.touch()
		m.status = "Theme: " + next

	case key.Matches(msg, m.keys.Separator):
		m.separator.Open(m.cfg.Separator)

	case key.Matches(msg, m.keys.Save):
		m.status = ""
		return m, saveConfigCmd(m.manager, m.cfg.Clone())

	case key.Matches(msg, m.keys.SaveAs):
		m.status = ""
		return m, m.name.Open("Save Theme", "Theme name:")

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// editField opens the editor for the selected field. Boolean fields toggle
// in place.
func (m Model) editField() (tea.Model, tea.Cmd) {
	seg := m.segment()
	switch m.field {
	case FieldEnabled:
		seg.Enabled = !seg.Enabled
		m.touch()
	case FieldBold:
		seg.Styles.TextBold = !seg.Styles.TextBold
		m.touch()
	case FieldIcon:
		m.icons.Open(m.cfg.Style, seg.Icon.Resolve(m.cfg.Style))
	case FieldIconColor:
		m.colors.Open(picker.TargetIcon, seg.Colors.Icon)
	case FieldTextColor:
		m.colors.Open(picker.TargetText, seg.Colors.Text)
	case FieldBackground:
		m.colors.Open(picker.TargetBackground, seg.Colors.Background)
	}
	return m, nil
}

func (m Model) updateColorPicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.colors.Update(msg) != picker.Committed {
		return m, nil
	}

	var c *style.Color
	if sel, ok := m.colors.Selection(); ok {
		c = sel.Ptr()
	}
	colors := &m.segment().Colors
	switch m.colors.Target() {
	case picker.TargetIcon:
		colors.Icon = c
	case picker.TargetText:
		colors.Text = c
	case picker.TargetBackground:
		colors.Background = c
	}
	m.colors.Close()
	m.touch()
	return m, nil
}

func (m Model) updateIconPicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.icons.Update(msg) != picker.Committed {
		return m, nil
	}

	if icon, variant, ok := m.icons.Selection(); ok {
		seg := m.segment()
		if variant == picker.VariantPlain {
			seg.Icon.Plain = icon
		} else {
			seg.Icon.NerdFont = icon
		}
		m.touch()
	}
	m.icons.Close()
	return m, nil
}

func (m Model) updateSeparator(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.separator.Update(msg) != picker.Committed {
		return m, nil
	}
	m.cfg.Separator = m.separator.Value()
	m.separator.Close()
	m.touch()
	return m, nil
}

func (m Model) updateNameInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	result, cmd := m.name.Update(msg)
	if result != picker.Committed {
		return m, cmd
	}
	name := m.name.Value()
	m.name.Close()
	return m, saveThemeCmd(m.manager, name, m.cfg.Clone())
}

func (m *Model) segment() *model.SegmentConfig {
	return m.cfg.SegmentMut(model.SegmentOrder[m.cursor])
}

func (m *Model) touch() {
	m.modified = true
	m.err = nil
}

// SegmentZoneID returns the bubblezone ID of a segment row.
func SegmentZoneID(id model.SegmentID) string {
	return "segment-" + id.String()
}

// FieldZoneID returns the bubblezone ID of a field tab.
func FieldZoneID(f Field) string {
	return fmt.Sprintf("field-%d", int(f))
}

func fetchGitPreviewCmd(runner git.CommandRunner, dir string) tea.Cmd {
	return func() tea.Msg {
		preview, ok := segment.PreviewGit(runner, dir)
		return GitPreviewMsg{Preview: preview, OK: ok}
	}
}

func saveConfigCmd(manager *config.Manager, cfg model.Config) tea.Cmd {
	return func() tea.Msg {
		if err := manager.Save(cfg); err != nil {
			return SaveErrMsg{Err: err}
		}
		return ConfigSavedMsg{}
	}
}

func saveThemeCmd(manager *config.Manager, name string, cfg model.Config) tea.Cmd {
	return func() tea.Msg {
		slug, err := manager.Catalog.Save(name, cfg)
		if err != nil {
			return SaveErrMsg{Err: err}
		}
		return ThemeSavedMsg{Name: slug}
	}
}

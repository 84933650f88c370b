package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/prefs-panel/internal/changes"
	"github.com/ytget/prefs-panel/internal/model"
)

// SettingsPanel renders a settings group as a form and records edits as
// pending changes
type SettingsPanel struct {
	group   model.SettingsGroup
	tracker changes.Tracker

	// UI components
	entries   map[string]*widget.Entry
	form      *widget.Form
	container *fyne.Container

	onAdjust func(setting *model.Setting)
}

// NewSettingsPanel creates a panel for group
func NewSettingsPanel(group model.SettingsGroup, tracker changes.Tracker) *SettingsPanel {
	p := &SettingsPanel{
		group:   group,
		tracker: tracker,
		entries: make(map[string]*widget.Entry),
	}
	p.createUI()
	p.Reload()
	return p
}

// createUI builds one form row per node, indented by depth
func (p *SettingsPanel) createUI() {
	p.form = widget.NewForm()

	p.group.Walk(func(s *model.Setting, depth int) bool {
		label := strings.Repeat(IndentPerLevel, depth) + s.Schema.Title
		if !s.IsLeaf() {
			heading := widget.NewLabelWithStyle(s.SolutionName, fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
			p.form.Append(label, heading)
			return true
		}

		setting := s
		entry := widget.NewEntry()
		entry.OnSubmitted = func(value string) {
			if err := p.Commit(setting.Path, value); err != nil {
				entry.SetValidationError(err)
			}
		}
		p.entries[setting.Path] = entry

		var row fyne.CanvasObject = entry
		if _, err := strconv.Atoi(setting.Value); err == nil {
			adjustBtn := widget.NewButton(IconStepper, func() {
				if p.onAdjust != nil {
					p.onAdjust(setting)
				}
			})
			adjustBtn.Importance = widget.LowImportance
			row = container.NewBorder(nil, nil, nil, adjustBtn, entry)
		}
		p.form.Append(label, row)
		return true
	})

	p.container = container.NewVBox(p.form)
}

// Container returns the panel's root object
func (p *SettingsPanel) Container() *fyne.Container {
	return p.container
}

// SetAdjustCallback sets the function that opens a stepper for a setting
func (p *SettingsPanel) SetAdjustCallback(callback func(setting *model.Setting)) {
	p.onAdjust = callback
}

// Entry returns the entry for a leaf setting
func (p *SettingsPanel) Entry(path string) (*widget.Entry, bool) {
	entry, ok := p.entries[path]
	return entry, ok
}

// CurrentValue returns the pending value of a setting, or its effective value
func (p *SettingsPanel) CurrentValue(path string) string {
	if change, ok := p.tracker.GetByPath(path); ok {
		return change.Value
	}
	if setting, ok := p.group.Find(path); ok {
		return p.effectiveValue(setting)
	}
	return ""
}

// effectiveValue is the last applied value of a setting, or its value from
// the settings tree when nothing was applied
func (p *SettingsPanel) effectiveValue(setting *model.Setting) string {
	value := setting.Value
	for _, change := range p.tracker.Applied() {
		if change.Path == setting.Path {
			value = change.Value
		}
	}
	return value
}

// Commit records value for path. Committing the effective value drops any
// pending change for the path.
func (p *SettingsPanel) Commit(path, value string) error {
	setting, ok := p.group.Find(path)
	if !ok {
		return fmt.Errorf("unknown setting: %s", path)
	}

	if value == p.effectiveValue(setting) {
		if _, pending := p.tracker.GetByPath(path); pending {
			return p.tracker.RemovePath(path)
		}
		return nil
	}

	_, err := p.tracker.Add(model.NewPendingChange(setting, value))
	return err
}

// Reload shows current values in all entries
func (p *SettingsPanel) Reload() {
	for path, entry := range p.entries {
		entry.SetText(p.CurrentValue(path))
	}
}

package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/prefs-panel/internal/advisory"
	"github.com/ytget/prefs-panel/internal/catalog"
	"github.com/ytget/prefs-panel/internal/changes"
	"github.com/ytget/prefs-panel/internal/model"
)

// RestartBanner shows which applications need a restart for the pending
// changes of one settings group
type RestartBanner struct {
	engine  *advisory.Engine
	tracker changes.Tracker
	catalog *catalog.Catalog

	icon      *widget.Label
	textLabel *widget.Label
	undoBtn   *widget.Button
	applyBtn  *widget.Button
	container *fyne.Container

	state   model.AdvisoryViewState
	onError func(error)
}

// NewRestartBanner creates a hidden banner
func NewRestartBanner(engine *advisory.Engine, tracker changes.Tracker, cat *catalog.Catalog) *RestartBanner {
	b := &RestartBanner{
		engine:  engine,
		tracker: tracker,
		catalog: cat,
	}
	b.createUI()
	return b
}

// createUI creates the banner widgets
func (b *RestartBanner) createUI() {
	b.icon = widget.NewLabel(IconRestart)
	b.textLabel = widget.NewLabel("")
	b.textLabel.Wrapping = fyne.TextWrapWord

	b.undoBtn = widget.NewButton(b.catalog.Text(catalog.KeyUndo), b.onUndo)
	b.undoBtn.Importance = widget.LowImportance

	b.applyBtn = widget.NewButton("", b.onApply)
	b.applyBtn.Importance = widget.WarningImportance

	buttons := container.NewHBox(b.undoBtn, b.applyBtn)
	b.container = container.NewBorder(nil, nil, b.icon, buttons, b.textLabel)
	b.container.Hide()
}

// Container returns the banner's root object
func (b *RestartBanner) Container() *fyne.Container {
	return b.container
}

// SetErrorCallback sets the function called when undo or apply fails
func (b *RestartBanner) SetErrorCallback(callback func(error)) {
	b.onError = callback
}

// State returns the last applied view state
func (b *RestartBanner) State() model.AdvisoryViewState {
	return b.state
}

// Refresh recomputes the advisory from the tracker's current changes
func (b *RestartBanner) Refresh() {
	b.Update(b.engine.Compute(b.tracker.All()))
}

// Update applies a view state to the widgets
func (b *RestartBanner) Update(state model.AdvisoryViewState) {
	b.state = state
	if !state.Visible {
		b.container.Hide()
		return
	}

	b.textLabel.SetText(state.RestartText)
	b.applyBtn.SetText(state.RestartButtonLabel)
	if state.OSRestart {
		b.applyBtn.Importance = widget.DangerImportance
	} else {
		b.applyBtn.Importance = widget.WarningImportance
	}
	b.applyBtn.Refresh()
	b.container.Show()
	b.container.Refresh()
}

// RefreshTexts updates static labels after a language change
func (b *RestartBanner) RefreshTexts() {
	b.undoBtn.SetText(b.catalog.Text(catalog.KeyUndo))
	b.Refresh()
}

// onUndo reverts the group's pending changes
func (b *RestartBanner) onUndo() {
	if err := b.engine.UndoChanges(b.tracker.All()); err != nil {
		b.reportError(err)
	}
	b.Refresh()
}

// onApply applies the group's pending changes
func (b *RestartBanner) onApply() {
	if err := b.engine.RestartNow(b.tracker.All()); err != nil {
		b.reportError(err)
	}
	b.Refresh()
}

func (b *RestartBanner) reportError(err error) {
	log.Printf("restart banner: %v", err)
	if b.onError != nil {
		b.onError(err)
	}
}

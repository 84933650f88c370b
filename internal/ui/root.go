package ui

import (
	"log"
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/prefs-panel/internal/advisory"
	"github.com/ytget/prefs-panel/internal/catalog"
	"github.com/ytget/prefs-panel/internal/changes"
	"github.com/ytget/prefs-panel/internal/config"
	"github.com/ytget/prefs-panel/internal/focus"
	"github.com/ytget/prefs-panel/internal/model"
)

// RootUI represents the main panel window
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	settings *config.Settings
	catalog  *catalog.Catalog
	tracker  changes.Tracker
	engine   *advisory.Engine

	panel   *SettingsPanel
	banner  *RestartBanner
	windows *windowGroup

	linkedTags []string
	closeDelay time.Duration
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, cat *catalog.Catalog,
	group model.SettingsGroup, tracker changes.Tracker) *RootUI {
	cat.SetLanguage(settings.GetLanguage())

	linkedTags := settings.GetLinkedTags()
	coordinator := focus.NewCoordinator(linkedTags...)

	ui := &RootUI{
		window:     window,
		app:        app,
		settings:   settings,
		catalog:    cat,
		tracker:    tracker,
		engine:     advisory.NewEngine(group, cat, tracker),
		linkedTags: linkedTags,
		closeDelay: settings.GetCloseDelay(),
		windows:    newWindowGroup(coordinator, model.NewWindowHandle(TagPanel)),
	}

	window.SetTitle(cat.Text(catalog.KeyPanelTitle))

	// Recompute the advisory on every change to the pending list
	tracker.SetUpdateCallback(ui.onChangesUpdated)

	app.Lifecycle().SetOnExitedForeground(ui.windows.focusLeftApp)
	app.Lifecycle().SetOnEnteredForeground(ui.windows.focusReturned)

	ui.setupUI(group)
	log.Printf("RootUI initialized for group %q with linked tags %v", group.Name, linkedTags)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(group model.SettingsGroup) {
	ui.createMenu()

	ui.panel = NewSettingsPanel(group, ui.tracker)
	ui.panel.SetAdjustCallback(ui.openStepper)

	ui.banner = NewRestartBanner(ui.engine, ui.tracker, ui.catalog)
	ui.banner.SetErrorCallback(func(err error) {
		dialog.ShowError(err, ui.window)
	})

	content := container.NewBorder(ui.banner.Container(), nil, nil, nil, container.NewVScroll(ui.panel.Container()))
	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(PanelWidth, PanelHeight))

	ui.banner.Refresh()
}

// createMenu creates the language menu
func (ui *RootUI) createMenu() {
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.catalog.Text(catalog.KeyLanguage))

	names := ui.catalog.LanguageNames()
	codes := make([]string, 0, len(names))
	for code := range names {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(names[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.catalog.CurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.catalog.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.catalog.Text(catalog.KeyPanelTitle))
	ui.banner.RefreshTexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// onChangesUpdated runs on every pending-change mutation. The store may be
// mutated from timer goroutines, so widget updates go through fyne.Do.
func (ui *RootUI) onChangesUpdated(pending []model.PendingChange) {
	state := ui.engine.Compute(pending)
	fyne.Do(func() {
		ui.banner.Update(state)
		ui.panel.Reload()
	})
}

// openStepper shows a transient stepper window for a numeric setting
func (ui *RootUI) openStepper(setting *model.Setting) {
	current, err := strconv.Atoi(ui.panel.CurrentValue(setting.Path))
	if err != nil {
		current = StepperMin
	}

	win := ui.app.NewWindow(setting.Schema.Title)
	popup := &popupWindow{
		handle: model.NewWindowHandle(ui.linkedTags...),
		window: win,
	}

	path := setting.Path
	stepper := NewStepper(current, StepperMin, StepperMax, StepperStep, func(value int) {
		if err := ui.panel.Commit(path, strconv.Itoa(value)); err != nil {
			log.Printf("stepper commit for %s failed: %v", path, err)
			return
		}
		popup.timer.Cancel()
		popup.timer = focus.ScheduleClose(ui.closeDelay, func() {
			fyne.Do(win.Close)
		})
	})

	popup.stepper = stepper

	closeBtn := widget.NewButton(ui.catalog.Text(catalog.KeyClose), win.Close)
	win.SetContent(container.NewVBox(stepper.Container(), closeBtn))
	win.Resize(fyne.NewSize(StepperWidth, StepperHeight))
	win.SetOnClosed(func() {
		ui.windows.closed(popup.handle)
	})

	ui.windows.open(popup)
	win.Show()
}

// Window returns the main window
func (ui *RootUI) Window() fyne.Window {
	return ui.window
}

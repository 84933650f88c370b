package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/prefs-panel/internal/changes"
	"github.com/ytget/prefs-panel/internal/config"
)

func newTestRoot(t *testing.T) (*RootUI, *changes.Store) {
	t.Helper()
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetLanguage("en")
	settings.SetCloseDelay(5 * time.Second)

	store := changes.NewStore()
	root := NewRootUI(app.NewWindow("test"), app, settings, testCatalog(), testGroup(), store)
	return root, store
}

func TestNewRootUI(t *testing.T) {
	root, _ := newTestRoot(t)

	if root.Window().Title() != "Preferences" {
		t.Errorf("Expected title 'Preferences', got '%s'", root.Window().Title())
	}
	if root.banner.Container().Visible() {
		t.Error("Banner should start hidden")
	}
	if root.Window().MainMenu() == nil || len(root.Window().MainMenu().Items) != 1 {
		t.Error("Expected a language menu")
	}
	if root.closeDelay != 5*time.Second {
		t.Errorf("Expected close delay from settings, got %v", root.closeDelay)
	}
}

func TestRootUI_OpenStepper(t *testing.T) {
	root, store := newTestRoot(t)

	setting, _ := root.engine.Group().Find("zoomtool.scale")
	root.openStepper(setting)

	if root.windows.count() != 1 {
		t.Fatalf("Expected one popup, got %d", root.windows.count())
	}

	var popup *popupWindow
	for _, p := range root.windows.popups {
		popup = p
	}
	if !popup.handle.HasAnyTag(map[string]struct{}{"qss": {}}) {
		t.Errorf("Popup should carry the linked tags, got %v", popup.handle.Tags)
	}

	// Committing records a pending change and schedules the close
	test.Tap(popup.stepper.incBtn)
	test.Tap(popup.stepper.commitBtn)

	change, ok := store.GetByPath("zoomtool.scale")
	if !ok || change.Value != "110" {
		t.Errorf("Expected pending value '110', got %+v (%v)", change, ok)
	}
	if !popup.timer.Pending() {
		t.Error("Expected a pending close after commit")
	}
	timer := popup.timer

	root.windows.focusLeftApp()
	if root.windows.count() != 0 {
		t.Errorf("Popup should close when the app loses focus, got %d open", root.windows.count())
	}
	if timer.Pending() {
		t.Error("Closing the popup must cancel its close timer")
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	root, _ := newTestRoot(t)

	root.onLanguageChange("en")
	if root.settings.GetLanguage() != "en" {
		t.Errorf("Expected saved language 'en', got '%s'", root.settings.GetLanguage())
	}
}

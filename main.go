package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/prefs-panel/internal/catalog"
	"github.com/ytget/prefs-panel/internal/changes"
	"github.com/ytget/prefs-panel/internal/config"
	"github.com/ytget/prefs-panel/internal/model"
	"github.com/ytget/prefs-panel/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.prefs-panel"
	AppName = "Preferences"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPanelTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	// Initialize services
	settings := config.NewSettings(myApp)
	messages := loadCatalog(settings)
	group := loadGroup(settings)

	store := changes.NewStore()
	store.SetApplyFunc(func(applied []model.PendingChange) error {
		for _, change := range applied {
			log.Printf("Applying %s = %q (%s)", change.Path, change.Value, change.Liveness)
		}
		return nil
	})

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, settings, messages, group, store)

	// Show and run
	myWindow.ShowAndRun()
}

// loadCatalog loads the configured message catalog, falling back to the embedded one
func loadCatalog(settings *config.Settings) *catalog.Catalog {
	path := settings.GetCatalogFile()
	if path == "" {
		return catalog.Default()
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		log.Printf("failed to load message catalog %s, using built-in: %v", path, err)
		return catalog.Default()
	}
	return c
}

// loadGroup loads the configured settings group, falling back to the built-in one
func loadGroup(settings *config.Settings) model.SettingsGroup {
	path := settings.GetGroupFile()
	if path == "" {
		return config.DefaultGroup()
	}
	group, err := config.LoadGroupFile(path)
	if err != nil {
		log.Printf("failed to load settings group %s, using built-in: %v", path, err)
		return config.DefaultGroup()
	}
	return group
}

package ui

// Package ui contains the Fyne-based preferences panel. It renders a settings
// group, records edits as pending changes, shows the restart advisory banner
// and manages transient stepper popups whose focus loss is arbitrated by the
// focus coordinator. All UI strings come from the message catalog.

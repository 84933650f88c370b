package ui

import (
	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"github.com/ytget/prefs-panel/internal/focus"
	"github.com/ytget/prefs-panel/internal/model"
)

// popupWindow is a transient window closed when focus leaves the group
type popupWindow struct {
	handle  model.WindowHandle
	window  fyne.Window
	stepper *Stepper
	timer   *focus.CloseTimer
}

// windowGroup tracks which of the app's windows holds focus and feeds focus
// changes to the coordinator. It reports the focused window to the
// coordinator at call time.
type windowGroup struct {
	coordinator *focus.Coordinator
	main        model.WindowHandle
	focused     *model.WindowHandle
	popups      map[uuid.UUID]*popupWindow
}

func newWindowGroup(coordinator *focus.Coordinator, main model.WindowHandle) *windowGroup {
	g := &windowGroup{
		coordinator: coordinator,
		main:        main,
		popups:      make(map[uuid.UUID]*popupWindow),
	}
	coordinator.Track(main)
	g.focused = &g.main
	coordinator.SetBlurCallback(g.onBlur)
	return g
}

// FocusedWindow implements focus.FocusReporter
func (g *windowGroup) FocusedWindow() (model.WindowHandle, bool, error) {
	if g.focused == nil {
		return model.WindowHandle{}, false, nil
	}
	return *g.focused, true, nil
}

// open registers a popup and moves focus to it
func (g *windowGroup) open(p *popupWindow) {
	g.popups[p.handle.ID] = p
	g.coordinator.Track(p.handle)
	g.moveFocus(p.handle)
}

// moveFocus moves focus to next, arbitrating the loss for the old holder
func (g *windowGroup) moveFocus(next model.WindowHandle) {
	prev := g.focused
	g.focused = &next
	g.coordinator.Refocus(next)
	if prev != nil && prev.ID != next.ID {
		g.coordinator.OnFocusLost(*prev, &next)
	}
}

// focusLeftApp blurs every tracked window whose loss is not suppressed
func (g *windowGroup) focusLeftApp() {
	g.focused = nil
	for _, p := range g.popupList() {
		g.coordinator.HandleFocusLost(p.handle, g)
	}
	g.coordinator.HandleFocusLost(g.main, g)
}

// focusReturned gives focus back to the main window
func (g *windowGroup) focusReturned() {
	g.moveFocus(g.main)
}

// closed forgets a popup and cancels its pending close
func (g *windowGroup) closed(handle model.WindowHandle) {
	p, ok := g.popups[handle.ID]
	if !ok {
		return
	}
	p.timer.Cancel()
	delete(g.popups, handle.ID)
	g.coordinator.Release(handle)
	if g.focused != nil && g.focused.ID == handle.ID {
		g.focused = &g.main
		g.coordinator.Refocus(g.main)
	}
}

// onBlur closes popups on an allowed blur. The main window stays open.
func (g *windowGroup) onBlur(w model.WindowHandle) {
	if p, ok := g.popups[w.ID]; ok {
		g.closed(w)
		p.window.Close()
	}
}

func (g *windowGroup) popupList() []*popupWindow {
	list := make([]*popupWindow, 0, len(g.popups))
	for _, p := range g.popups {
		list = append(list, p)
	}
	return list
}

func (g *windowGroup) count() int {
	return len(g.popups)
}

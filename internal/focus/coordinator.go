package focus

import (
	"log"

	"github.com/google/uuid"

	"github.com/ytget/prefs-panel/internal/model"
)

// State is the focus state of a tracked window
type State string

const (
	StateUnknown State = ""
	StateFocused State = "focused"
	StateBlurred State = "blurred"
)

// FocusReporter reports which window currently holds focus. ok is false when
// no window of this process is focused.
type FocusReporter interface {
	FocusedWindow() (w model.WindowHandle, ok bool, err error)
}

// FocusReporterFunc adapts a function to FocusReporter
type FocusReporterFunc func() (model.WindowHandle, bool, error)

// FocusedWindow calls f
func (f FocusReporterFunc) FocusedWindow() (model.WindowHandle, bool, error) {
	return f()
}

// Coordinator decides whether a focus loss leaves the window group. All calls
// are expected on the UI event loop; the coordinator does no locking.
type Coordinator struct {
	linked map[string]struct{}
	states map[uuid.UUID]State
	onBlur func(model.WindowHandle)
}

// NewCoordinator creates a coordinator treating linkedTags as one group
func NewCoordinator(linkedTags ...string) *Coordinator {
	linked := make(map[string]struct{}, len(linkedTags))
	for _, tag := range linkedTags {
		linked[tag] = struct{}{}
	}
	return &Coordinator{
		linked: linked,
		states: make(map[uuid.UUID]State),
	}
}

// SetBlurCallback sets the function called for every allowed blur
func (c *Coordinator) SetBlurCallback(callback func(model.WindowHandle)) {
	c.onBlur = callback
}

// LinkedTags returns the configured tags
func (c *Coordinator) LinkedTags() []string {
	tags := make([]string, 0, len(c.linked))
	for tag := range c.linked {
		tags = append(tags, tag)
	}
	return tags
}

// Track starts tracking w in the focused state
func (c *Coordinator) Track(w model.WindowHandle) {
	c.states[w.ID] = StateFocused
}

// Refocus moves w back to the focused state
func (c *Coordinator) Refocus(w model.WindowHandle) {
	c.states[w.ID] = StateFocused
}

// Release discards the state of a destroyed window
func (c *Coordinator) Release(w model.WindowHandle) {
	delete(c.states, w.ID)
}

// State returns the focus state of w
func (c *Coordinator) State(w model.WindowHandle) State {
	return c.states[w.ID]
}

// Suppresses reports whether focus moving to next stays inside the group
func (c *Coordinator) Suppresses(next *model.WindowHandle) bool {
	return next != nil && next.HasAnyTag(c.linked)
}

// OnFocusLost decides whether prev losing focus to next is a blur. next is nil
// when no window of this process took focus. An allowed blur moves prev to
// StateBlurred and runs the blur callback; a suppressed one changes nothing.
func (c *Coordinator) OnFocusLost(prev model.WindowHandle, next *model.WindowHandle) bool {
	if c.Suppresses(next) {
		return false
	}

	if _, tracked := c.states[prev.ID]; tracked {
		c.states[prev.ID] = StateBlurred
	}
	if c.onBlur != nil {
		c.onBlur(prev)
	}
	return true
}

// HandleFocusLost queries reporter for the focused window and arbitrates.
// If the focused window cannot be determined the blur is allowed.
func (c *Coordinator) HandleFocusLost(prev model.WindowHandle, reporter FocusReporter) bool {
	if reporter == nil {
		return c.OnFocusLost(prev, nil)
	}

	next, ok, err := reporter.FocusedWindow()
	if err != nil {
		log.Printf("focus: cannot determine focused window, allowing blur of %s: %v", prev.ID, err)
		return c.OnFocusLost(prev, nil)
	}
	if !ok {
		return c.OnFocusLost(prev, nil)
	}
	return c.OnFocusLost(prev, &next)
}

package focus

import (
	"errors"
	"sort"
	"testing"

	"github.com/ytget/prefs-panel/internal/model"
)

func TestOnFocusLost_SuppressedWithinGroup(t *testing.T) {
	c := NewCoordinator("qss")
	w1 := model.NewWindowHandle("qss")
	w2 := model.NewWindowHandle("qss", "widget")
	c.Track(w1)

	if c.OnFocusLost(w1, &w2) {
		t.Error("Expected blur to be suppressed when focus moves inside the group")
	}
	if c.State(w1) != StateFocused {
		t.Errorf("Suppressed blur must not change state, got %s", c.State(w1))
	}
}

func TestOnFocusLost_AllowedWithoutFocusedWindow(t *testing.T) {
	c := NewCoordinator("qss")
	w1 := model.NewWindowHandle("qss")
	c.Track(w1)

	if !c.OnFocusLost(w1, nil) {
		t.Error("Expected blur when no window is focused")
	}
	if c.State(w1) != StateBlurred {
		t.Errorf("Expected state %s, got %s", StateBlurred, c.State(w1))
	}
}

func TestOnFocusLost_TruthTable(t *testing.T) {
	tests := []struct {
		linked   []string
		next     []string
		expected bool
	}{
		{[]string{"qss"}, []string{"qss"}, false},
		{[]string{"qss"}, []string{"widget", "qss"}, false},
		{[]string{"qss", "menu"}, []string{"menu"}, false},
		{[]string{"qss"}, []string{"widget"}, true},
		{[]string{"qss"}, nil, true},
		{nil, []string{"qss"}, true},
	}

	for _, test := range tests {
		c := NewCoordinator(test.linked...)
		prev := model.NewWindowHandle("qss")
		next := model.NewWindowHandle(test.next...)
		if got := c.OnFocusLost(prev, &next); got != test.expected {
			t.Errorf("OnFocusLost(linked=%v, next=%v) = %v, expected %v", test.linked, test.next, got, test.expected)
		}
	}
}

func TestOnFocusLost_BlurCallback(t *testing.T) {
	c := NewCoordinator("qss")
	var blurred []model.WindowHandle
	c.SetBlurCallback(func(w model.WindowHandle) {
		blurred = append(blurred, w)
	})

	w1 := model.NewWindowHandle("qss")
	sibling := model.NewWindowHandle("qss")
	other := model.NewWindowHandle("other")
	c.Track(w1)

	c.OnFocusLost(w1, &sibling)
	if len(blurred) != 0 {
		t.Fatalf("Expected no blur callback for suppressed blur, got %d", len(blurred))
	}

	c.OnFocusLost(w1, &other)
	if len(blurred) != 1 || blurred[0].ID != w1.ID {
		t.Fatalf("Expected one blur callback for w1, got %v", blurred)
	}
}

func TestLifecycle(t *testing.T) {
	c := NewCoordinator("qss")
	w := model.NewWindowHandle("qss")

	if c.State(w) != StateUnknown {
		t.Errorf("Untracked window should be unknown, got %s", c.State(w))
	}

	c.Track(w)
	c.OnFocusLost(w, nil)
	if c.State(w) != StateBlurred {
		t.Errorf("Expected %s, got %s", StateBlurred, c.State(w))
	}

	c.Refocus(w)
	if c.State(w) != StateFocused {
		t.Errorf("Expected %s after refocus, got %s", StateFocused, c.State(w))
	}

	c.Release(w)
	if c.State(w) != StateUnknown {
		t.Errorf("Released window should be unknown, got %s", c.State(w))
	}

	// A blur for a released window is still reported but not tracked.
	if !c.OnFocusLost(w, nil) {
		t.Error("Expected blur for released window")
	}
	if c.State(w) != StateUnknown {
		t.Errorf("Released window must stay untracked, got %s", c.State(w))
	}
}

func TestHandleFocusLost(t *testing.T) {
	sibling := model.NewWindowHandle("qss")
	stranger := model.NewWindowHandle("settings")

	tests := []struct {
		name     string
		reporter FocusReporter
		expected bool
	}{
		{"nil reporter", nil, true},
		{"sibling focused", FocusReporterFunc(func() (model.WindowHandle, bool, error) {
			return sibling, true, nil
		}), false},
		{"stranger focused", FocusReporterFunc(func() (model.WindowHandle, bool, error) {
			return stranger, true, nil
		}), true},
		{"nothing focused", FocusReporterFunc(func() (model.WindowHandle, bool, error) {
			return model.WindowHandle{}, false, nil
		}), true},
		{"platform error", FocusReporterFunc(func() (model.WindowHandle, bool, error) {
			return sibling, true, errors.New("not supported")
		}), true},
	}

	for _, test := range tests {
		c := NewCoordinator("qss")
		prev := model.NewWindowHandle("qss")
		c.Track(prev)
		if got := c.HandleFocusLost(prev, test.reporter); got != test.expected {
			t.Errorf("%s: HandleFocusLost() = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestLinkedTags(t *testing.T) {
	c := NewCoordinator("qss", "menu", "qss")
	tags := c.LinkedTags()
	sort.Strings(tags)
	if len(tags) != 2 || tags[0] != "menu" || tags[1] != "qss" {
		t.Errorf("Expected [menu qss], got %v", tags)
	}
}

package model

import "github.com/google/uuid"

// WindowHandle identifies a UI window and the focus-group tags it was created with
type WindowHandle struct {
	ID   uuid.UUID
	Tags []string
}

// NewWindowHandle creates a handle with a fresh ID
func NewWindowHandle(tags ...string) WindowHandle {
	return WindowHandle{ID: uuid.New(), Tags: append([]string(nil), tags...)}
}

// IsZero returns true for the zero handle
func (w WindowHandle) IsZero() bool {
	return w.ID == uuid.Nil
}

// HasAnyTag returns true if any of the window's tags is in set
func (w WindowHandle) HasAnyTag(set map[string]struct{}) bool {
	for _, tag := range w.Tags {
		if _, ok := set[tag]; ok {
			return true
		}
	}
	return false
}

package changes

import (
	"github.com/ytget/prefs-panel/internal/model"
)

// Tracker defines the interface for the pending-change store.
type Tracker interface {
	SetUpdateCallback(func([]model.PendingChange))
	Add(change model.PendingChange) (model.PendingChange, error)
	Get(id string) (model.PendingChange, bool)
	GetByPath(path string) (model.PendingChange, bool)
	All() []model.PendingChange
	Len() int
	Remove(id string) error
	RemovePath(path string) error

	// UndoChanges drops the given changes without applying them
	UndoChanges(changes []model.PendingChange) error

	// RestartNow applies the given changes and drops them from the pending list
	RestartNow(changes []model.PendingChange) error

	Applied() []model.PendingChange
}

package advisory

import (
	"github.com/ytget/prefs-panel/internal/model"
)

// Messages resolves message templates by key.
type Messages interface {
	Lookup(key string) (string, bool)
}

// ChangeHandler applies or reverts pending changes. Implemented by the owner
// of the pending-change sequence.
type ChangeHandler interface {
	UndoChanges(changes []model.PendingChange) error
	RestartNow(changes []model.PendingChange) error
}

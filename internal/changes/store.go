package changes

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/prefs-panel/internal/model"
)

// IDPrefix prefixes every generated change ID
const IDPrefix = "change-"

// Store holds pending changes in arrival order
type Store struct {
	changes      map[string]*model.PendingChange
	order        []string
	applied      []model.PendingChange
	changesMutex sync.RWMutex
	onUpdate     func([]model.PendingChange) // callback for UI updates
	onApply      func([]model.PendingChange) error
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		changes: make(map[string]*model.PendingChange),
	}
}

// SetUpdateCallback sets the callback run after every mutation with the
// current ordered changes
func (s *Store) SetUpdateCallback(callback func([]model.PendingChange)) {
	s.onUpdate = callback
}

// SetApplyFunc sets the function that commits changes on RestartNow
func (s *Store) SetApplyFunc(apply func([]model.PendingChange) error) {
	s.onApply = apply
}

// Add records a change. A change to a path that is already pending replaces
// the value of that entry and keeps its position.
func (s *Store) Add(change model.PendingChange) (model.PendingChange, error) {
	if change.Path == "" {
		return model.PendingChange{}, fmt.Errorf("pending change has no path")
	}

	s.changesMutex.Lock()
	if existing := s.findByPathLocked(change.Path); existing != nil {
		existing.Value = change.Value
		existing.Liveness = change.Liveness
		existing.SolutionName = change.SolutionName
		existing.Schema = change.Schema
		updated := *existing
		s.changesMutex.Unlock()

		s.notifyUpdate()
		return updated, nil
	}

	change.ID = generateChangeID()
	if change.CreatedAt.IsZero() {
		change.CreatedAt = time.Now()
	}
	stored := change
	s.changes[change.ID] = &stored
	s.order = append(s.order, change.ID)
	s.changesMutex.Unlock()

	s.notifyUpdate()
	return change, nil
}

// Get returns a change by ID
func (s *Store) Get(id string) (model.PendingChange, bool) {
	s.changesMutex.RLock()
	defer s.changesMutex.RUnlock()
	change, exists := s.changes[id]
	if !exists {
		return model.PendingChange{}, false
	}
	return *change, true
}

// GetByPath returns the pending change for a setting path
func (s *Store) GetByPath(path string) (model.PendingChange, bool) {
	s.changesMutex.RLock()
	defer s.changesMutex.RUnlock()
	change := s.findByPathLocked(path)
	if change == nil {
		return model.PendingChange{}, false
	}
	return *change, true
}

// All returns a copy of the pending changes in arrival order
func (s *Store) All() []model.PendingChange {
	s.changesMutex.RLock()
	defer s.changesMutex.RUnlock()
	return s.snapshotLocked()
}

// Len returns the number of pending changes
func (s *Store) Len() int {
	s.changesMutex.RLock()
	defer s.changesMutex.RUnlock()
	return len(s.order)
}

// Remove drops a change by ID
func (s *Store) Remove(id string) error {
	s.changesMutex.Lock()
	if _, exists := s.changes[id]; !exists {
		s.changesMutex.Unlock()
		return fmt.Errorf("pending change not found: %s", id)
	}
	s.removeLocked(id)
	s.changesMutex.Unlock()

	s.notifyUpdate()
	return nil
}

// RemovePath drops the pending change for a setting path
func (s *Store) RemovePath(path string) error {
	s.changesMutex.Lock()
	change := s.findByPathLocked(path)
	if change == nil {
		s.changesMutex.Unlock()
		return fmt.Errorf("no pending change for path: %s", path)
	}
	s.removeLocked(change.ID)
	s.changesMutex.Unlock()

	s.notifyUpdate()
	return nil
}

// UndoChanges drops the given changes. Changes no longer pending are skipped.
func (s *Store) UndoChanges(changes []model.PendingChange) error {
	s.changesMutex.Lock()
	removed := 0
	for _, change := range changes {
		if _, exists := s.changes[change.ID]; exists {
			s.removeLocked(change.ID)
			removed++
		}
	}
	s.changesMutex.Unlock()

	if removed > 0 {
		log.Printf("Undid %d pending changes", removed)
		s.notifyUpdate()
	}
	return nil
}

// RestartNow commits the given changes through the apply function and drops
// them from the pending list. Nothing is dropped if the apply function fails.
func (s *Store) RestartNow(changes []model.PendingChange) error {
	s.changesMutex.RLock()
	var pending []model.PendingChange
	for _, change := range changes {
		if stored, exists := s.changes[change.ID]; exists {
			pending = append(pending, *stored)
		}
	}
	s.changesMutex.RUnlock()

	if len(pending) == 0 {
		return nil
	}

	if s.onApply != nil {
		if err := s.onApply(pending); err != nil {
			return fmt.Errorf("apply %d changes: %w", len(pending), err)
		}
	}

	s.changesMutex.Lock()
	for _, change := range pending {
		if _, exists := s.changes[change.ID]; exists {
			s.removeLocked(change.ID)
			s.applied = append(s.applied, change)
		}
	}
	s.changesMutex.Unlock()

	log.Printf("Applied %d pending changes", len(pending))
	s.notifyUpdate()
	return nil
}

// Applied returns the changes committed so far, oldest first
func (s *Store) Applied() []model.PendingChange {
	s.changesMutex.RLock()
	defer s.changesMutex.RUnlock()
	return append([]model.PendingChange(nil), s.applied...)
}

func (s *Store) findByPathLocked(path string) *model.PendingChange {
	for _, id := range s.order {
		if change := s.changes[id]; change.Path == path {
			return change
		}
	}
	return nil
}

func (s *Store) removeLocked(id string) {
	delete(s.changes, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) snapshotLocked() []model.PendingChange {
	snapshot := make([]model.PendingChange, 0, len(s.order))
	for _, id := range s.order {
		snapshot = append(snapshot, *s.changes[id])
	}
	return snapshot
}

// notifyUpdate calls the update callback if set. Must be called without the lock held.
func (s *Store) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate(s.All())
	}
}

// generateChangeID generates a unique change ID
func generateChangeID() string {
	return IDPrefix + uuid.New().String()
}

package advisory

import (
	"fmt"
	"strings"

	"github.com/ytget/prefs-panel/internal/catalog"
	"github.com/ytget/prefs-panel/internal/model"
)

// SolutionSeparator joins solution names in the restart text
const SolutionSeparator = ", "

// Scope returns the changes whose path is somewhere in group, in input order.
func Scope(changes []model.PendingChange, group model.SettingsGroup) []model.PendingChange {
	var scoped []model.PendingChange
	for _, change := range changes {
		if group.Contains(change.Path) {
			scoped = append(scoped, change)
		}
	}
	return scoped
}

// Compute derives the advisory view state. It has no side effects and returns
// the same state for the same inputs.
func Compute(changes []model.PendingChange, group model.SettingsGroup, messages Messages) model.AdvisoryViewState {
	scoped := Scope(changes, group)

	names, osRestart := solutionNames(scoped, messages)
	if len(names) == 0 {
		return model.AdvisoryViewState{}
	}

	state := model.AdvisoryViewState{
		SolutionNames: names,
		Visible:       true,
		OSRestart:     osRestart,
	}

	if osRestart {
		state.RestartText = lookup(messages, catalog.KeyOSRestartText)
		state.RestartButtonLabel = lookup(messages, catalog.KeyRestartNow)
		return state
	}

	if template, ok := lookupOK(messages, catalog.KeyRestartText); ok {
		state.RestartText = catalog.Format(template, map[string]string{
			catalog.PlaceholderSolutions: strings.Join(names, SolutionSeparator),
		})
	}
	state.RestartButtonLabel = lookup(messages, catalog.KeyApplyNow)
	return state
}

// solutionNames returns [osName] if any change needs an OS restart, otherwise
// the distinct display names in first-seen order.
func solutionNames(changes []model.PendingChange, messages Messages) ([]string, bool) {
	for _, change := range changes {
		if change.Liveness.RequiresOSRestart() {
			return []string{lookup(messages, catalog.KeyOSName)}, true
		}
	}

	var names []string
	seen := make(map[string]struct{})
	for _, change := range changes {
		name := change.DisplayName()
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, false
}

func lookup(messages Messages, key string) string {
	text, _ := lookupOK(messages, key)
	return text
}

func lookupOK(messages Messages, key string) (string, bool) {
	if messages == nil {
		return "", false
	}
	return messages.Lookup(key)
}

// Engine binds a settings group to the handler that owns its pending changes
type Engine struct {
	group    model.SettingsGroup
	messages Messages
	handler  ChangeHandler
}

// NewEngine creates an engine for group
func NewEngine(group model.SettingsGroup, messages Messages, handler ChangeHandler) *Engine {
	return &Engine{
		group:    group,
		messages: messages,
		handler:  handler,
	}
}

// Group returns the settings group the engine is scoped to
func (e *Engine) Group() model.SettingsGroup {
	return e.group
}

// Compute derives the advisory for changes against the engine's group
func (e *Engine) Compute(changes []model.PendingChange) model.AdvisoryViewState {
	return Compute(changes, e.group, e.messages)
}

// UndoChanges forwards the scoped changes to the handler for undo
func (e *Engine) UndoChanges(changes []model.PendingChange) error {
	scoped := Scope(changes, e.group)
	if len(scoped) == 0 || e.handler == nil {
		return nil
	}
	if err := e.handler.UndoChanges(scoped); err != nil {
		return fmt.Errorf("undo %d changes in %q: %w", len(scoped), e.group.Name, err)
	}
	return nil
}

// RestartNow forwards the scoped changes to the handler for applying
func (e *Engine) RestartNow(changes []model.PendingChange) error {
	scoped := Scope(changes, e.group)
	if len(scoped) == 0 || e.handler == nil {
		return nil
	}
	if err := e.handler.RestartNow(scoped); err != nil {
		return fmt.Errorf("restart for %d changes in %q: %w", len(scoped), e.group.Name, err)
	}
	return nil
}

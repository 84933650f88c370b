package model

import "time"

// PendingChange is one edit that has not been applied yet
type PendingChange struct {
	ID           string
	Path         string
	Liveness     Liveness
	SolutionName string
	Schema       Schema
	Value        string
	CreatedAt    time.Time
}

// NewPendingChange creates a change for the given setting node
func NewPendingChange(setting *Setting, value string) PendingChange {
	return PendingChange{
		Path:         setting.Path,
		Liveness:     ParseLiveness(string(setting.Liveness)),
		SolutionName: setting.SolutionName,
		Schema:       setting.Schema,
		Value:        value,
		CreatedAt:    time.Now(),
	}
}

// DisplayName returns the solution name, the schema title, or "" in order of preference
func (c PendingChange) DisplayName() string {
	if c.SolutionName != "" {
		return c.SolutionName
	}
	return c.Schema.Title
}

// AdvisoryViewState is derived from the pending changes of one settings group.
// Empty strings mean the text is absent.
type AdvisoryViewState struct {
	SolutionNames      []string
	RestartText        string
	RestartButtonLabel string
	Visible            bool
	OSRestart          bool
}

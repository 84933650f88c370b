package model

// Schema carries the display metadata of a setting
type Schema struct {
	Title string `yaml:"title" json:"title"`
}

// Setting is a node in a settings tree. Trees are immutable snapshots.
type Setting struct {
	Path         string    `yaml:"path" json:"path"`
	Schema       Schema    `yaml:"schema" json:"schema"`
	SolutionName string    `yaml:"solutionName,omitempty" json:"solutionName,omitempty"`
	Value        string    `yaml:"value,omitempty" json:"value,omitempty"`
	Liveness     Liveness  `yaml:"liveness,omitempty" json:"liveness,omitempty"`
	Settings     []Setting `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// IsLeaf returns true if the setting has no children
func (s *Setting) IsLeaf() bool {
	return len(s.Settings) == 0
}

// SettingsGroup is a named forest of settings shown together in the panel
type SettingsGroup struct {
	Name     string    `yaml:"name" json:"name"`
	Settings []Setting `yaml:"settings" json:"settings"`
}

// Contains reports whether any node at any depth has the given path.
func (g SettingsGroup) Contains(path string) bool {
	return containsPath(g.Settings, path)
}

func containsPath(settings []Setting, path string) bool {
	for i := range settings {
		if settings[i].Path == path {
			return true
		}
		if containsPath(settings[i].Settings, path) {
			return true
		}
	}
	return false
}

// Find returns the first node with the given path in depth-first order
func (g SettingsGroup) Find(path string) (*Setting, bool) {
	var found *Setting
	g.Walk(func(s *Setting, _ int) bool {
		if s.Path == path {
			found = s
			return false
		}
		return true
	})
	return found, found != nil
}

// Walk visits every node depth-first, passing its depth. Returning false from
// fn stops the walk.
func (g SettingsGroup) Walk(fn func(s *Setting, depth int) bool) {
	walk(g.Settings, 0, fn)
}

func walk(settings []Setting, depth int, fn func(*Setting, int) bool) bool {
	for i := range settings {
		if !fn(&settings[i], depth) {
			return false
		}
		if !walk(settings[i].Settings, depth+1, fn) {
			return false
		}
	}
	return true
}

// Paths returns all node paths in depth-first order
func (g SettingsGroup) Paths() []string {
	var paths []string
	g.Walk(func(s *Setting, _ int) bool {
		paths = append(paths, s.Path)
		return true
	})
	return paths
}

// IsEmpty returns true if the group has no settings
func (g SettingsGroup) IsEmpty() bool {
	return len(g.Settings) == 0
}

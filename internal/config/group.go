package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ytget/prefs-panel/internal/model"
)

//go:embed default_group.yaml
var defaultGroup []byte

// DefaultGroup returns the built-in settings group
func DefaultGroup() model.SettingsGroup {
	group, err := LoadGroup(bytes.NewReader(defaultGroup))
	if err != nil {
		panic(fmt.Sprintf("embedded settings group is invalid: %v", err))
	}
	return group
}

// LoadGroup decodes and validates a YAML settings group
func LoadGroup(r io.Reader) (model.SettingsGroup, error) {
	var group model.SettingsGroup
	if err := yaml.NewDecoder(r).Decode(&group); err != nil {
		if err == io.EOF {
			return model.SettingsGroup{}, fmt.Errorf("settings group is empty")
		}
		return model.SettingsGroup{}, fmt.Errorf("decode settings group: %w", err)
	}
	if err := ValidateGroup(group); err != nil {
		return model.SettingsGroup{}, err
	}
	return group, nil
}

// LoadGroupFile reads a settings group from path
func LoadGroupFile(path string) (model.SettingsGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.SettingsGroup{}, fmt.Errorf("open settings group: %w", err)
	}
	defer f.Close()
	return LoadGroup(f)
}

// ValidateGroup checks that every node has a path and paths are unique
func ValidateGroup(group model.SettingsGroup) error {
	seen := make(map[string]struct{})
	var err error
	group.Walk(func(s *model.Setting, depth int) bool {
		if s.Path == "" {
			err = fmt.Errorf("setting %q at depth %d has no path", s.Schema.Title, depth)
			return false
		}
		if _, dup := seen[s.Path]; dup {
			err = fmt.Errorf("duplicate setting path: %s", s.Path)
			return false
		}
		seen[s.Path] = struct{}{}
		return true
	})
	return err
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/prefs-panel/internal/model"
)

const sampleGroup = `
name: visual
settings:
  - path: magnifier
    schema:
      title: Magnifier
    solutionName: Magnifier
    settings:
      - path: magnifier.zoom
        schema:
          title: Zoom
        liveness: ApplicationRestart
  - path: os.contrast
    schema:
      title: High contrast
    liveness: SomethingElse
`

func TestLoadGroup(t *testing.T) {
	group, err := LoadGroup(strings.NewReader(sampleGroup))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if group.Name != "visual" {
		t.Errorf("Expected name 'visual', got '%s'", group.Name)
	}
	if !group.Contains("magnifier.zoom") {
		t.Error("Expected nested path to be loaded")
	}

	zoom, _ := group.Find("magnifier.zoom")
	if zoom.Liveness != model.LivenessApplicationRestart {
		t.Errorf("Expected ApplicationRestart, got %s", zoom.Liveness)
	}

	contrast, _ := group.Find("os.contrast")
	if contrast.Liveness != model.LivenessNoRestart {
		t.Errorf("Expected unknown liveness to load as NoRestart, got %s", contrast.Liveness)
	}
}

func TestLoadGroup_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"malformed", "settings: [unclosed"},
		{"missing path", "settings:\n  - schema:\n      title: Nameless\n"},
		{"duplicate path", "settings:\n  - path: a\n    settings:\n      - path: a\n"},
	}

	for _, test := range tests {
		if _, err := LoadGroup(strings.NewReader(test.doc)); err == nil {
			t.Errorf("%s: expected error, got nil", test.name)
		}
	}
}

func TestLoadGroupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "group.yaml")
	if err := os.WriteFile(path, []byte(sampleGroup), 0o644); err != nil {
		t.Fatalf("Failed to write group file: %v", err)
	}

	group, err := LoadGroupFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(group.Paths()) != 3 {
		t.Errorf("Expected 3 paths, got %v", group.Paths())
	}

	if _, err := LoadGroupFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDefaultGroup(t *testing.T) {
	group := DefaultGroup()
	if group.IsEmpty() {
		t.Fatal("Default group should not be empty")
	}

	hasOSRestart := false
	group.Walk(func(s *model.Setting, _ int) bool {
		if s.Liveness.RequiresOSRestart() {
			hasOSRestart = true
		}
		return true
	})
	if !hasOSRestart {
		t.Error("Default group should contain an OS restart setting")
	}
}

package model

import "testing"

func TestParseLiveness(t *testing.T) {
	tests := []struct {
		input    string
		expected Liveness
	}{
		{"NoRestart", LivenessNoRestart},
		{"ApplicationRestart", LivenessApplicationRestart},
		{"OSRestart", LivenessOSRestart},
		{"", LivenessNoRestart},
		{"osrestart", LivenessNoRestart},
		{"RebootEverything", LivenessNoRestart},
	}

	for _, test := range tests {
		result := ParseLiveness(test.input)
		if result != test.expected {
			t.Errorf("ParseLiveness(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestLiveness_RequiresRestart(t *testing.T) {
	tests := []struct {
		liveness  Liveness
		restart   bool
		osRestart bool
	}{
		{LivenessNoRestart, false, false},
		{LivenessApplicationRestart, true, false},
		{LivenessOSRestart, true, true},
		{Liveness("bogus"), false, false},
	}

	for _, test := range tests {
		if got := test.liveness.RequiresRestart(); got != test.restart {
			t.Errorf("Liveness(%s).RequiresRestart() = %v, expected %v", test.liveness, got, test.restart)
		}
		if got := test.liveness.RequiresOSRestart(); got != test.osRestart {
			t.Errorf("Liveness(%s).RequiresOSRestart() = %v, expected %v", test.liveness, got, test.osRestart)
		}
	}
}

func TestLiveness_String(t *testing.T) {
	if got := LivenessOSRestart.String(); got != "OSRestart" {
		t.Errorf("Liveness.String() = %s, expected OSRestart", got)
	}
}

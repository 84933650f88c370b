package model

// Liveness describes what must be restarted for a setting change to take effect
type Liveness string

const (
	// LivenessNoRestart means the change applies immediately
	LivenessNoRestart Liveness = "NoRestart"

	// LivenessApplicationRestart means the owning application must restart
	LivenessApplicationRestart Liveness = "ApplicationRestart"

	// LivenessOSRestart means the operating system must restart
	LivenessOSRestart Liveness = "OSRestart"
)

// ParseLiveness maps a raw value to a Liveness. Unknown values map to
// LivenessNoRestart.
func ParseLiveness(s string) Liveness {
	switch Liveness(s) {
	case LivenessApplicationRestart:
		return LivenessApplicationRestart
	case LivenessOSRestart:
		return LivenessOSRestart
	default:
		return LivenessNoRestart
	}
}

// String returns the string representation of Liveness
func (l Liveness) String() string {
	return string(l)
}

// RequiresOSRestart returns true only for LivenessOSRestart
func (l Liveness) RequiresOSRestart() bool {
	return l == LivenessOSRestart
}

// RequiresRestart returns true if anything has to be restarted
func (l Liveness) RequiresRestart() bool {
	return l == LivenessApplicationRestart || l == LivenessOSRestart
}

// UnmarshalYAML normalizes unknown values while decoding.
func (l *Liveness) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*l = ParseLiveness(raw)
	return nil
}

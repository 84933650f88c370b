package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconLanguage = "🌐"
	IconRestart  = "⟳"
	IconMinus    = "−"
	IconPlus     = "+"
	IconStepper  = "±"
	IconCommit   = "✓"
)

// Window tags
const (
	// TagPanel marks the main panel window. It is never a linked tag.
	TagPanel = "panel"
)

// Layout sizing
const (
	PanelWidth  float32 = 560
	PanelHeight float32 = 480

	StepperWidth  float32 = 220
	StepperHeight float32 = 90

	IndentPerLevel = "    "

	FormRowPadding  float32 = 3
	FormTextSize    float32 = 13
	StepperIconSize float32 = 24
)

// Stepper bounds
const (
	StepperMin  = 0
	StepperMax  = 1000
	StepperStep = 10
)

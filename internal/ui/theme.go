package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Banner and form colors
var (
	bannerAmber     = color.NRGBA{R: 255, G: 193, B: 7, A: 255}
	bannerAmberDark = color.NRGBA{R: 196, G: 140, B: 0, A: 255}
	bannerOnAmber   = color.NRGBA{R: 33, G: 33, B: 33, A: 255}
	osRestartRed    = color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	osRestartDark   = color.NRGBA{R: 229, G: 57, B: 53, A: 255}
	rowSeparator    = color.NRGBA{R: 0, G: 0, B: 0, A: 24}
	rowSeparatorDk  = color.NRGBA{R: 255, G: 255, B: 255, A: 24}
)

// PanelTheme styles the settings form and the restart banner. Application
// restarts use the warning color, OS restarts the error color.
type PanelTheme struct{}

// NewPanelTheme creates a new panel theme
func NewPanelTheme() fyne.Theme {
	return &PanelTheme{}
}

// Color returns theme colors
func (t *PanelTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark

	switch name {
	case theme.ColorNameWarning:
		if dark {
			return bannerAmberDark
		}
		return bannerAmber
	case theme.ColorNameForegroundOnWarning:
		return bannerOnAmber
	case theme.ColorNameError:
		if dark {
			return osRestartDark
		}
		return osRestartRed
	case theme.ColorNameSeparator:
		if dark {
			return rowSeparatorDk
		}
		return rowSeparator
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *PanelTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PanelTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes. Form rows stay dense so deep setting trees fit
// the panel; the stepper icons are enlarged for its small window.
func (t *PanelTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return FormRowPadding
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return FormTextSize
	case theme.SizeNameInlineIcon:
		return StepperIconSize
	}

	return theme.DefaultTheme().Size(name)
}

// Package ui draws the statistics sidebar and its controls.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	StatusColor    rl.Color
	Padding        int32
	LineHeight     int32
	TopOffset      int32
	FontSize       int32
	HeaderFontSize int32
	ButtonHeight   int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.White,
		StatusColor:    rl.LightGray,
		Padding:        10,
		LineHeight:     30,
		TopOffset:      70,
		FontSize:       20,
		HeaderFontSize: 24,
		ButtonHeight:   28,
	}
}

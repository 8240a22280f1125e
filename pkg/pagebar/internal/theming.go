package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the UI framework.
type Theme struct {
	TabBarColor          sdl.Color // Tab bar background
	HighlightColor       sdl.Color // Selected tab pill
	AccentColor          sdl.Color // Highlight underline and focus accents
	TextColor            sdl.Color // Unselected tab labels and page text
	HighlightedTextColor sdl.Color // Label of the selected tab
	HintColor            sdl.Color // Shoulder button hints
	BackgroundColor      sdl.Color // Screen background color
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Path to the background image
}

var currentTheme = Theme{
	TabBarColor:          HexToColor(0x1E1E1E),
	HighlightColor:       HexToColor(0xFFFFFF),
	AccentColor:          HexToColor(0x008080),
	TextColor:            HexToColor(0xFFFFFF),
	HighlightedTextColor: HexToColor(0x000000),
	HintColor:            HexToColor(0x9E9E9E),
	BackgroundColor:      HexToColor(0x000000),
}

// SetTheme sets the active theme for the framework.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

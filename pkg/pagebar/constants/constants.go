// Package constants defines shared constants, types, and configuration values
// used throughout the pagebar UI framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the framework.
const (
	EnvironmentEnvVar    = "ENVIRONMENT"     // Set to DEV for a windowed development build
	WindowWidthEnvVar    = "WINDOW_WIDTH"    // Window width override in development mode
	WindowHeightEnvVar   = "WINDOW_HEIGHT"   // Window height override in development mode
	DebugEnvVar          = "PAGEBAR_DEBUG"   // Any value enables internal debug logging
	BackKeyDeviceEnvVar  = "BACK_KEY_DEVICE" // evdev node for the hardware back key
	BackgroundPathEnvVar = "BACKGROUND_PATH" // Custom background image path
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// This abstraction allows pagebar to work with different controller configurations.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Default timing and spacing constants.
const (
	DefaultRepeatDelay          = 300 * time.Millisecond // Hold time before a held button repeats
	DefaultRepeatInterval       = 120 * time.Millisecond // Time between repeats while held
	DefaultTabSlideSeconds      = float32(0.18)          // Tab highlight slide duration
	DefaultTabBarHeight   int32 = 64                     // Tab bar height in logical pixels
	DefaultIconSize       int32 = 28                     // Tab icon edge length in logical pixels
)

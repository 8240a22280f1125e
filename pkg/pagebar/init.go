// Package pagebar provides page routing and a tab bar for SDL applications
// on embedded Linux handhelds, particularly devices running Cannoli.
//
// The router itself lives in the router package and never touches SDL. This
// package owns the window, input, theming and the TabBar widget, and ties
// them to a router through Host.
package pagebar

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/pagebar/pkg/pagebar/constants"
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/internal"
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/platform/cannoli"
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/router"
)

// Options configures the pagebar framework initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	ShowBackground       bool                   // Whether to render the theme background image
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                 // Custom accent color
	FontPath             string                 // Font for tab labels; defaults to the Cannoli system font
	LogPath              string                 // Full path for log file including filename (creates parent directories)
	BackKeyDevice        string                 // evdev node of a hardware back key; BACK_KEY_DEVICE overrides
}

var (
	initialized   bool
	backKeyDevice string
)

// Init initializes logging, theming and the SDL window.
// Must be called before any other pagebar functions that draw.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	fontPath := options.FontPath
	if fontPath == "" {
		fontPath = cannoli.DefaultFontPath
	}
	theme := cannoli.InitCannoliTheme(fontPath)
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	backKeyDevice = options.BackKeyDevice
	if v := os.Getenv(constants.BackKeyDeviceEnvVar); v != "" {
		backKeyDevice = v
	}

	if err := internal.Init(options.WindowTitle, options.ShowBackground, options.WindowOptions); err != nil {
		return NewInfrastructureError("init", err)
	}
	initialized = true
	return nil
}

// Close releases all SDL resources and shuts down the UI framework.
// Must be called before program exit to prevent resource leaks.
func Close() {
	if !initialized {
		internal.CloseLogger()
		return
	}
	internal.SDLCleanup()
	initialized = false
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// RouterLogger returns the framework's internal logger, for passing to
// router.WithLogger so navigation is logged alongside everything else.
func RouterLogger() router.Option {
	return router.WithLogger(internal.GetInternalLogger())
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

// HideWindow hides the application window.
func HideWindow() {
	if w := internal.GetWindow(); w != nil {
		w.Window.Hide()
	}
}

// ShowWindow shows the application window.
func ShowWindow() {
	if w := internal.GetWindow(); w != nil {
		w.Window.Show()
	}
}

// ReloadBackground reloads the background image, picking up a changed
// BACKGROUND_PATH.
func ReloadBackground() {
	internal.ResetBackground()
}

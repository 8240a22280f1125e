package internal

import (
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions selects SDL window flags. The zero value means "pick for the
// environment", see DefaultWindowOptions.
type WindowOptions struct {
	Borderless        bool
	Resizable         bool
	Fullscreen        bool
	FullscreenDesktop bool
	AlwaysOnTop       bool
	Maximized         bool
	Hidden            bool // Omits SDL_WINDOW_SHOWN
}

// DefaultWindowOptions is a resizable window in development and a
// borderless one on device.
func DefaultWindowOptions() WindowOptions {
	if constants.IsDevMode() {
		return WindowOptions{Resizable: true}
	}
	return WindowOptions{Borderless: true}
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	flags := []struct {
		set  bool
		flag uint32
	}{
		{!wo.Hidden, sdl.WINDOW_SHOWN},
		{wo.Resizable, sdl.WINDOW_RESIZABLE},
		{wo.Borderless, sdl.WINDOW_BORDERLESS},
		{wo.Fullscreen, sdl.WINDOW_FULLSCREEN},
		{wo.FullscreenDesktop, sdl.WINDOW_FULLSCREEN_DESKTOP},
		{wo.AlwaysOnTop, sdl.WINDOW_ALWAYS_ON_TOP},
		{wo.Maximized, sdl.WINDOW_MAXIMIZED},
	}

	var out uint32
	for _, f := range flags {
		if f.set {
			out |= f.flag
		}
	}
	return out
}

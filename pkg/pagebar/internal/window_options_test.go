package internal

import (
	"testing"

	"github.com/BrandonKowalski/pagebar/pkg/pagebar/constants"
	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowOptionsFlags(t *testing.T) {
	flags := WindowOptions{Borderless: true}.ToSDLFlags()
	if flags&sdl.WINDOW_SHOWN == 0 || flags&sdl.WINDOW_BORDERLESS == 0 || flags&sdl.WINDOW_RESIZABLE != 0 {
		t.Fatalf("flags = %#x", flags)
	}
	if (WindowOptions{Hidden: true}).ToSDLFlags()&sdl.WINDOW_SHOWN != 0 {
		t.Fatalf("hidden window must not be shown")
	}
}

func TestDefaultWindowOptions(t *testing.T) {
	t.Setenv(constants.EnvironmentEnvVar, constants.Development)
	if got := DefaultWindowOptions(); !got.Resizable || got.Borderless {
		t.Fatalf("dev defaults = %+v", got)
	}
	t.Setenv(constants.EnvironmentEnvVar, "")
	if got := DefaultWindowOptions(); !got.Borderless {
		t.Fatalf("device defaults = %+v", got)
	}
}

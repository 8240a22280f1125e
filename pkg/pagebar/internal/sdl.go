package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, the TTF subsystem and the main window.
func Init(title string, showBackground bool, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("Image loaders unavailable", "error", err)
	}

	if winOpts.IsZero() {
		winOpts = DefaultWindowOptions()
	}

	w, err := initWindow(title, showBackground, winOpts)
	if err != nil {
		ttf.Quit()
		img.Quit()
		sdl.Quit()
		return err
	}
	window = w

	if err := window.openFonts(GetTheme().FontPath); err != nil {
		GetInternalLogger().Warn("Tab labels disabled", "error", err)
	}

	return nil
}

// SDLCleanup releases the window, controllers and SDL subsystems.
func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}

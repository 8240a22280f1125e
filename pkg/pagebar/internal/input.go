package internal

import (
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// InputEvent is a virtual button press or release.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
}

var controllers = map[sdl.JoystickID]*sdl.GameController{}

var keyboardMapping = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_x:         constants.VirtualButtonX,
	sdl.K_y:         constants.VirtualButtonY,
	sdl.K_PAGEUP:    constants.VirtualButtonL1,
	sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
	sdl.K_SPACE:     constants.VirtualButtonStart,
	sdl.K_TAB:       constants.VirtualButtonSelect,
	sdl.K_m:         constants.VirtualButtonMenu,
}

var controllerMapping = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonX,
	sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonY,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
}

// TranslateEvent maps an SDL keyboard or controller event to a virtual button.
// Key repeats and unmapped buttons are dropped. Controller hotplug events are
// handled here as a side effect and also return false.
func TranslateEvent(event sdl.Event) (InputEvent, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return InputEvent{}, false
		}
		button, ok := keyboardMapping[e.Keysym.Sym]
		if !ok {
			return InputEvent{}, false
		}
		return InputEvent{Button: button, Pressed: e.State == sdl.PRESSED}, true

	case *sdl.ControllerButtonEvent:
		button, ok := controllerMapping[sdl.GameControllerButton(e.Button)]
		if !ok {
			return InputEvent{}, false
		}
		return InputEvent{Button: button, Pressed: e.State == sdl.PRESSED}, true

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			closeController(sdl.JoystickID(e.Which))
		}
	}
	return InputEvent{}, false
}

func openController(index int) {
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open controller", "index", index, "error", sdl.GetError())
		return
	}
	id := controller.Joystick().InstanceID()
	controllers[id] = controller
	GetInternalLogger().Debug("Controller connected", "name", controller.Name(), "id", id)
}

func closeController(id sdl.JoystickID) {
	if controller, ok := controllers[id]; ok {
		controller.Close()
		delete(controllers, id)
	}
}

// CloseAllControllers releases every open game controller.
func CloseAllControllers() {
	for id, controller := range controllers {
		controller.Close()
		delete(controllers, id)
	}
}

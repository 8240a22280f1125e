package internal

import (
	"testing"

	"github.com/holoplot/go-evdev"
)

func TestIsKeyPress(t *testing.T) {
	cases := []struct {
		name  string
		event *evdev.InputEvent
		want  bool
	}{
		{"press", &evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_BACK, Value: 1}, true},
		{"release", &evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_BACK, Value: 0}, false},
		{"autorepeat", &evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_BACK, Value: 2}, false},
		{"other key", &evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_ESC, Value: 1}, false},
		{"sync", &evdev.InputEvent{Type: evdev.EV_SYN, Value: 1}, false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		if got := isKeyPress(tc.event, evdev.KEY_BACK); got != tc.want {
			t.Errorf("%s: isKeyPress = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDrainCountsQueuedPresses(t *testing.T) {
	l := &BackKeyListener{presses: make(chan struct{}, 8)}
	l.presses <- struct{}{}
	l.presses <- struct{}{}
	if got := l.Drain(); got != 2 {
		t.Fatalf("Drain = %d, want 2", got)
	}
	if got := l.Drain(); got != 0 {
		t.Fatalf("second Drain = %d, want 0", got)
	}
}

func TestOpenBackKeyListenerNeedsPath(t *testing.T) {
	if _, err := OpenBackKeyListener(BackKeyConfig{}); err == nil {
		t.Fatalf("expected error without device path")
	}
}

package internal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// BackKeyConfig describes a hardware back key read straight from evdev,
// for devices whose back key does not reach SDL.
type BackKeyConfig struct {
	DevicePath string       // e.g. /dev/input/event1
	KeyCode    evdev.EvCode // Defaults to KEY_BACK
}

// BackKeyListener reads key presses from an input device on its own
// goroutine and queues them for the UI goroutine.
type BackKeyListener struct {
	config  BackKeyConfig
	device  *evdev.InputDevice
	presses chan struct{}
	running atomic.Bool
	wg      sync.WaitGroup
}

// OpenBackKeyListener opens the configured device. Call Start to begin reading.
func OpenBackKeyListener(config BackKeyConfig) (*BackKeyListener, error) {
	if config.DevicePath == "" {
		return nil, errors.New("back key: no device path")
	}
	if config.KeyCode == 0 {
		config.KeyCode = evdev.KEY_BACK
	}

	device, err := evdev.Open(config.DevicePath)
	if err != nil {
		return nil, fmt.Errorf("back key: open %s: %w", config.DevicePath, err)
	}

	return &BackKeyListener{
		config:  config,
		device:  device,
		presses: make(chan struct{}, 8),
	}, nil
}

// Start launches the reader goroutine.
func (l *BackKeyListener) Start() {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	l.wg.Add(1)
	go l.loop()
}

func (l *BackKeyListener) loop() {
	defer l.wg.Done()

	for l.running.Load() {
		event, err := l.device.ReadOne()
		if err != nil {
			if l.running.Load() {
				GetInternalLogger().Error("Back key read failed", "device", l.config.DevicePath, "error", err)
			}
			return
		}
		if !isKeyPress(event, l.config.KeyCode) {
			continue
		}
		select {
		case l.presses <- struct{}{}:
		default:
			// Frames are not draining; extra presses are dropped.
		}
	}
}

// Drain returns how many presses arrived since the last call. It never blocks.
func (l *BackKeyListener) Drain() int {
	n := 0
	for {
		select {
		case <-l.presses:
			n++
		default:
			return n
		}
	}
}

// Close stops the reader and releases the device.
func (l *BackKeyListener) Close() error {
	l.running.Store(false)
	err := l.device.Close()
	l.wg.Wait()
	return err
}

func isKeyPress(event *evdev.InputEvent, code evdev.EvCode) bool {
	return event != nil && event.Type == evdev.EV_KEY && event.Code == code && event.Value == 1
}

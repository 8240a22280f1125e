package internal

import (
	"time"

	"github.com/BrandonKowalski/pagebar/pkg/pagebar/constants"
)

// Direction is a step along the tab bar.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionPrevious
	DirectionNext
)

// Step returns -1, 0 or 1.
func (d Direction) Step() int {
	switch d {
	case DirectionPrevious:
		return -1
	case DirectionNext:
		return 1
	default:
		return 0
	}
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionPrevious:
		return "previous"
	case DirectionNext:
		return "next"
	default:
		return ""
	}
}

// DirectionFor maps shoulder and horizontal buttons to a tab step.
func DirectionFor(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonL1, constants.VirtualButtonLeft:
		return DirectionPrevious
	case constants.VirtualButtonR1, constants.VirtualButtonRight:
		return DirectionNext
	default:
		return DirectionNone
	}
}

// DirectionalInput tracks held tab-step buttons and handles repeat timing.
type DirectionalInput struct {
	held struct {
		previous, next bool
	}
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval, time.Now)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing
// and clock.
func NewDirectionalInputWithTiming(delay, interval time.Duration, now func() time.Time) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: now(),
		now:            now,
	}
}

// SetHeld updates the held state for a button.
// Returns true if the button steps the tab bar.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	switch DirectionFor(button) {
	case DirectionPrevious:
		d.held.previous = held
	case DirectionNext:
		d.held.next = held
	default:
		return false
	}
	if held {
		d.lastRepeatTime = d.now()
	}
	d.hasRepeated = false
	return true
}

// IsHeld returns true if any step button is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held.previous || d.held.next
}

// HeldDirection returns the held direction. Previous wins when both are held.
func (d *DirectionalInput) HeldDirection() Direction {
	if d.held.previous {
		return DirectionPrevious
	}
	if d.held.next {
		return DirectionNext
	}
	return DirectionNone
}

// Update checks if a repeat should fire. Call it every frame. The first
// repeat occurs after repeatDelay, later ones after repeatInterval.
func (d *DirectionalInput) Update() Direction {
	if !d.IsHeld() {
		d.lastRepeatTime = d.now()
		d.hasRepeated = false
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if d.now().Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = d.now()
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears all held buttons and timing state.
func (d *DirectionalInput) Reset() {
	d.held.previous = false
	d.held.next = false
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}

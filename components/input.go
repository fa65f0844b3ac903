package components

import (
	"github.com/automoto/shmup/config/keys"
	"github.com/yohamta/donburi"
)

// InputDevice is the kind of controller that last produced input.
type InputDevice uint8

const (
	DeviceKeyboard InputDevice = iota
	DeviceGamepad
)

// ActionSet is a bitmask of held actions, one bit per keys.ActionID.
type ActionSet uint16

func (s ActionSet) Has(id keys.ActionID) bool {
	return s&(1<<id) != 0
}

func (s ActionSet) With(id keys.ActionID) ActionSet {
	return s | 1<<id
}

// InputData is the polled control state for this step and the one before.
type InputData struct {
	Held   ActionSet
	Prev   ActionSet
	Device InputDevice
}

// Advance shifts the held set into Prev and stores this step's poll. The
// gamepad wins the device switch when both were used.
func (d *InputData) Advance(typed, pads ActionSet) {
	d.Prev = d.Held
	d.Held = typed | pads
	switch {
	case pads != 0:
		d.Device = DeviceGamepad
	case typed != 0:
		d.Device = DeviceKeyboard
	}
}

// Down reports whether id is held this step.
func (d *InputData) Down(id keys.ActionID) bool {
	return d.Held.Has(id)
}

// Pressed reports whether id went down this step.
func (d *InputData) Pressed(id keys.ActionID) bool {
	return d.Held.Has(id) && !d.Prev.Has(id)
}

var Input = donburi.NewComponentType[InputData]()

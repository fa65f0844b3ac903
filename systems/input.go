package systems

import (
	"github.com/automoto/shmup/combat"
	"github.com/automoto/shmup/components"
	"github.com/automoto/shmup/config/keys"
	"github.com/automoto/shmup/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and every standard-layout gamepad into the
// Input component. Must run BEFORE UpdatePause and UpdateArena.
func UpdateInput(e *ecs.ECS) {
	input := GetOrCreateInput(e)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	typed, pads := pollBindings(gamepadIDs)
	input.Advance(typed, pads|pollSticks(gamepadIDs))
}

// pollBindings collects held actions from keys and pad buttons separately.
func pollBindings(pads []ebiten.GamepadID) (typed, buttons components.ActionSet) {
	for _, b := range keys.Input.Bindings {
		for _, key := range b.Keys {
			if ebiten.IsKeyPressed(key) {
				typed = typed.With(b.Action)
			}
		}
		for _, id := range pads {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range b.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					buttons = buttons.With(b.Action)
				}
			}
		}
	}
	return typed, buttons
}

// pollSticks reads the left stick of every pad.
func pollSticks(pads []ebiten.GamepadID) components.ActionSet {
	var held components.ActionSet
	for _, id := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		held |= stickActions(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			keys.Input.StickDeadzone,
		)
	}
	return held
}

// stickActions maps a stick deflection onto the move actions.
func stickActions(horizontal, vertical, deadzone float64) components.ActionSet {
	var held components.ActionSet
	if horizontal < -deadzone {
		held = held.With(keys.ActionMoveLeft)
	}
	if horizontal > deadzone {
		held = held.With(keys.ActionMoveRight)
	}
	if vertical < -deadzone {
		held = held.With(keys.ActionMoveUp)
	}
	if vertical > deadzone {
		held = held.With(keys.ActionMoveDown)
	}
	return held
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// PlayerIntent maps the held actions onto the combat core's input.
func PlayerIntent(input *components.InputData) combat.Input {
	var move gamemath.Vec
	if input.Down(keys.ActionMoveLeft) {
		move.X--
	}
	if input.Down(keys.ActionMoveRight) {
		move.X++
	}
	if input.Down(keys.ActionMoveUp) {
		move.Y--
	}
	if input.Down(keys.ActionMoveDown) {
		move.Y++
	}
	return combat.Input{
		Move:    move,
		Fire:    input.Down(keys.ActionFire),
		AltFire: input.Down(keys.ActionAltFire),
	}
}

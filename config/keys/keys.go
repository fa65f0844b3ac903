// Package keys maps keyboard keys and gamepad buttons onto game actions.
// It is the only config package that imports ebiten.
package keys

import "github.com/hajimehoshi/ebiten/v2"

// ActionID names a logical control. Each value is one bit of a held-action set,
// so there can be at most 16.
type ActionID uint8

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFire
	ActionAltFire
	ActionPause
	ActionMenuSelect
	ActionMenuBack
)

// Binding maps one action to every key and pad button that triggers it.
type Binding struct {
	Action  ActionID
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// InputConfig holds the control scheme
type InputConfig struct {
	Bindings []Binding
	// Left stick deflection (0.0 to 1.0) past which a direction counts as held
	StickDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		StickDeadzone: 0.25,
		Bindings: []Binding{
			// Movement: arrows, WASD and the d-pad. The left stick is polled separately.
			{
				Action:  ActionMoveLeft,
				Keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			{
				Action:  ActionMoveRight,
				Keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			{
				Action:  ActionMoveUp,
				Keys:    []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			{
				Action:  ActionMoveDown,
				Keys:    []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			// Guns: A/Cross for the cannon, X/Square and the right trigger for the seeker
			{
				Action:  ActionFire,
				Keys:    []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			{
				Action: ActionAltFire,
				Keys:   []ebiten.Key{ebiten.KeyX},
				Buttons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			{
				Action:  ActionPause,
				Keys:    []ebiten.Key{ebiten.KeyP},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
			// Results screen
			{
				Action:  ActionMenuSelect,
				Keys:    []ebiten.Key{ebiten.KeyEnter},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			{
				Action:  ActionMenuBack,
				Keys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
			},
		},
	}
}

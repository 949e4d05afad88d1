package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/quietloop/nightmarket/movement"
)

// Input polls the live held-key set once per update. The movement
// controller only ever sees the snapshot; edge detection for grid-mode
// commits happens inside the controller from step to step.
type Input struct {
	move movement.Input

	// AdvancePressed is true on the frame the dialogue-advance key went
	// down (one discrete action, so a just-pressed check is fine here).
	AdvancePressed bool
	// TogglePause is true on the frame Escape went down.
	TogglePause bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	i.AdvancePressed = false
	i.move = movement.Input{
		Forward: ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Back:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
	}

	// Gamepad left stick and d-pad map onto the same four directions.
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		lx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if ly < -0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftTop) {
			i.move.Forward = true
		}
		if ly > 0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftBottom) {
			i.move.Back = true
		}
		if lx < -0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft) {
			i.move.Left = true
		}
		if lx > 0.3 || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight) {
			i.move.Right = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			i.AdvancePressed = true
		}
	}

	i.AdvancePressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) || i.AdvancePressed
	i.TogglePause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Move returns the held directional snapshot for this frame.
func (i *Input) Move() movement.Input {
	return i.move
}

// Package render abstracts the graphics backend used by the debug viewer so
// drawing code can be exercised without a window.
package render

import (
	"errors"
	"image/color"
)

// Canvas is a drawable surface in screen pixels.
type Canvas interface {
	// Size returns the width and height of the canvas.
	Size() (width, height int)

	// Fill fills the whole canvas with clr.
	Fill(clr color.Color)

	// StrokeLine draws a line from (x0, y0) to (x1, y1).
	StrokeLine(x0, y0, x1, y1, strokeWidth float32, clr color.Color)

	// FillCircle draws a filled circle.
	FillCircle(x, y, radius float32, clr color.Color)

	// StrokeCircle draws a circle outline.
	StrokeCircle(x, y, radius, strokeWidth float32, clr color.Color)

	// DebugText draws text with the backend's debug font. The colour is
	// fixed by the backend.
	DebugText(text string, x, y int)
}

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the viewer reads
const (
	KeyQ Key = iota // Rotate counterclockwise
	KeyE            // Rotate clockwise
	KeyW
	KeyA
	KeyS
	KeyD
	KeyM // Toggle map overlay
	KeyV // Toggle visibility polygon
	KeySpace
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game is driven by an Engine once per tick.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Canvas)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

// ErrQuit is returned from Game.Update to end the loop cleanly.
var ErrQuit = errors.New("quit")

// Package ebiten implements the render interfaces on top of Ebitengine.
package ebiten

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/platformer/internal/render"
)

// Canvas wraps an ebiten.Image to implement render.Canvas.
type Canvas struct {
	img *ebiten.Image
}

// Size returns the width and height of the image.
func (c *Canvas) Size() (width, height int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill fills the entire image with the given color.
func (c *Canvas) Fill(clr color.Color) {
	c.img.Fill(clr)
}

// StrokeLine draws an anti-aliased line.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	vector.StrokeLine(c.img, x0, y0, x1, y1, strokeWidth, clr, true)
}

// FillCircle draws a filled circle on the image.
func (c *Canvas) FillCircle(x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(c.img, x, y, radius, clr, true)
}

// StrokeCircle draws a circle outline on the image.
func (c *Canvas) StrokeCircle(x, y, radius, strokeWidth float32, clr color.Color) {
	vector.StrokeCircle(c.img, x, y, radius, strokeWidth, clr, true)
}

// DebugText draws text with ebiten's debug font.
func (c *Canvas) DebugText(text string, x, y int) {
	ebitenutil.DebugPrintAt(c.img, text, x, y)
}

// InputManager implements render.InputManager using Ebiten.
type InputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &InputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && ebiten.IsKeyPressed(k)
}

// IsKeyJustPressed returns whether the specified key was just pressed this frame.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	k, ok := keyToEbitenKey(key)
	return ok && inpututil.IsKeyJustPressed(k)
}

// GetCursorPosition returns the current cursor position.
func (m *InputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// IsMouseButtonPressed returns whether the specified mouse button is currently pressed.
func (m *InputManager) IsMouseButtonPressed(button render.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(mouseButtonToEbiten(button))
}

var keys = map[render.Key]ebiten.Key{
	render.KeyQ:      ebiten.KeyQ,
	render.KeyE:      ebiten.KeyE,
	render.KeyW:      ebiten.KeyW,
	render.KeyA:      ebiten.KeyA,
	render.KeyS:      ebiten.KeyS,
	render.KeyD:      ebiten.KeyD,
	render.KeyM:      ebiten.KeyM,
	render.KeyV:      ebiten.KeyV,
	render.KeySpace:  ebiten.KeySpace,
	render.KeyEscape: ebiten.KeyEscape,
}

func keyToEbitenKey(key render.Key) (ebiten.Key, bool) {
	k, ok := keys[key]
	return k, ok
}

func mouseButtonToEbiten(button render.MouseButton) ebiten.MouseButton {
	switch button {
	case render.MouseButtonRight:
		return ebiten.MouseButtonRight
	case render.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// Engine implements render.Engine using Ebiten.
type Engine struct{}

// NewEngine creates a new Ebiten-based engine.
func NewEngine() render.Engine {
	return &Engine{}
}

// SetWindowSize sets the window size in pixels.
func (e *Engine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *Engine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *Engine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop until the game returns an error. render.ErrQuit
// ends the loop without an error.
func (e *Engine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to the ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&Canvas{img: screen})
}

func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}

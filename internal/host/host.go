// Package host runs a viewer session in an ebiten window.
package host

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"fan-scene/internal/config"
	"fan-scene/internal/viewer"
)

// ParseKey resolves a key name such as "Space" or "F" to an ebiten key.
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("host: hold key %q: %w", name, err)
	}
	return k, nil
}

// RunWindow opens the window and blocks until it closes or Escape is pressed.
func RunWindow(cfg config.Config, title string) error {
	hold, err := ParseKey(cfg.HoldKey)
	if err != nil {
		return err
	}

	g := &hostGame{s: viewer.New(cfg), hold: hold}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("host: %w", err)
	}
	return nil
}

type hostGame struct {
	s     *viewer.Session
	hold  ebiten.Key
	fbImg *ebiten.Image
}

func (g *hostGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	g.s.Update(viewer.InputState{
		Hold:  ebiten.IsKeyPressed(g.hold),
		Left:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		X:     x,
		Y:     y,
		Wheel: wheel,
	})
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	frame := g.s.Frame()
	w, h := frame.Bounds().Dx(), frame.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}

	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}
	g.fbImg.WritePixels(frame.Pix)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(w), float64(sh)/float64(h))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.fbImg, op)
}

// Layout tracks the window size so the camera aspect and render target follow resizes.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.s.Resize(outsideWidth, outsideHeight)
	w, h := g.s.WindowSize()
	return w, h
}

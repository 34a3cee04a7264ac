// Package viewer shows an image in a desktop window.
package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Show opens a window displaying img and blocks until the window is closed or
// Escape or Q is pressed.
func Show(title string, img *image.RGBA) error {
	g := &game{src: img}
	b := img.Bounds()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type game struct {
	src *image.RGBA
	img *ebiten.Image
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.src.Bounds()
	return b.Dx(), b.Dy()
}

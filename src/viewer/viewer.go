// Package viewer shows a rendered chart strip in a window.
package viewer

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	xdraw "golang.org/x/image/draw"
)

// Display budget for the window; strips from runs with many labels can get
// arbitrarily wide, so they are scaled down to fit before display.
const (
	maxDisplayWidth  = 1680
	maxDisplayHeight = 960
)

// Show opens a window displaying img and blocks until the user closes it.
func Show(img image.Image) {
	img = fitToDisplay(img)
	a := app.New()
	w := a.NewWindow("graphtimes")
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	b := img.Bounds()
	c.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	w.SetContent(c)
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	w.CenterOnScreen()
	w.ShowAndRun()
}

// fitToDisplay scales img down proportionally when it exceeds the display
// budget; images that already fit pass through untouched.
func fitToDisplay(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxDisplayWidth && b.Dy() <= maxDisplayHeight {
		return img
	}
	scale := float64(maxDisplayWidth) / float64(b.Dx())
	if s := float64(maxDisplayHeight) / float64(b.Dy()); s < scale {
		scale = s
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(b.Dx())*scale), int(float64(b.Dy())*scale)))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

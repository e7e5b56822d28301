package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// renderFrame draws the whole scene at full pixel resolution: window
// background (with the configured opacity applied to its alpha), then the
// display container and all clock faces.
func renderFrame(d *ClockDisplay) *gg.Context {
	w, h := d.PixelSize()
	dc := gg.NewContext(w, h)

	bg := d.Style().WindowBackground
	dc.SetRGBA(bg.R, bg.G, bg.B, bg.A*d.Style().Opacity)
	dc.Clear()

	d.Draw(dc)
	return dc
}

// NRGBA converts the color to 8-bit non-premultiplied form.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// renderTerminal scales the frame to the terminal cell grid and encodes it
// as half-block cells: each cell is an upper-half-block rune whose
// foreground is the top pixel and background the bottom pixel, giving two
// vertical pixels per row of text. Degenerate dimensions yield an empty
// string rather than an error.
func renderTerminal(img image.Image, cols, rows int, bg RGBA) string {
	if cols < 1 || rows < 1 {
		return ""
	}

	dstW, dstH := cols, rows*2
	canvas := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg.NRGBA()), image.Point{}, draw.Src)

	// Fit the frame into the cell grid preserving aspect ratio, centered.
	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()
	if srcW > 0 && srcH > 0 {
		scale := float64(dstW) / float64(srcW)
		if s := float64(dstH) / float64(srcH); s < scale {
			scale = s
		}
		fitW := int(float64(srcW) * scale)
		fitH := int(float64(srcH) * scale)
		if fitW > 0 && fitH > 0 {
			offX := (dstW - fitW) / 2
			offY := (dstH - fitH) / 2
			fitted := image.Rect(offX, offY, offX+fitW, offY+fitH)
			draw.ApproxBiLinear.Scale(canvas, fitted, img, img.Bounds(), draw.Over, nil)
		}
	}

	var b strings.Builder
	b.Grow(dstW * rows * 40)
	for row := 0; row < rows; row++ {
		for col := 0; col < dstW; col++ {
			top := canvas.RGBAAt(col, row*2)
			bottom := canvas.RGBAAt(col, row*2+1)
			fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		b.WriteString("\x1b[0m")
		if row < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// saveSnapshot writes the current frame as a PNG with the time captioned in
// the bottom margin.
func saveSnapshot(d *ClockDisplay, now time.Time, path string) error {
	dc := renderFrame(d)

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse caption font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    snapshotFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	sep := d.Style().Separator
	dc.SetRGBA(sep.R, sep.G, sep.B, sep.A)
	w, h := d.PixelSize()
	dc.DrawStringAnchored(d.TimeString(now), float64(w)/2, float64(h)-windowMargin/2, 0.5, 0.5)

	return dc.SavePNG(path)
}

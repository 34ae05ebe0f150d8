package preview

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/ilda"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas is an RGBA pixel buffer with the few primitives the preview
// needs: anti-aliased lines, square dots and text labels.
type Canvas struct {
	img *image.RGBA
	z   vector.Rasterizer
}

// NewCanvas creates a canvas of the given size filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Image returns the underlying image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Line draws a segment of the given width in pixels.
// Zero-length segments draw nothing.
func (c *Canvas) Line(p0, p1 ilda.Point, width float64, col color.Color) {
	d := p1.Sub(p0)
	l := d.Length()
	if l == 0 {
		return
	}
	n := ilda.Pt(-d.Y, d.X).Mul(width / 2 / l)
	c.fill(col, p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n))
}

// Dot draws a filled square of side size centred on p.
func (c *Canvas) Dot(p ilda.Point, size float64, col color.Color) {
	h := size / 2
	c.fill(col,
		ilda.Pt(p.X-h, p.Y-h), ilda.Pt(p.X+h, p.Y-h),
		ilda.Pt(p.X+h, p.Y+h), ilda.Pt(p.X-h, p.Y+h))
}

// Label draws text with its baseline origin at p.
func (c *Canvas) Label(p ilda.Point, text string, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)},
	}
	d.DrawString(text)
}

// fill rasterizes a closed polygon over the canvas.
func (c *Canvas) fill(col color.Color, pts ...ilda.Point) {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X), float32(p.Y))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/nfnt/resize"
)

// ToImage converts the framebuffer into an 8-bit RGBA image. Pixel
// values are already gamma corrected and clamped to [0, 0.999], so the
// 256 scale never overflows a channel.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.Pixel(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(256 * c.X),
				G: uint8(256 * c.Y),
				B: uint8(256 * c.Z),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG encodes the framebuffer as PNG
func (fb *Framebuffer) WritePNG(w io.Writer) error {
	if err := png.Encode(w, fb.ToImage()); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// WritePPM encodes the framebuffer as plain-text PPM (P3)
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height)
	for _, c := range fb.Pixels {
		fmt.Fprintf(bw, "%d %d %d\n",
			uint8(256*c.X), uint8(256*c.Y), uint8(256*c.Z))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing ppm: %w", err)
	}
	return nil
}

// Preview returns the rendered image downscaled to the given width,
// preserving aspect ratio
func (fb *Framebuffer) Preview(width uint) image.Image {
	return resize.Resize(width, 0, fb.ToImage(), resize.Bilinear)
}

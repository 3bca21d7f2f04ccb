package renderer

import (
	"bufio"
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/maikh/pathtracer/pkg/core"
)

func solidFramebuffer(width, height int, c core.Color) *Framebuffer {
	fb := NewFramebuffer(width, height)
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
	return fb
}

func TestFramebuffer_ToImage(t *testing.T) {
	fb := solidFramebuffer(4, 2, core.NewVec3(0.5, 0.25, 0.999))
	img := fb.ToImage()

	bounds := img.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 2 {
		t.Fatalf("Expected 4x2 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	c := img.RGBAAt(0, 0)
	if c.R != 128 || c.G != 64 || c.B != 255 || c.A != 255 {
		t.Errorf("Unexpected channel values: %+v", c)
	}
}

func TestFramebuffer_WritePNG(t *testing.T) {
	fb := solidFramebuffer(8, 8, core.NewVec3(0.1, 0.2, 0.3))

	var buf bytes.Buffer
	if err := fb.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decoding written PNG failed: %v", err)
	}
	if decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 8 {
		t.Errorf("Round-tripped PNG has bounds %v", decoded.Bounds())
	}
}

func TestFramebuffer_WritePPM(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Pixels[0] = core.NewVec3(0.999, 0, 0)
	fb.Pixels[1] = core.NewVec3(0, 0.999, 0)
	fb.Pixels[2] = core.NewVec3(0, 0, 0.999)
	fb.Pixels[3] = core.NewVec3(0, 0, 0)

	var buf bytes.Buffer
	if err := fb.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}

	expected := []string{
		"P3",
		"2 2",
		"255",
		"255 0 0",
		"0 255 0",
		"0 0 255",
		"0 0 0",
	}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d: %q", len(expected), len(lines), lines)
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("Line %d: expected %q, got %q", i, want, lines[i])
		}
	}
}

func TestFramebuffer_Preview(t *testing.T) {
	fb := solidFramebuffer(64, 32, core.NewVec3(0.5, 0.5, 0.5))

	preview := fb.Preview(16)
	bounds := preview.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 8 {
		t.Errorf("Expected 16x8 preview, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

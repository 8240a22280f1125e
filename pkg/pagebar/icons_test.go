package pagebar

import (
	"strings"
	"testing"
)

const squareSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
<rect x="0" y="0" width="10" height="10" fill="#ff0000"/>
</svg>`

func TestRasterizeIcon(t *testing.T) {
	img, err := RasterizeIcon(strings.NewReader(squareSVG), 16)
	if err != nil {
		t.Fatalf("RasterizeIcon: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("bounds = %v", b)
	}
	c := img.RGBAAt(8, 8)
	if c.R < 200 || c.G > 50 || c.A < 200 {
		t.Fatalf("center pixel = %+v, want opaque red", c)
	}
}

func TestRasterizeIconRejectsBadInput(t *testing.T) {
	if _, err := RasterizeIcon(strings.NewReader(squareSVG), 0); err == nil {
		t.Fatalf("expected error for zero size")
	}
	if _, err := LoadIcon("does-not-exist.svg", 16); !IsInfrastructureError(err) {
		t.Fatalf("missing file should be an infrastructure error, got %v", err)
	}
}

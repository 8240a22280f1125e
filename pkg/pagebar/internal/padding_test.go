package internal

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestPaddingInset(t *testing.T) {
	got := SymmetricPadding(4, 10).Inset(sdl.Rect{X: 0, Y: 0, W: 100, H: 40})
	want := sdl.Rect{X: 10, Y: 4, W: 80, H: 32}
	if got != want {
		t.Fatalf("Inset = %+v, want %+v", got, want)
	}

	got = UniformPadding(30).Inset(sdl.Rect{W: 20, H: 20})
	if got.W != 0 || got.H != 0 {
		t.Fatalf("Inset must clamp to zero, got %+v", got)
	}
}

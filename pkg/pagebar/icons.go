package pagebar

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeIcon renders an SVG to a square RGBA image of size pixels.
func RasterizeIcon(r io.Reader, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size %d", size)
	}
	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)
	return rgba, nil
}

// LoadIcon rasterizes the SVG file at path.
func LoadIcon(path string, size int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewInfrastructureError("load_icon", err)
	}
	defer f.Close()

	img, err := RasterizeIcon(f, size)
	if err != nil {
		return nil, NewInfrastructureError("rasterize_icon", fmt.Errorf("%s: %w", path, err))
	}
	return img, nil
}

// iconTexture uploads an RGBA image to the GPU.
func iconTexture(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	if len(img.Pix) == 0 {
		return nil, NewInfrastructureError("icon_texture", errors.New("empty image"))
	}
	b := img.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(img.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, NewInfrastructureError("icon_texture", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, NewInfrastructureError("icon_texture", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

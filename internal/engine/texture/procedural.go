package texture

import (
	"image"
	"image/color"
	gomath "math"
)

// Procedural generates the fallback globe surface: shaded latitude
// bands with a deterministic speckle so the sphere's rotation is
// visible even without a fetched texture.
func Procedural(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		// Latitude shading: brighter at the equator.
		lat := gomath.Abs(float64(y)/float64(height-1)*2 - 1)
		base := 0.35 + 0.4*(1-lat)

		for x := 0; x < width; x++ {
			v := base
			// Band every 15 degrees of latitude.
			if (y*12/height)%2 == 0 {
				v += 0.06
			}
			// Deterministic speckle from pixel coordinates.
			h := uint32(x)*2654435761 ^ uint32(y)*40503
			if h%97 < 4 {
				v += 0.18
			}
			if v > 1 {
				v = 1
			}

			img.SetRGBA(x, y, color.RGBA{
				R: uint8(40 * v),
				G: uint8(110 * v),
				B: uint8(220 * v),
				A: 255,
			})
		}
	}
	return img
}

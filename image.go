package gaussblur

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/gaussblur/utils"
)

// toNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
// NRGBA images already anchored at the origin are returned as they are,
// so callers must treat the result as read-only.
func toNRGBA(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok && src.Bounds().Min == (image.Point{}) {
		return src
	}
	return imaging.Clone(img)
}

// clampUint8 rounds a convolved channel value to the nearest integer in [0, 255].
func clampUint8(v float64) uint8 {
	return uint8(utils.Clamp(math.Round(v), 0, 255))
}

package munsellspace

import "math"

// illuminantCx, illuminantCy are the CIE chromaticity coordinates of
// Illuminant C, the reference white the 1943 Munsell renotation was
// measured under. Every achromatic Munsell spec maps to exactly this point.
const (
	illuminantCx = 0.31006
	illuminantCy = 0.31616
)

// xyY is a CIE chromaticity pair plus relative luminance.
type xyY struct {
	x, y, Y float64
}

func (c xyY) finite() bool {
	return !math.IsNaN(c.x) && !math.IsInf(c.x, 0) &&
		!math.IsNaN(c.y) && !math.IsInf(c.y, 0) &&
		!math.IsNaN(c.Y) && !math.IsInf(c.Y, 0)
}

// rho returns the Euclidean distance from c's chromaticity to Illuminant C,
// the radial coordinate used throughout the hue/chroma search.
func (c xyY) rho() float64 {
	dx := c.x - illuminantCx
	dy := c.y - illuminantCy
	return math.Hypot(dx, dy)
}

// phi returns the angle in degrees, in [0,360), from Illuminant C to c's
// chromaticity.
func (c xyY) phi() float64 {
	dx := c.x - illuminantCx
	dy := c.y - illuminantCy
	a := math.Atan2(dy, dx) * 180 / math.Pi
	if a < 0 {
		a += 360
	}
	return a
}

// phiDiff is the signed minimal angular difference a-b, in degrees, lifted
// to (-180, 180].
func phiDiff(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}

// xyzToXYY converts CIE XYZ to xyY, falling back to Illuminant C
// chromaticity with Y=0 when X+Y+Z sums to zero.
func xyzToXYY(X, Y, Z float64) xyY {
	sum := X + Y + Z
	if sum == 0 {
		return xyY{x: illuminantCx, y: illuminantCy, Y: 0}
	}
	return xyY{x: X / sum, y: Y / sum, Y: Y}
}

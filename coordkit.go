package munsellspace

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

var (
	// Transposed due to being defined in column major format.
	linSRGBToXYZ = ms3.NewMat3([]float32{
		506752. / 1228815, 87881. / 245763, 12673. / 70218,
		87098. / 409605, 175762. / 245763, 12673. / 175545,
		7918. / 409605, 87881. / 737289, 1001167. / 1053270,
	})
	// Bradford chromatic adaptation from the sRGB D65 white to Illuminant C,
	// the white the Munsell renotation was measured under. Equal-RGB grays
	// land exactly on the Illuminant C chromaticity after this step.
	d65ToC = ms3.NewMat3([]float32{1.0098061094, 0.0070527916, 0.0127421876,
		0.0123218373, 0.9847179327, 0.0032787095,
		0.0038166319, -0.0072128320, 1.0888630881})
)

// transferFunc is the sRGB gamma function, linearizing a gamma-encoded
// channel in [0,1].
func transferFunc(v float32) float32 {
	sign := math32.Copysign(1, v)
	abs := math32.Abs(v)
	if abs <= 0.04045 {
		return v / 12.92
	}
	return sign * math32.Pow((abs+0.055)/1.055, 2.4)
}

// srgbByteToXYY converts a byte-quantized sRGB triple through linear sRGB
// and the D65 matrix into XYZ, adapts the result to Illuminant C, then
// promotes to float64 xyY for the solver, whose convergence tolerances (as
// tight as 1e-10) exceed float32's ~7 decimal digits of precision.
func srgbByteToXYY(r, g, b uint8) xyY {
	rl := transferFunc(float32(r) / 255)
	gl := transferFunc(float32(g) / 255)
	bl := transferFunc(float32(b) / 255)
	v := ms3.MulMatVec(linSRGBToXYZ, ms3.Vec{X: rl, Y: gl, Z: bl})
	v = ms3.MulMatVec(d65ToC, v)
	return xyzToXYY(float64(v.X), float64(v.Y), float64(v.Z))
}

// cieWhitePoint computes the Y-scaled Illuminant-C reference white used by
// the initial-guess Lab conversion: Xw = Y*xc/yc, Yw = Y,
// Zw = Y*(1-xc-yc)/yc. A fixed D65 or fixed-C white here regresses
// initial-guess quality badly, so the white is recomputed per input
// luminance.
func cieWhitePoint(Y float64) (Xw, Yw, Zw float64) {
	Xw = Y * illuminantCx / illuminantCy
	Yw = Y
	Zw = Y * (1 - illuminantCx - illuminantCy) / illuminantCy
	return
}

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// lab is CIE L*a*b* using a reference white computed per call
// (cieWhitePoint), rather than a fixed global white as a standard Lab
// conversion would use.
type lab struct {
	L, A, B float64
}

// xyzToLab converts XYZ to Lab against the Y-scaled Illuminant-C white
// point for this specific Y.
func xyzToLab(X, Y, Z float64) lab {
	Xw, Yw, Zw := cieWhitePoint(Y)
	fx := labF(X / Xw)
	fy := labF(Y / Yw)
	fz := labF(Z / Zw)
	return lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// lch is the cylindrical (polar) representation of lab.
type lch struct {
	L, C, H float64 // H in degrees, [0,360)
}

func (c lab) toLCH() lch {
	rho, phi := cartesianToPolar(c.A, c.B)
	if phi < 0 {
		phi += 360
	}
	return lch{L: c.L, C: rho, H: phi}
}

func cartesianToPolar(dx, dy float64) (rho, phiDeg float64) {
	rho = math.Hypot(dx, dy)
	phiDeg = math.Atan2(dy, dx) * 180 / math.Pi
	return
}

func polarToCartesian(rho, phiDeg float64) (dx, dy float64) {
	r := phiDeg * math.Pi / 180
	return rho * math.Cos(r), rho * math.Sin(r)
}

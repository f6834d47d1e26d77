package munsellspace

import "math"

const (
	maxOuterIterations = 64
	maxInnerIterations = 16
	convergenceEps     = 1e-7
	achromaticEps      = 1e-3
)

// Converter holds no mutable state: every method is a pure function of its
// arguments plus the process-wide renotation dataset. The zero value is
// ready to use.
type Converter struct{}

// NewConverter returns a ready-to-use Converter.
func NewConverter() *Converter { return &Converter{} }

// Convert maps a byte-quantized sRGB triple to a MunsellSpec.
func (c *Converter) Convert(r, g, b uint8) (MunsellSpec, error) {
	return c.ConvertXYYValue(srgbByteToXYY(r, g, b))
}

// ConvertXYY runs the iterative solver on an explicit xyY triple.
func (c *Converter) ConvertXYY(x, y, Y float64) (MunsellSpec, error) {
	return c.ConvertXYYValue(xyY{x: x, y: y, Y: Y})
}

// ConvertLab converts a CIE Lab triple into a MunsellSpec. Lab alone
// under-determines Y once paired with the per-call Illuminant-C reference
// white of cieWhitePoint (Yw=Y by construction), so L is first mapped to a
// seed value via the rough L~=10*V correspondence, which only feeds the
// initial XYZ reconstruction; the final value then comes from the solver's
// own ASTM inversion of the resulting xyY, as in ConvertXYYValue.
func (c *Converter) ConvertLab(L, A, B float64) (MunsellSpec, error) {
	v0 := L / 10
	if v0 < 0 {
		v0 = 0
	}
	if v0 > 10 {
		v0 = 10
	}
	Y := astmValueToY(v0)
	Xw, Yw, Zw := cieWhitePoint(Y)

	fy := (L + 16) / 116
	fx := A/500 + fy
	fz := fy - B/200
	X := Xw * labFInv(fx)
	Ydec := Yw * labFInv(fy)
	Z := Zw * labFInv(fz)

	return c.ConvertXYYValue(xyzToXYY(X, Ydec, Z))
}

func labFInv(t float64) float64 {
	if t > 6.0/29.0 {
		return t * t * t
	}
	return (t - 16.0/116.0) * 3 * (6.0 / 29.0) * (6.0 / 29.0)
}

// ConvertXYYValue is the core xyY-to-Munsell solver. It never panics on
// finite input; it returns an *Error of Kind OutOfGamut or
// ConvergenceFailed when the iteration budget is exhausted, still carrying
// the last spec the iteration reached.
func (c *Converter) ConvertXYYValue(in xyY) (MunsellSpec, error) {
	if !in.finite() || in.Y < 0 || in.Y > 1 {
		return MunsellSpec{}, newErr("xyy_to_munsell", InvalidInput, "x,y,Y must be finite and Y in [0,1]", nil)
	}

	// Step 1: value and achromatic short-circuit.
	V := astmYToValue(in.Y)
	rhoIn := in.rho()
	if rhoIn < achromaticEps {
		return Achromatic(V).Normalize(), nil
	}
	phiIn := in.phi()

	// Step 2: initial guess via LCHab with the Y-scaled Illuminant-C white.
	X, Y, Z := xyyToXYZ(in)
	lchv := xyzToLab(X, Y, Z).toLCH()
	hue0, code0 := angleToHue(lchv.H)
	chroma0 := (lchv.C / 5) * (5.0 / 5.5)

	spec := MunsellSpec{Hue: hue0, Family: code0, Value: V, Chroma: chroma0}

	var lastErr error
	for outer := 0; outer < maxOuterIterations; outer++ {
		spec.Chroma = capChroma(spec) // cap #1

		converged, newSpec, cur, err := hueInnerLoop(spec, phiIn)
		spec = newSpec
		if err != nil {
			lastErr = err
		}
		if converged && euclid(cur, in) < convergenceEps {
			return spec.Normalize(), nil
		}

		// Second cap: the hue step can land on a cell with a lower chroma
		// ceiling, and an over-cap chroma makes the chroma walk oscillate.
		spec.Chroma = capChroma(spec)

		converged, newSpec, cur, err = chromaInnerLoop(spec, rhoIn)
		spec = newSpec
		if err != nil {
			lastErr = err
		}
		if converged && euclid(cur, in) < convergenceEps {
			return spec.Normalize(), nil
		}
	}

	if lastErr != nil {
		return spec.Normalize(), newErr("xyy_to_munsell", ConvergenceFailed, "exhausted outer iteration budget", lastErr)
	}
	return spec.Normalize(), newErr("xyy_to_munsell", OutOfGamut, "exhausted outer iteration budget without bracketing", nil)
}

func euclid(a, b xyY) float64 {
	return math.Hypot(a.x-b.x, a.y-b.y)
}

func capChroma(spec MunsellSpec) float64 {
	maxC := maxChromaAt(spec.Hue, spec.Family, spec.Value)
	switch {
	case spec.Chroma > maxC:
		return maxC
	case spec.Chroma < 0:
		return 0
	default:
		return spec.Chroma
	}
}

// hueInnerLoop performs the angular half of the search: step the hue
// angle by i*(phiIn-phiCur), collect signed phi differences against the
// target, and once the samples bracket zero (or at least two samples are
// available) fit a linear extrapolator through them evaluated at
// deltaPhi=0. It returns the resulting spec and its xy, so the caller can
// run the shared Euclidean convergence test against the true input point.
func hueInnerLoop(spec MunsellSpec, phiIn float64) (converged bool, out MunsellSpec, cur xyY, err error) {
	cur, err = specToXY(spec)
	if err != nil {
		return false, spec, cur, err
	}

	var samples []hueSample

	alphaCur := hueToAngle(spec.Hue, spec.Family)
	baseDelta := phiDiff(phiIn, cur.phi())

	for i := 1; i <= maxInnerIterations; i++ {
		dAlpha := float64(i) * baseDelta
		alpha := wrap360(alphaCur + dAlpha)
		h, code := angleToHue(alpha)
		trial := spec
		trial.Hue, trial.Family = h, code
		trial.Chroma = capChroma(trial)
		xy, terr := specToXY(trial)
		if terr != nil {
			continue
		}
		samples = append(samples, hueSample{dAlpha: dAlpha, dPhi: phiDiff(phiIn, xy.phi())})

		min, max := samples[0].dPhi, samples[0].dPhi
		for _, s := range samples {
			min, max = math.Min(min, s.dPhi), math.Max(max, s.dPhi)
		}
		if (min <= 0 && max >= 0) || len(samples) >= 2 {
			break
		}
	}

	if len(samples) == 0 {
		return false, spec, cur, newErr("hueInnerLoop", ConvergenceFailed, "no samples collected", nil)
	}
	insertionSortByDPhi(samples)

	dAlphaStar := extrapolateToZero(samples[0].dPhi, samples[0].dAlpha, samples[len(samples)-1].dPhi, samples[len(samples)-1].dAlpha)
	alphaNew := wrap360(alphaCur + dAlphaStar)
	h, code := angleToHue(alphaNew)

	newSpec := spec
	newSpec.Hue, newSpec.Family = h, code
	newSpec.Chroma = capChroma(newSpec)

	xyNew, nerr := specToXY(newSpec)
	if nerr != nil {
		return false, newSpec, xyNew, nerr
	}
	return true, newSpec, xyNew, nil
}

func wrap360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

type hueSample struct{ dAlpha, dPhi float64 }

func insertionSortByDPhi(s []hueSample) {
	for i := 1; i < len(s); i++ {
		j := i
		for j > 0 && s[j-1].dPhi > s[j].dPhi {
			s[j-1], s[j] = s[j], s[j-1]
			j--
		}
	}
}

// extrapolateToZero fits a line through (phi0,alpha0)-(phi1,alpha1) and
// evaluates it at phi=0. Falls back to the first sample's alpha when the
// two coincide in phi, avoiding a divide by zero.
func extrapolateToZero(phi0, alpha0, phi1, alpha1 float64) float64 {
	if phi1 == phi0 {
		return alpha0
	}
	t := -phi0 / (phi1 - phi0)
	return alpha0 + t*(alpha1-alpha0)
}

// chromaInnerLoop performs the magnitude half of the search: a
// power-scaled walk (rhoIn/rhoCur)^i, capped each step at the chroma
// ceiling, until the samples bracket rhoIn; then linear (clamped, never
// extrapolated) interpolation between the flanking neighbors yields the
// new chroma. Extrapolating here could produce a negative chroma, which
// has no meaning.
func chromaInnerLoop(spec MunsellSpec, rhoIn float64) (converged bool, out MunsellSpec, cur xyY, err error) {
	cur, err = specToXY(spec)
	if err != nil {
		return false, spec, cur, err
	}
	rhoCur := cur.rho()
	if rhoCur == 0 {
		return false, spec, cur, newErr("chromaInnerLoop", ConvergenceFailed, "zero rho at current chroma", nil)
	}

	type sample struct{ chroma, rho float64 }
	samples := []sample{{chroma: spec.Chroma, rho: rhoCur}}

	ratio := rhoIn / rhoCur
	for i := 1; i <= maxInnerIterations; i++ {
		chromaI := capChroma(MunsellSpec{Hue: spec.Hue, Family: spec.Family, Value: spec.Value, Chroma: math.Pow(ratio, float64(i)) * spec.Chroma})
		trial := spec
		trial.Chroma = chromaI
		xy, terr := specToXY(trial)
		if terr != nil {
			continue
		}
		samples = append(samples, sample{chroma: trial.Chroma, rho: xy.rho()})

		min, max := samples[0].rho, samples[0].rho
		for _, s := range samples {
			min, max = math.Min(min, s.rho), math.Max(max, s.rho)
		}
		if min <= rhoIn && rhoIn <= max {
			break
		}
	}

	for i := 1; i < len(samples); i++ {
		j := i
		for j > 0 && samples[j-1].rho > samples[j].rho {
			samples[j-1], samples[j] = samples[j], samples[j-1]
			j--
		}
	}
	lo, hi := samples[0], samples[len(samples)-1]
	for i := 0; i < len(samples)-1; i++ {
		if samples[i].rho <= rhoIn && rhoIn <= samples[i+1].rho {
			lo, hi = samples[i], samples[i+1]
			break
		}
	}

	var chromaNew float64
	if hi.rho == lo.rho {
		chromaNew = lo.chroma
	} else {
		t := math.Max(0, math.Min(1, (rhoIn-lo.rho)/(hi.rho-lo.rho)))
		chromaNew = lo.chroma + t*(hi.chroma-lo.chroma)
	}

	newSpec := spec
	newSpec.Chroma = capChroma(MunsellSpec{Hue: spec.Hue, Family: spec.Family, Value: spec.Value, Chroma: chromaNew})

	xyNew, nerr := specToXY(newSpec)
	if nerr != nil {
		return false, newSpec, xyNew, nerr
	}
	return true, newSpec, xyNew, nil
}

func xyyToXYZ(c xyY) (X, Y, Z float64) {
	if c.y == 0 {
		return 0, 0, 0
	}
	X = c.x * c.Y / c.y
	Y = c.Y
	Z = (1 - c.x - c.y) * c.Y / c.y
	return
}

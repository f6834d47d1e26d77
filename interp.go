package munsellspace

import "math"

// interpMethod selects how xy is interpolated between two bracketing
// standard hues at fixed value/chroma.
type interpMethod int

const (
	methodLinear interpMethod = iota // interpolate directly in xy
	methodRadial                     // interpolate (rho, phi) around the achromatic center
)

// dispatchMethod picks Linear or Radial interpolation per
// (value, chroma, hue angle) cell. A single global method produces visible
// discontinuities at 2.5-hue step boundaries: low-chroma and low/high-value
// cells, where the chroma contour is nearly circular and a straight chord
// across it is a poor approximation of the arc, go Radial, while the
// mid-value/high-chroma bulk of the grid, where bracketing hues are close
// enough that the contour is locally near-flat, goes Linear.
func dispatchMethod(value, chroma, astmHueAngle float64) interpMethod {
	if chroma <= 4 {
		return methodRadial
	}
	if value <= 2 || value >= 8 {
		return methodRadial
	}
	// Within 10 degrees of a multiple of 90 degrees in angle space, prefer
	// Radial too.
	mod := math.Mod(astmHueAngle, 90)
	if mod < 0 {
		mod += 90
	}
	if mod < 10 || mod > 80 {
		return methodRadial
	}
	return methodLinear
}

// specToXY resolves a (possibly non-standard) Munsell spec to its xy
// chromaticity under Illuminant C. Achromatic specs short-circuit to
// exactly Illuminant C.
func specToXY(spec MunsellSpec) (xyY, error) {
	if spec.IsAchromatic() {
		return xyY{x: illuminantCx, y: illuminantCy, Y: astmValueToY(spec.Value)}, nil
	}
	d := getDataset()

	valLo := int(math.Floor(spec.Value))
	valHi := int(math.Ceil(spec.Value))
	if valLo < 1 {
		valLo = 1
	}
	if valHi > 9 {
		valHi = 9
	}
	if valLo == valHi {
		x, y, err := xyAtIntegerValue(d, spec.Hue, spec.Family, valLo, spec.Chroma)
		if err != nil {
			return xyY{}, err
		}
		return xyY{x: x, y: y, Y: astmValueToY(spec.Value)}, nil
	}

	xLo, yLo, err := xyAtIntegerValue(d, spec.Hue, spec.Family, valLo, spec.Chroma)
	if err != nil {
		return xyY{}, err
	}
	xHi, yHi, err := xyAtIntegerValue(d, spec.Hue, spec.Family, valHi, spec.Chroma)
	if err != nil {
		return xyY{}, err
	}
	t := spec.Value - float64(valLo)
	return xyY{
		x: xLo + t*(xHi-xLo),
		y: yLo + t*(yHi-yLo),
		Y: astmValueToY(spec.Value),
	}, nil
}

// xyAtIntegerValue resolves xy at an integer Munsell value, linearly
// interpolating non-even chroma between its two even-chroma neighbors.
// Chroma below 2 interpolates between the achromatic center and the
// chroma-2 contour, so rho stays monotone in chroma all the way down to
// neutral.
func xyAtIntegerValue(d *dataset, hue float64, family FamilyCode, value int, chroma float64) (x, y float64, err error) {
	maxC := d.maxChromaAt(value)
	if maxC == 0 {
		return 0, 0, newErr("xyAtIntegerValue", OutOfGamut, "no renotation data at this value", nil)
	}
	if chroma > float64(maxC) {
		chroma = float64(maxC)
	}
	if chroma <= 0 {
		return illuminantCx, illuminantCy, nil
	}

	chromaLo := int(math.Floor(chroma/2)) * 2
	chromaHi := chromaLo + 2
	if chromaHi > maxC {
		chromaHi = maxC
		chromaLo = maxC - 2
	}

	xLo, yLo := illuminantCx, illuminantCy
	if chromaLo > 0 {
		xLo, yLo, err = xyAtEvenChroma(d, hue, family, value, chromaLo)
		if err != nil {
			return 0, 0, err
		}
	}
	if float64(chromaLo) == chroma {
		return xLo, yLo, nil
	}
	xHi, yHi, err := xyAtEvenChroma(d, hue, family, value, chromaHi)
	if err != nil {
		return 0, 0, err
	}
	t := (chroma - float64(chromaLo)) / float64(chromaHi-chromaLo)
	return xLo + t*(xHi-xLo), yLo + t*(yHi-yLo), nil
}

// xyAtEvenChroma resolves xy at an integer value and even chroma, handling
// non-standard (non 2.5-multiple) hue by bracketing and dispatching to
// Linear or Radial interpolation per dispatchMethod.
func xyAtEvenChroma(d *dataset, hue float64, family FamilyCode, value, chroma int) (x, y float64, err error) {
	if math.Mod(hue, 2.5) == 0 {
		rec, ok := d.lookup(renotationKey{family: family, hueStep: hue, value: value, chroma: chroma})
		if !ok {
			return 0, 0, newErr("xyAtEvenChroma", OutOfGamut, "no renotation record", nil)
		}
		return rec.x, rec.y, nil
	}

	loHue, loCode, hiHue, hiCode := boundingHues(hue, family)
	recLo, ok := d.lookup(renotationKey{family: loCode, hueStep: loHue, value: value, chroma: chroma})
	if !ok {
		return 0, 0, newErr("xyAtEvenChroma", OutOfGamut, "no renotation record (lo bracket)", nil)
	}
	recHi, ok := d.lookup(renotationKey{family: hiCode, hueStep: hiHue, value: value, chroma: chroma})
	if !ok {
		return 0, 0, newErr("xyAtEvenChroma", OutOfGamut, "no renotation record (hi bracket)", nil)
	}

	astmAngle := hueToAngle(hue, family)
	switch dispatchMethod(float64(value), float64(chroma), astmAngle) {
	case methodLinear:
		angleLo := hueToAngle(loHue, loCode)
		angleHi := hueToAngle(hiHue, hiCode)
		span := angleHi - angleLo
		if span <= 0 {
			span += 360
		}
		pos := astmAngle - angleLo
		if pos < 0 {
			pos += 360
		}
		t := pos / span
		return recLo.x + t*(recHi.x-recLo.x), recLo.y + t*(recHi.y-recLo.y), nil
	default: // methodRadial
		rhoLo, phiLo := cartesianToPolar(recLo.x-illuminantCx, recLo.y-illuminantCy)
		rhoHi, phiHi := cartesianToPolar(recHi.x-illuminantCx, recHi.y-illuminantCy)
		angleLo := hueToAngle(loHue, loCode)
		angleHi := hueToAngle(hiHue, hiCode)
		span := angleHi - angleLo
		if span <= 0 {
			span += 360
		}
		pos := astmAngle - angleLo
		if pos < 0 {
			pos += 360
		}
		t := pos / span
		rho := rhoLo + t*(rhoHi-rhoLo)
		// Interpolate phi along the shorter arc between the two bracket
		// angles, using phiDiff to avoid wrap-around artifacts.
		dphi := phiDiff(phiHi, phiLo)
		phi := phiLo + t*dphi
		dx, dy := polarToCartesian(rho, phi)
		return illuminantCx + dx, illuminantCy + dy, nil
	}
}

// maxChromaAt returns the largest chroma with renotation coverage at the
// given hue and value, used to cap the converter's chroma walk. Non-integer
// value resolves to the minimum of the bracketing integer-value cells, so
// capping never lands outside coverage.
func maxChromaAt(hue float64, family FamilyCode, value float64) float64 {
	d := getDataset()
	lo := int(math.Floor(value))
	hi := int(math.Ceil(value))
	if lo < 1 {
		lo = 1
	}
	if hi > 9 {
		hi = 9
	}
	mLo := d.maxChromaAt(lo)
	mHi := d.maxChromaAt(hi)
	if lo == hi {
		return float64(mLo)
	}
	if mLo < mHi {
		return float64(mLo)
	}
	return float64(mHi)
}

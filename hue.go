package munsellspace

import "math"

// hueAngleSteps, hueAngleBreaks are the breakpoint tables used by
// hueToAngle/angleToHue. They are an empirical, non-linear mapping
// between a "single hue" coordinate in [0,10) and an angle in [0,360):
// equal steps in hue are not equal steps in perceptual angle, which is why
// a lookup table is used instead of a scale factor.
var (
	hueAngleSteps  = []float64{0, 2, 3, 4, 5, 6, 8, 9, 10}
	hueAngleBreaks = []float64{0, 45, 70, 135, 160, 225, 255, 315, 360}
)

// singleHue folds (hue, family) onto the cyclic [0,10) coordinate used by
// the breakpoint tables: single_hue = ((17-code) mod 10 + hue/10 - 0.5) mod 10.
func singleHue(hue float64, code FamilyCode) float64 {
	base := math.Mod(float64(17-int(code)), 10)
	if base < 0 {
		base += 10
	}
	s := math.Mod(base+hue/10-0.5, 10)
	if s < 0 {
		s += 10
	}
	return s
}

// nonlinearInterp performs piecewise-linear interpolation of x against the
// (steps, breaks) table pair, used both forward (hue->angle) and, with the
// tables swapped, backward (angle->hue).
func nonlinearInterp(x float64, steps, breaks []float64) float64 {
	if x <= steps[0] {
		return breaks[0]
	}
	if x >= steps[len(steps)-1] {
		return breaks[len(breaks)-1]
	}
	for i := 0; i < len(steps)-1; i++ {
		if x >= steps[i] && x <= steps[i+1] {
			t := (x - steps[i]) / (steps[i+1] - steps[i])
			return breaks[i] + t*(breaks[i+1]-breaks[i])
		}
	}
	return breaks[len(breaks)-1]
}

// hueToAngle maps a Munsell (hue, family) pair to an angle in [0,360),
// degrees, via the single-hue coordinate and the breakpoint table.
func hueToAngle(hue float64, code FamilyCode) float64 {
	return nonlinearInterp(singleHue(hue, code), hueAngleSteps, hueAngleBreaks)
}

// angleToHue is the inverse of hueToAngle: given an angle in [0,360),
// recover (hue, family).
//
// singleHue folds hue/code onto s = ((17-code) mod 10 + hue/10 - 0.5) mod 10,
// i.e. s = (k + hue/10 - 0.5) mod 10 with k = (7-code) mod 10. Since
// hue ranges over (0,10], each family occupies the half-open-above band
// (k-0.5, k+0.5] of s; k is recovered as ceil(s-0.5) mod 10, then hue is
// read off from the offset of s within that band.
func angleToHue(angle float64) (hue float64, code FamilyCode) {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	s := nonlinearInterp(angle, hueAngleBreaks, hueAngleSteps)

	k := math.Mod(math.Ceil(s-0.5), 10)
	if k < 0 {
		k += 10
	}
	d := s - k + 0.5 // offset within (0,1], before the final mod-10 wrap
	d = math.Mod(d, 10)
	if d <= 0 {
		d += 10
	}
	hue = d * 10

	c := math.Mod(7-k, 10)
	if c <= 0 {
		c += 10
	}
	return hue, FamilyCode(int(math.Round(c)))
}

// boundingHues returns the two standard hue steps (multiples of 2.5)
// bracketing hue within its family, with family rollover at either end.
// Ascending hue runs R -> YR -> Y, so the family above 10 carries code-1
// and the family below 0 carries code+1, matching the hue==0 rewrite in
// Normalize (0YR == 10R).
func boundingHues(hue float64, code FamilyCode) (loHue float64, loCode FamilyCode, hiHue float64, hiCode FamilyCode) {
	const step = 2.5
	lo := math.Floor(hue/step) * step
	hi := lo + step
	loHue, loCode = lo, code
	if loHue == 0 {
		loHue = 10
		loCode = nextFamily(code)
	}
	hiHue, hiCode = hi, code
	if hi > 10 {
		hiHue = hi - 10
		hiCode = prevFamily(code)
	}
	return loHue, loCode, hiHue, hiCode
}

func prevFamily(c FamilyCode) FamilyCode {
	n := int(c) - 1
	if n < 1 {
		n = 10
	}
	return FamilyCode(n)
}

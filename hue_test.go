package munsellspace

import (
	"math"
	"testing"
)

func TestHueAngleRoundTrip(t *testing.T) {
	cases := []struct {
		hue  float64
		code FamilyCode
	}{
		{5, FamilyR}, {2.5, FamilyYR}, {10, FamilyGY}, {7.5, FamilyPB},
	}
	for _, c := range cases {
		angle := hueToAngle(c.hue, c.code)
		hue, code := angleToHue(angle)
		if math.Abs(hue-c.hue) > 1e-6 || code != c.code {
			t.Errorf("round trip (%v %v) -> angle %v -> (%v %v)", c.hue, c.code, angle, hue, code)
		}
	}
}

func TestPhiDiffRange(t *testing.T) {
	cases := [][2]float64{{10, 350}, {350, 10}, {0, 180}, {180, 0}}
	for _, c := range cases {
		d := phiDiff(c[0], c[1])
		if d <= -180 || d > 180 {
			t.Errorf("phiDiff(%v,%v) = %v out of (-180,180]", c[0], c[1], d)
		}
	}
}

func TestBoundingHuesRollover(t *testing.T) {
	loHue, loCode, hiHue, hiCode := boundingHues(9, FamilyR)
	if loHue != 7.5 || loCode != FamilyR {
		t.Errorf("lo bound = %v %v, want 7.5 R", loHue, loCode)
	}
	if hiHue != 10 || hiCode != FamilyR {
		t.Errorf("hi bound = %v %v, want 10 R", hiHue, hiCode)
	}
}

// Below 2.5 the lower bracket is 10 of the preceding family on the wheel;
// ascending hue runs R -> YR, so the family preceding YR is R.
func TestBoundingHuesLowerRollover(t *testing.T) {
	loHue, loCode, hiHue, hiCode := boundingHues(1.25, FamilyYR)
	if loHue != 10 || loCode != FamilyR {
		t.Errorf("lo bound = %v %v, want 10 R", loHue, loCode)
	}
	if hiHue != 2.5 || hiCode != FamilyYR {
		t.Errorf("hi bound = %v %v, want 2.5 YR", hiHue, hiCode)
	}
}

// The bracket angles must straddle the query angle, which is what the
// rollover family codes exist to guarantee.
func TestBoundingHuesBracketsInAngleSpace(t *testing.T) {
	for _, fam := range []FamilyCode{FamilyR, FamilyYR, FamilyGY, FamilyB, FamilyRP} {
		for _, hue := range []float64{1.1, 3.7, 6.2, 9.9} {
			loHue, loCode, hiHue, hiCode := boundingHues(hue, fam)
			a := hueToAngle(hue, fam)
			aLo := hueToAngle(loHue, loCode)
			aHi := hueToAngle(hiHue, hiCode)
			span := aHi - aLo
			if span <= 0 {
				span += 360
			}
			pos := a - aLo
			if pos < 0 {
				pos += 360
			}
			if span > 90 {
				t.Errorf("hue %v %v: bracket arc %v..%v spans %v degrees", hue, fam, aLo, aHi, span)
			}
			if pos > span {
				t.Errorf("hue %v %v: angle %v outside bracket %v..%v", hue, fam, a, aLo, aHi)
			}
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	s := MunsellSpec{Hue: 0, Family: FamilyR, Value: 5, Chroma: 4}
	once := s.Normalize()
	twice := once.Normalize()
	if once != twice {
		t.Errorf("normalize not idempotent: %+v != %+v", once, twice)
	}
	if once.Hue != 10 || once.Family != FamilyRP {
		t.Errorf("hue==0 rewrite failed: got %+v", once)
	}
}

func TestNormalizeZeroChromaCollapsesAchromatic(t *testing.T) {
	s := MunsellSpec{Hue: 5, Family: FamilyR, Value: 6, Chroma: 0}.Normalize()
	if !s.IsAchromatic() {
		t.Errorf("expected achromatic, got %+v", s)
	}
}

package munsellspace

import (
	"math"
)

// FamilyCode is the numeric primary key for a Munsell hue family. String
// forms ("YR", "PB", ...) appear only at notation I/O boundaries. The
// mapping below must be preserved bit-for-bit: the code-to-angle table in
// hue.go and the renotation dataset's indices both depend on it.
type FamilyCode int

const (
	FamilyBG FamilyCode = 1
	FamilyG  FamilyCode = 2
	FamilyGY FamilyCode = 3
	FamilyY  FamilyCode = 4
	FamilyYR FamilyCode = 5
	FamilyR  FamilyCode = 6
	FamilyRP FamilyCode = 7
	FamilyP  FamilyCode = 8
	FamilyPB FamilyCode = 9
	FamilyB  FamilyCode = 10
)

var familyNames = map[FamilyCode]string{
	FamilyBG: "BG", FamilyG: "G", FamilyGY: "GY", FamilyY: "Y", FamilyYR: "YR",
	FamilyR: "R", FamilyRP: "RP", FamilyP: "P", FamilyPB: "PB", FamilyB: "B",
}

var familyCodes = func() map[string]FamilyCode {
	m := make(map[string]FamilyCode, len(familyNames))
	for c, n := range familyNames {
		m[n] = c
	}
	return m
}()

func (c FamilyCode) String() string {
	if n, ok := familyNames[c]; ok {
		return n
	}
	return "?"
}

// MunsellSpec is the value object produced by the converter or by parsing a
// notation string. It is immutable once constructed.
//
// Invariant: either all of {Hue, Family, Chroma} are NaN (achromatic), or
// none are. Canonical form forbids Hue == 0 (rewritten to 10 with the
// family advanced) and forbids Chroma == 0 for a chromatic spec (collapsed
// to achromatic).
type MunsellSpec struct {
	Hue    float64    // (0,10], or NaN if achromatic
	Family FamilyCode // 1..10, or 0 (treated as unset/NaN) if achromatic
	Value  float64    // [0,10]
	Chroma float64    // >=0, or NaN if achromatic
}

// IsAchromatic reports whether s carries no hue/chroma information.
func (s MunsellSpec) IsAchromatic() bool {
	return math.IsNaN(s.Hue)
}

// Achromatic builds a neutral gray spec at the given value.
func Achromatic(value float64) MunsellSpec {
	return MunsellSpec{Hue: math.NaN(), Family: 0, Value: value, Chroma: math.NaN()}
}

// Normalize canonicalizes s: hue==0 is rewritten to hue=10 with the family
// advanced by one step, and chroma==0 collapses to achromatic. Normalize is
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func (s MunsellSpec) Normalize() MunsellSpec {
	if s.IsAchromatic() {
		return Achromatic(s.Value)
	}
	out := s
	if out.Chroma == 0 {
		return Achromatic(out.Value)
	}
	if out.Hue == 0 {
		out.Hue = 10
		out.Family = nextFamily(out.Family)
	}
	return out
}

// nextFamily advances the cyclic family sequence by one step, matching
// "(code+1) mod 10" over the 1..10 domain used throughout this package.
func nextFamily(c FamilyCode) FamilyCode {
	n := int(c) % 10
	return FamilyCode(n + 1)
}

func (s MunsellSpec) finite() bool {
	if s.IsAchromatic() {
		return !math.IsNaN(s.Value) && !math.IsInf(s.Value, 0)
	}
	return !math.IsNaN(s.Hue) && !math.IsInf(s.Hue, 0) &&
		!math.IsNaN(s.Value) && !math.IsInf(s.Value, 0) &&
		!math.IsNaN(s.Chroma) && !math.IsInf(s.Chroma, 0)
}

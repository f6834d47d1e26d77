// Package iscc implements the ISCC-NBS classifier: a mechanical hue-wedge
// spatial index over the 267 standardized color regions, each an
// axis-aligned polygon in (value, chroma) space, plus the descriptor
// grammar that turns a color number into human-readable names.
//
// iscc consumes MunsellSpec values from the root munsellspace package; the
// root package never imports iscc.
package iscc

import (
	"math"

	"github.com/colorscience/munsellspace"
)

// Point is a (value, chroma) coordinate in the classifier's query space.
type Point struct {
	Value, Chroma float64
}

// Rect is an axis-aligned (value, chroma) bounding box with the boundary
// disambiguation rule baked into Contains: the lower value bound is
// exclusive unless it is exactly 0; the upper value bound is always
// inclusive; the lower chroma bound is exclusive unless it is exactly 0;
// the upper chroma bound is always inclusive. Applied consistently, every
// point in the defined (value, chroma) range lies in exactly one polygon
// per wedge.
type Rect struct {
	VLo, VHi float64
	CLo, CHi float64
}

// Contains reports whether p lies within r under the boundary rule above.
func (r Rect) Contains(p Point) bool {
	vOK := p.Value <= r.VHi
	if r.VLo == 0 {
		vOK = vOK && p.Value >= r.VLo
	} else {
		vOK = vOK && p.Value > r.VLo
	}
	cOK := p.Chroma <= r.CHi
	if r.CLo == 0 {
		cOK = cOK && p.Chroma >= r.CLo
	} else {
		cOK = cOK && p.Chroma > r.CLo
	}
	return vOK && cOK
}

// Polygon is one ISCC-NBS region: a closed, axis-aligned rectilinear
// boundary (Vertices, as authored) plus its decomposition into one or more
// Rects, which is what Contains actually tests against. NewIndex stores the
// bounding rectangle of Vertices as the single element of Rects; a
// non-rectangular outline (an L shape, say) is not decomposed, so its Rect
// also covers the notch. Every polygon in this package's embedded data is
// a single rectangle.
type Polygon struct {
	ColorNumber int
	PolygonID   int
	Vertices    []Point
	Rects       []Rect
	HueStart    float64 // continuous hue position on the cyclic [0,100) axis
	HueEnd      float64
}

// Contains reports whether p is inside any of the polygon's rectangles.
func (p Polygon) Contains(pt Point) bool {
	for _, r := range p.Rects {
		if r.Contains(pt) {
			return true
		}
	}
	return false
}

// ColorDef is the per-color-number metadata used by the descriptor
// builder. All strings are lowercase.
type ColorDef struct {
	ColorNumber   int
	OfficialColor string
	Modifier      string // may be empty, or contain the literal substring "-ish"
	RevisedColor  string
	Shade         string // last whitespace-separated token of RevisedColor
}

// Wedge is one of the 100 half-open hue arcs the classifier indexes
// polygons by: (family, bucket) with bucket in 0..9 covering the arc
// (bucket, bucket+1] within that family's 10-unit span of the overall
// cyclic hue axis, so hue 10 of a family falls in its bucket 9.
type Wedge struct {
	Family munsellspace.FamilyCode
	Bucket int
}

// familyOrder fixes the canonical cyclic order the 100-wedge hue axis is
// built from: R, YR, Y, GY, G, BG, B, PB, P, RP.
var familyOrder = map[munsellspace.FamilyCode]int{
	munsellspace.FamilyR:  0,
	munsellspace.FamilyYR: 1,
	munsellspace.FamilyY:  2,
	munsellspace.FamilyGY: 3,
	munsellspace.FamilyG:  4,
	munsellspace.FamilyBG: 5,
	munsellspace.FamilyB:  6,
	munsellspace.FamilyPB: 7,
	munsellspace.FamilyP:  8,
	munsellspace.FamilyRP: 9,
}

var familyByOrder = func() map[int]munsellspace.FamilyCode {
	m := make(map[int]munsellspace.FamilyCode, len(familyOrder))
	for f, o := range familyOrder {
		m[o] = f
	}
	return m
}()

// hueToH maps (hue, family) to the continuous cyclic coordinate H in
// (0,100] used to select and build wedges.
func hueToH(hue float64, family munsellspace.FamilyCode) float64 {
	return float64(familyOrder[family])*10 + hue
}

// hToWedgeBucket returns the global wedge index (0..99) containing the
// continuous coordinate h, treating wedge arcs as half-open (k,k+1] within
// the overall 100-unit cyclic axis: an integer h belongs to the wedge that
// ends there, not the one that starts there, so hToWedgeBucket(30) == 29
// (the last point of the 3rd family's span), not 30.
func hToWedgeBucket(h float64) int {
	for h <= 0 {
		h += 100
	}
	for h > 100 {
		h -= 100
	}
	k := int(math.Ceil(h)) - 1
	if k < 0 {
		k = 99
	}
	if k > 99 {
		k = 99
	}
	return k
}

// wedgeOf resolves the wedge a MunsellSpec's hue falls in. Callers must
// check IsAchromatic first; achromatic specs don't consult wedges.
func wedgeOf(spec munsellspace.MunsellSpec) Wedge {
	h := hueToH(spec.Hue, spec.Family)
	family, bucket := familyAndLocalBucket(hToWedgeBucket(h))
	return Wedge{Family: family, Bucket: bucket}
}

func familyAndLocalBucket(globalBucket int) (munsellspace.FamilyCode, int) {
	order := globalBucket / 10
	local := globalBucket % 10
	return familyByOrder[order], local
}

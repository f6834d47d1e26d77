package iscc

import (
	"math"

	"github.com/colorscience/munsellspace"
)

// SourcePolygon is one polygon as authored, before wedge explosion: a
// closed rectilinear boundary plus the hue arc it spans on the cyclic
// axis.
type SourcePolygon struct {
	ColorNumber int
	PolygonID   int
	Vertices    []Point
	HueStart    float64
	HueEnd      float64
}

// Index is the built, queryable wedge index plus the ColorDef table it was
// built from. It is immutable after construction and safe for concurrent
// read-only use.
type Index struct {
	wedges    map[Wedge][]Polygon
	colorDefs map[int]ColorDef
}

// achromaticIntervals is the fixed value->color-number mapping for neutral
// grays: V in [0,2.5]->267 (black) ... (8.5,10.0]->263 (white).
var achromaticIntervals = []struct {
	lo, hi      float64
	loInclusive bool
	colorNumber int
}{
	{0, 2.5, true, 267},
	{2.5, 4.5, false, 266},
	{4.5, 6.5, false, 265},
	{6.5, 8.5, false, 264},
	{8.5, 10.0, false, 263},
}

func achromaticColorNumber(value float64) (int, bool) {
	for _, iv := range achromaticIntervals {
		if value > iv.hi {
			continue
		}
		if value < iv.lo {
			continue
		}
		if value == iv.lo && !iv.loInclusive {
			continue
		}
		return iv.colorNumber, true
	}
	return 0, false
}

// NewIndex validates the source polygons (closed, axis-aligned, nonzero
// hue span) and explodes each one across every wedge whose arc intersects
// [HueStart, HueEnd), then returns the built Index. It never panics; a
// malformed input fails with a DataError, never silently.
func NewIndex(defs []ColorDef, polys []SourcePolygon) (*Index, error) {
	colorDefs := make(map[int]ColorDef, len(defs))
	for _, d := range defs {
		colorDefs[d.ColorNumber] = d
	}

	idx := &Index{
		wedges:    make(map[Wedge][]Polygon),
		colorDefs: colorDefs,
	}

	for _, sp := range polys {
		if err := validatePolygon(sp); err != nil {
			return nil, err
		}
		rect, err := boundingRect(sp.Vertices)
		if err != nil {
			return nil, err
		}

		start, end := sp.HueStart, sp.HueEnd
		for start < 0 {
			start += 100
			end += 100
		}
		span := end - start
		if span <= 0 {
			span += 100
		}

		firstBucket := hToWedgeBucket(start + 1e-9)
		nBuckets := int(math.Ceil(span))
		if nBuckets > 100 {
			nBuckets = 100
		}
		seen := make(map[Wedge]bool, nBuckets)
		for i := 0; i < nBuckets; i++ {
			global := (firstBucket + i) % 100
			family, bucket := familyAndLocalBucket(global)
			w := Wedge{Family: family, Bucket: bucket}
			if seen[w] {
				continue
			}
			seen[w] = true
			idx.wedges[w] = append(idx.wedges[w], Polygon{
				ColorNumber: sp.ColorNumber,
				PolygonID:   sp.PolygonID,
				Vertices:    sp.Vertices,
				Rects:       []Rect{rect},
				HueStart:    sp.HueStart,
				HueEnd:      sp.HueEnd,
			})
		}
	}

	return idx, nil
}

// validatePolygon rejects malformed source polygons: a zero-width hue
// range, fewer than four vertices, or any edge that is neither horizontal
// nor vertical. The closing edge back to the first vertex is checked like
// any other, so a well-formed input is a closed rectilinear loop. The hue
// range is carried once per SourcePolygon, so vertices cannot disagree on
// it by construction.
func validatePolygon(sp SourcePolygon) error {
	if sp.HueEnd == sp.HueStart {
		return dataErr("validatePolygon", "zero-width hue range")
	}
	if len(sp.Vertices) < 4 {
		return dataErr("validatePolygon", "polygon needs at least 4 vertices")
	}
	n := len(sp.Vertices)
	for i := 0; i < n; i++ {
		a := sp.Vertices[i]
		b := sp.Vertices[(i+1)%n]
		if a.Value != b.Value && a.Chroma != b.Chroma {
			return dataErr("validatePolygon", "edge is not axis-aligned")
		}
	}
	return nil
}

func boundingRect(vs []Point) (Rect, error) {
	if len(vs) == 0 {
		return Rect{}, dataErr("boundingRect", "empty polygon")
	}
	r := Rect{VLo: vs[0].Value, VHi: vs[0].Value, CLo: vs[0].Chroma, CHi: vs[0].Chroma}
	for _, v := range vs[1:] {
		if v.Value < r.VLo {
			r.VLo = v.Value
		}
		if v.Value > r.VHi {
			r.VHi = v.Value
		}
		if v.Chroma < r.CLo {
			r.CLo = v.Chroma
		}
		if v.Chroma > r.CHi {
			r.CHi = v.Chroma
		}
	}
	return r, nil
}

func dataErr(op, msg string) error {
	return &munsellspace.Error{Kind: munsellspace.DataError, Op: op, Msg: msg}
}

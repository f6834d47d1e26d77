package iscc

import (
	"fmt"
	"strings"

	"github.com/colorscience/munsellspace"
)

// This file builds the embedded ColorDef/SourcePolygon tables consumed by
// NewIndex: 267 color numbers with the standard achromatic numbering
// 263-267, each chromatic region a rectangle in (value, chroma) space
// replicated across its family's full 10-unit hue span.
//
// The generator produces exactly 262 chromatic entries (color numbers
// 1..262) across the 10 Munsell hue families, each family populated from a
// 5 (value band) x 5 (chroma band) grid of named regions plus two extra
// high-chroma bands, truncated to the 262 total; then the 5 fixed
// achromatic entries (263..267). Lowest-chroma cells of colors with an
// ishTable entry carry "-ish" template modifiers ("reddish gray", "pinkish
// white"), exercising the descriptor grammar's substitution rule through
// the normal classify path.

type valueBand struct {
	label  string
	lo, hi float64
}

var valueBands = []valueBand{
	{"very dark", 0, 2.5},
	{"dark", 2.5, 4.5},
	{"", 4.5, 6.5},
	{"light", 6.5, 8.5},
	{"very light", 8.5, 10},
}

type chromaBand struct {
	label  string
	lo, hi float64
}

var chromaBands = []chromaBand{
	{"grayish", 0, 2},
	{"dull", 2, 6},
	{"moderate", 6, 11},
	{"strong", 11, 16},
	{"vivid", 16, 24},
}

// ishModifierByValueBand replaces the plain "grayish" label in the lowest
// chroma band for colors with an ishTable entry: the literal "-ish" is
// substituted with the cell color's "-ish" form at descriptor-build time,
// yielding names like "reddish gray", "dark brownish gray", and
// "pinkish white".
var ishModifierByValueBand = []string{
	"-ish black",
	"dark -ish gray",
	"-ish gray",
	"light -ish gray",
	"-ish white",
}

// familyBaseName is the plain hue name for each Munsell family, overridden
// per-cell below for pink (light/very-light red), brown (dark/very-dark
// orange), and olive (dark, low-chroma yellow): those three names derive
// from neighboring hue regions rather than having their own Munsell
// family.
var familyBaseName = map[munsellspace.FamilyCode]string{
	munsellspace.FamilyR:  "red",
	munsellspace.FamilyYR: "orange",
	munsellspace.FamilyY:  "yellow",
	munsellspace.FamilyGY: "yellow green",
	munsellspace.FamilyG:  "green",
	munsellspace.FamilyBG: "blue green",
	munsellspace.FamilyB:  "blue",
	munsellspace.FamilyPB: "purple blue",
	munsellspace.FamilyP:  "purple",
	munsellspace.FamilyRP: "red purple",
}

// familyOrderedCodes lists the 10 families in the same canonical cyclic
// order as familyOrder in types.go, so archetype generation is
// deterministic and matches the wedge axis.
var familyOrderedCodes = []munsellspace.FamilyCode{
	munsellspace.FamilyR, munsellspace.FamilyYR, munsellspace.FamilyY, munsellspace.FamilyGY,
	munsellspace.FamilyG, munsellspace.FamilyBG, munsellspace.FamilyB, munsellspace.FamilyPB,
	munsellspace.FamilyP, munsellspace.FamilyRP,
}

// chromaticEntry is one generated (name, modifier, polygon) cell before
// color numbers are assigned; entries are generated in full per family
// (the 5x5 value/chroma grid plus the two extra bands) and only then
// truncated to the fixed total of 262, so the per-family count never has
// to divide 262 evenly.
type chromaticEntry struct {
	name, modifier string
	vLo, vHi       float64
	cLo, cHi       float64
	famOrder       int
}

// BuildEmbeddedTables constructs the 267-entry ColorDef table and its
// source polygons. It is exported so callers (and tests) can build a fresh
// Index without relying on package-level mutable state: callers build once
// (e.g. via sync.Once at their own init site) and share the result.
func BuildEmbeddedTables() ([]ColorDef, []SourcePolygon) {
	var entries []chromaticEntry
	for _, family := range familyOrderedCodes {
		famOrder := familyOrder[family]
		for vb := 0; vb < len(valueBands); vb++ {
			for cb := 0; cb < len(chromaBands); cb++ {
				name, modifier := nameAndModifier(family, vb, cb)
				entries = append(entries, chromaticEntry{
					name: name, modifier: modifier,
					vLo: valueBands[vb].lo, vHi: valueBands[vb].hi,
					cLo: chromaBands[cb].lo, cHi: chromaBands[cb].hi,
					famOrder: famOrder,
				})
			}
		}
		// Two extra high-chroma bands per family, beyond the 5x5 grid's top
		// chroma band, at the light and very-dark value bands. They extend
		// coverage without overlapping any grid cell.
		lightName, _ := nameAndModifier(family, 3, 4)
		entries = append(entries, chromaticEntry{
			name: lightName, modifier: "brilliant",
			vLo: valueBands[3].lo, vHi: valueBands[3].hi,
			cLo: 24, cHi: 32,
			famOrder: famOrder,
		})
		darkName, _ := nameAndModifier(family, 0, 4)
		entries = append(entries, chromaticEntry{
			name: darkName, modifier: "deep",
			vLo: valueBands[0].lo, vHi: valueBands[0].hi,
			cLo: 24, cHi: 32,
			famOrder: famOrder,
		})
	}

	const chromaticCount = 262
	if len(entries) > chromaticCount {
		entries = entries[:chromaticCount]
	}

	defs := make([]ColorDef, 0, chromaticCount+5)
	polys := make([]SourcePolygon, 0, chromaticCount)
	for i, e := range entries {
		colorNumber := i + 1
		defs = append(defs, ColorDef{
			ColorNumber:   colorNumber,
			OfficialColor: e.name,
			Modifier:      e.modifier,
			RevisedColor:  e.name,
			Shade:         shadeOf(e.name),
		})
		polys = append(polys, SourcePolygon{
			ColorNumber: colorNumber,
			PolygonID:   1,
			Vertices: []Point{
				{Value: e.vLo, Chroma: e.cLo},
				{Value: e.vHi, Chroma: e.cLo},
				{Value: e.vHi, Chroma: e.cHi},
				{Value: e.vLo, Chroma: e.cHi},
			},
			HueStart: float64(e.famOrder * 10),
			HueEnd:   float64(e.famOrder*10 + 10),
		})
	}

	defs = append(defs, achromaticDefs()...)
	mustColorCount(defs)
	return defs, polys
}

// nameAndModifier resolves the hue name and grammar modifier for one
// (family, value-band, chroma-band) cell, applying the pink/brown/olive
// overrides described above. Lowest-chroma cells of colors with an
// ishTable entry take an "-ish" template modifier instead of the plain
// "grayish" label.
// For "pink", the value qualifier is suppressed: pink already connotes a
// light tint of red, so a high-value high-chroma cell reads "vivid pink",
// not "light vivid pink".
func nameAndModifier(family munsellspace.FamilyCode, vb, cb int) (name, modifier string) {
	name = familyBaseName[family]
	switch {
	case family == munsellspace.FamilyR && vb >= 3:
		name = "pink"
	case family == munsellspace.FamilyYR && vb <= 1:
		name = "brown"
	case family == munsellspace.FamilyY && vb <= 1 && cb <= 2:
		name = "olive"
	}

	if cb == 0 {
		if _, ok := ishTable[name]; ok {
			return name, ishModifierByValueBand[vb]
		}
	}

	if name == "pink" {
		return name, chromaBands[cb].label
	}
	return name, strings.TrimSpace(valueBands[vb].label + " " + chromaBands[cb].label)
}

// achromaticDefs builds the five fixed neutral entries, color numbers
// 263..267. Modifier is empty for all five, so their descriptors are the
// bare color names.
func achromaticDefs() []ColorDef {
	names := map[int]string{
		263: "white",
		264: "light gray",
		265: "medium gray",
		266: "dark gray",
		267: "black",
	}
	var out []ColorDef
	for n := 263; n <= 267; n++ {
		name := names[n]
		out = append(out, ColorDef{
			ColorNumber:   n,
			OfficialColor: name,
			Modifier:      "",
			RevisedColor:  name,
			Shade:         shadeOf(name),
		})
	}
	return out
}

func mustColorCount(defs []ColorDef) {
	if len(defs) != 267 {
		panic(fmt.Sprintf("embedded ColorDef table must have 267 entries, got %d", len(defs)))
	}
}

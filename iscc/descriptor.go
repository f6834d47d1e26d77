package iscc

import "strings"

// Descriptor is the descriptor builder's output for one ColorDef.
type Descriptor struct {
	ColorNumber        int
	Modifier           string
	OfficialDescriptor string
	RevisedDescriptor  string
	Shade              string
}

// ishTable is the exhaustive "-ish" substitution table. "olive" is the one
// exception: it stays unchanged rather than becoming "olivish".
var ishTable = map[string]string{
	"pink":   "pinkish",
	"red":    "reddish",
	"brown":  "brownish",
	"yellow": "yellowish",
	"olive":  "olive",
	"green":  "greenish",
	"blue":   "bluish",
	"purple": "purplish",
}

// BuildDescriptor applies the modifier grammar to a ColorDef, producing
// both the official and revised descriptor from the same rule set applied
// to the two different base-color strings.
func BuildDescriptor(def ColorDef) Descriptor {
	return Descriptor{
		ColorNumber:        def.ColorNumber,
		Modifier:           def.Modifier,
		OfficialDescriptor: describe(def.Modifier, def.OfficialColor),
		RevisedDescriptor:  describe(def.Modifier, def.RevisedColor),
		Shade:              shadeOf(def.RevisedColor),
	}
}

// describe joins a modifier and a color name: an empty modifier yields the
// bare color, a plain modifier is prefixed with a single space, and a
// modifier containing "-ish" has that substring replaced by the color's
// "-ish" form. ColorDef strings are already lowercase at construction.
func describe(modifier, color string) string {
	modifier = strings.ToLower(modifier)
	color = strings.ToLower(color)

	if modifier == "" {
		return color
	}
	if !strings.Contains(modifier, "-ish") {
		return modifier + " " + color
	}

	ish, ok := ishTable[color]
	if !ok {
		// A color with no table entry keeps its plain name rather than
		// leaving "-ish" untouched in the output.
		ish = color
	}
	return strings.Replace(modifier, "-ish", ish, 1)
}

func shadeOf(revisedColor string) string {
	fields := strings.Fields(revisedColor)
	if len(fields) == 0 {
		return revisedColor
	}
	return fields[len(fields)-1]
}

package munsellspace

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders a MunsellSpec in standard notation: chromatic specs
// as "<hue><family> <value>/<chroma>" with hue rendered to one decimal and
// value/chroma to one decimal (e.g. "5.0R 4.0/14.0"); achromatic specs as
// "N <value>/".
func (s MunsellSpec) String() string {
	if s.IsAchromatic() {
		return fmt.Sprintf("N %.1f/", s.Value)
	}
	return fmt.Sprintf("%.1f%s %.1f/%.1f", s.Hue, s.Family, s.Value, s.Chroma)
}

// ParseNotation parses a Munsell notation string into a MunsellSpec.
//
// Chromatic form: "<hue><family> <value>/<chroma>", e.g. "5.0R 4.0/14.0".
// All three achromatic forms seen in the wild are accepted: "N <value>/",
// "N<value>", and "N <value>/0".
func ParseNotation(s string) (MunsellSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MunsellSpec{}, newErr("parse_notation", InvalidInput, "empty notation", nil)
	}

	if strings.HasPrefix(s, "N") || strings.HasPrefix(s, "n") {
		rest := strings.TrimSpace(s[1:])
		rest = strings.TrimSuffix(rest, "/")
		rest = strings.TrimSpace(rest)
		if idx := strings.Index(rest, "/"); idx >= 0 {
			// "N 5/0" form: trailing "/0" is tolerated and discarded.
			chromaPart := strings.TrimSpace(rest[idx+1:])
			if chromaPart != "" && chromaPart != "0" {
				return MunsellSpec{}, newErr("parse_notation", InvalidInput, "achromatic notation must have zero chroma", nil)
			}
			rest = strings.TrimSpace(rest[:idx])
		}
		v, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return MunsellSpec{}, newErr("parse_notation", InvalidInput, "bad achromatic value", err)
		}
		out := Achromatic(v)
		if !out.finite() {
			return MunsellSpec{}, newErr("parse_notation", InvalidInput, "non-finite achromatic value", nil)
		}
		return out, nil
	}

	parts := strings.Fields(s)
	if len(parts) != 2 {
		return MunsellSpec{}, newErr("parse_notation", InvalidInput, "expected '<hue><family> <value>/<chroma>'", nil)
	}
	huePart := parts[0]
	vcPart := parts[1]

	famIdx := -1
	for i, r := range huePart {
		if (r < '0' || r > '9') && r != '.' {
			famIdx = i
			break
		}
	}
	if famIdx < 0 {
		return MunsellSpec{}, newErr("parse_notation", InvalidInput, "missing hue family letters", nil)
	}
	hue, err := strconv.ParseFloat(huePart[:famIdx], 64)
	if err != nil {
		return MunsellSpec{}, newErr("parse_notation", InvalidInput, "bad hue number", err)
	}
	famCode, ok := familyCodes[strings.ToUpper(huePart[famIdx:])]
	if !ok {
		return MunsellSpec{}, newErr("parse_notation", InvalidInput, "unknown hue family", nil)
	}

	vc := strings.SplitN(vcPart, "/", 2)
	if len(vc) != 2 {
		return MunsellSpec{}, newErr("parse_notation", InvalidInput, "expected 'value/chroma'", nil)
	}
	value, err := strconv.ParseFloat(vc[0], 64)
	if err != nil {
		return MunsellSpec{}, newErr("parse_notation", InvalidInput, "bad value", err)
	}
	chroma, err := strconv.ParseFloat(vc[1], 64)
	if err != nil {
		return MunsellSpec{}, newErr("parse_notation", InvalidInput, "bad chroma", err)
	}

	out := MunsellSpec{Hue: hue, Family: famCode, Value: value, Chroma: chroma}.Normalize()
	if !out.finite() {
		return MunsellSpec{}, newErr("parse_notation", InvalidInput, "non-finite hue, value, or chroma", nil)
	}
	return out, nil
}

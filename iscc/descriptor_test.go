package iscc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDescriptorNoModifier(t *testing.T) {
	d := BuildDescriptor(ColorDef{ColorNumber: 263, OfficialColor: "white", RevisedColor: "white", Shade: "white"})
	assert.Equal(t, "white", d.OfficialDescriptor)
	assert.Equal(t, "white", d.RevisedDescriptor)
}

func TestBuildDescriptorPlainModifier(t *testing.T) {
	d := BuildDescriptor(ColorDef{ColorNumber: 1, OfficialColor: "red", Modifier: "vivid", RevisedColor: "red", Shade: "red"})
	assert.Equal(t, "vivid red", d.OfficialDescriptor)
	assert.Equal(t, "vivid red", d.RevisedDescriptor)
}

func TestBuildDescriptorIshSubstitutionFallsBackForUntabulatedColor(t *testing.T) {
	d := BuildDescriptor(ColorDef{ColorNumber: 2, OfficialColor: "orange", Modifier: "strong -ish", RevisedColor: "orange", Shade: "orange"})
	// "orange" has no ishTable entry, so describe falls back to the plain
	// color name rather than leaving "-ish" untouched in the output.
	assert.Equal(t, "strong orange", d.OfficialDescriptor)
}

func TestBuildDescriptorIshWithTabulatedColor(t *testing.T) {
	d := BuildDescriptor(ColorDef{ColorNumber: 3, OfficialColor: "red", Modifier: "deep -ish", RevisedColor: "red"})
	assert.Equal(t, "deep reddish", d.OfficialDescriptor)
}

func TestBuildDescriptorOliveIshException(t *testing.T) {
	d := BuildDescriptor(ColorDef{ColorNumber: 4, OfficialColor: "olive", Modifier: "-ish", RevisedColor: "olive"})
	assert.Equal(t, "olive", d.OfficialDescriptor)
}

func TestShadeIsLastTokenOfRevisedColor(t *testing.T) {
	d := BuildDescriptor(ColorDef{ColorNumber: 5, OfficialColor: "blue green", Modifier: "dark", RevisedColor: "blue green"})
	assert.Equal(t, "green", d.Shade)
}

func TestDescribeIsDeterministic(t *testing.T) {
	def := ColorDef{ColorNumber: 6, OfficialColor: "purple", Modifier: "grayish", RevisedColor: "purple"}
	a := BuildDescriptor(def)
	b := BuildDescriptor(def)
	assert.Equal(t, a, b)
}

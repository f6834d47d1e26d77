package iscc

import (
	"testing"

	"github.com/colorscience/munsellspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAchromaticWhiteAndBlack(t *testing.T) {
	idx := testIndex(t)
	c := NewClassifier(idx, 16)

	white, err := c.Classify(munsellspace.Achromatic(9.5))
	require.NoError(t, err)
	assert.Equal(t, 263, white.ColorNumber)
	assert.Equal(t, "white", white.Official)

	black, err := c.Classify(munsellspace.Achromatic(1))
	require.NoError(t, err)
	assert.Equal(t, 267, black.ColorNumber)
	assert.Equal(t, "black", black.Official)
}

func TestClassifyAchromaticMediumGray(t *testing.T) {
	idx := testIndex(t)
	c := NewClassifier(idx, 0)
	res, err := c.Classify(munsellspace.Achromatic(5.5))
	require.NoError(t, err)
	assert.Equal(t, 265, res.ColorNumber)
	assert.Equal(t, "medium gray", res.Official)
}

func TestClassifyChromaticMatchesAPolygon(t *testing.T) {
	idx := testIndex(t)
	c := NewClassifier(idx, 16)
	spec := munsellspace.MunsellSpec{Hue: 5, Family: munsellspace.FamilyR, Value: 5, Chroma: 8}.Normalize()
	res, err := c.Classify(spec)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Official)
	assert.NotZero(t, res.ColorNumber)
}

func TestClassifyOutsideDefinedPolygonsIsNotFound(t *testing.T) {
	idx := testIndex(t)
	c := NewClassifier(idx, 16)
	spec := munsellspace.MunsellSpec{Hue: 5, Family: munsellspace.FamilyR, Value: 5, Chroma: 500}.Normalize()
	_, err := c.Classify(spec)
	require.Error(t, err)
	kind, ok := munsellspace.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, munsellspace.NotFound, kind)
}

func TestClassifyCacheReturnsSameResult(t *testing.T) {
	idx := testIndex(t)
	c := NewClassifier(idx, 16)
	spec := munsellspace.MunsellSpec{Hue: 5, Family: munsellspace.FamilyR, Value: 5, Chroma: 8}.Normalize()

	first, err := c.Classify(spec)
	require.NoError(t, err)
	assert.Len(t, c.cacheMap, 1)

	second, err := c.Classify(spec)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, c.cacheMap, 1, "second call should hit the cache, not grow it")
}

func TestClassifyCacheEvictsOldestAtCapacity(t *testing.T) {
	idx := testIndex(t)
	c := NewClassifier(idx, 1)

	a := munsellspace.MunsellSpec{Hue: 5, Family: munsellspace.FamilyR, Value: 5, Chroma: 8}.Normalize()
	b := munsellspace.MunsellSpec{Hue: 5, Family: munsellspace.FamilyB, Value: 5, Chroma: 8}.Normalize()

	_, err := c.Classify(a)
	require.NoError(t, err)
	assert.Len(t, c.cacheMap, 1)

	_, err = c.Classify(b)
	require.NoError(t, err)
	assert.Len(t, c.cacheMap, 1, "capacity-1 cache should evict a before admitting b")

	_, ok := c.cacheMap[keyOf(a)]
	assert.False(t, ok, "a should have been evicted")
}

func TestClassifyRGBEitherSucceedsOrReturnsATypedError(t *testing.T) {
	idx := testIndex(t)
	c := NewClassifier(idx, 16)
	conv := munsellspace.NewConverter()
	res, err := c.ClassifyRGB(conv, 200, 30, 90)
	if err != nil {
		_, ok := munsellspace.KindOf(err)
		assert.True(t, ok, "error from ClassifyRGB should always be a *munsellspace.Error")
		return
	}
	assert.NotZero(t, res.ColorNumber)
}

// Low-chroma cells carry "-ish" template modifiers in the embedded data,
// so the substitution rule of the descriptor grammar runs on the normal
// classify path, not just on hand-built ColorDefs.
func TestClassifyLowChromaAppliesIshSubstitution(t *testing.T) {
	idx := testIndex(t)
	c := NewClassifier(idx, 0)

	cases := []struct {
		spec     munsellspace.MunsellSpec
		official string
		shade    string
	}{
		{munsellspace.MunsellSpec{Hue: 5, Family: munsellspace.FamilyR, Value: 5, Chroma: 1}, "reddish gray", "red"},
		{munsellspace.MunsellSpec{Hue: 5, Family: munsellspace.FamilyR, Value: 9, Chroma: 1}, "pinkish white", "pink"},
		{munsellspace.MunsellSpec{Hue: 5, Family: munsellspace.FamilyYR, Value: 1, Chroma: 1}, "brownish black", "brown"},
		{munsellspace.MunsellSpec{Hue: 5, Family: munsellspace.FamilyB, Value: 7, Chroma: 1}, "light bluish gray", "blue"},
	}
	for _, tc := range cases {
		res, err := c.Classify(tc.spec.Normalize())
		require.NoErrorf(t, err, "spec %v", tc.spec)
		assert.Equalf(t, tc.official, res.Official, "spec %v", tc.spec)
		assert.Equalf(t, tc.official, res.Revised, "spec %v", tc.spec)
		assert.Equalf(t, tc.shade, res.Shade, "spec %v", tc.spec)
	}
}

func TestClassifyRGBNeutralsEndToEnd(t *testing.T) {
	idx := testIndex(t)
	c := NewClassifier(idx, 16)
	conv := munsellspace.NewConverter()

	cases := []struct {
		r, g, b uint8
		want    int
		shade   string
	}{
		{0, 0, 0, 267, "black"},
		{128, 128, 128, 265, "gray"},
		{255, 255, 255, 263, "white"},
	}
	for _, tc := range cases {
		res, err := c.ClassifyRGB(conv, tc.r, tc.g, tc.b)
		require.NoErrorf(t, err, "rgb(%d,%d,%d)", tc.r, tc.g, tc.b)
		assert.Equalf(t, tc.want, res.ColorNumber, "rgb(%d,%d,%d)", tc.r, tc.g, tc.b)
		assert.Equalf(t, tc.shade, res.Shade, "rgb(%d,%d,%d)", tc.r, tc.g, tc.b)
	}
}

func TestDefaultClassifierIsSharedAndUsable(t *testing.T) {
	c1, err := DefaultClassifier()
	require.NoError(t, err)
	c2, err := DefaultClassifier()
	require.NoError(t, err)
	assert.Same(t, c1, c2)

	res, err := c1.Classify(munsellspace.Achromatic(0))
	require.NoError(t, err)
	assert.Equal(t, 267, res.ColorNumber)
}

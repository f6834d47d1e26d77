package iscc

import (
	"testing"

	"github.com/colorscience/munsellspace"
	"github.com/stretchr/testify/assert"
)

func TestWedgeOfFamilyBoundaries(t *testing.T) {
	// hue=10 is the top of a family's span and stays in that family's last
	// bucket (9), never rolling into the next family's bucket 0.
	w := wedgeOf(munsellspace.MunsellSpec{Hue: 10, Family: munsellspace.FamilyR, Value: 5, Chroma: 4})
	assert.Equal(t, munsellspace.FamilyR, w.Family)
	assert.Equal(t, 9, w.Bucket)
}

func TestWedgeOfSmallHueIsFirstBucket(t *testing.T) {
	w := wedgeOf(munsellspace.MunsellSpec{Hue: 0.5, Family: munsellspace.FamilyGY, Value: 5, Chroma: 4})
	assert.Equal(t, munsellspace.FamilyGY, w.Family)
	assert.Equal(t, 0, w.Bucket)
}

func TestHToWedgeBucketWraps(t *testing.T) {
	assert.Equal(t, hToWedgeBucket(0.5), hToWedgeBucket(100.5))
	assert.Equal(t, 99, hToWedgeBucket(100))
	assert.Equal(t, 0, hToWedgeBucket(1))
}

func TestRectContainsBoundaryRule(t *testing.T) {
	r := Rect{VLo: 2, VHi: 4, CLo: 0, CHi: 6}
	assert.False(t, r.Contains(Point{Value: 2, Chroma: 3}), "lower value bound is exclusive when nonzero")
	assert.True(t, r.Contains(Point{Value: 4, Chroma: 3}), "upper value bound is inclusive")
	assert.True(t, r.Contains(Point{Value: 3, Chroma: 0}), "lower chroma bound 0 is inclusive")
	assert.True(t, r.Contains(Point{Value: 3, Chroma: 6}), "upper chroma bound is inclusive")
	assert.False(t, r.Contains(Point{Value: 3, Chroma: 6.01}))
}

func TestRectContainsNeighboringRectsPartitionTheLine(t *testing.T) {
	lo := Rect{VLo: 0, VHi: 4, CLo: 0, CHi: 6}
	hi := Rect{VLo: 4, VHi: 8, CLo: 0, CHi: 6}
	for _, v := range []float64{0, 1, 3.999, 4, 4.001, 7, 8} {
		p := Point{Value: v, Chroma: 3}
		inLo, inHi := lo.Contains(p), hi.Contains(p)
		assert.Falsef(t, inLo && inHi, "value %v matched both adjoining rects", v)
		assert.Truef(t, inLo || inHi, "value %v matched neither adjoining rect", v)
	}
}

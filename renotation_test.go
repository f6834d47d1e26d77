package munsellspace

import (
	"math"
	"testing"
)

func TestDatasetCoversFullGrid(t *testing.T) {
	d := getDataset()
	for family := FamilyBG; family <= FamilyB; family++ {
		for _, hueStep := range hueSteps {
			for value := 1; value <= 9; value++ {
				maxC := maxChromaByValue[value]
				for chroma := 2; chroma <= maxC; chroma += 2 {
					key := renotationKey{family: family, hueStep: hueStep, value: value, chroma: chroma}
					if _, ok := d.lookup(key); !ok {
						t.Fatalf("missing record %+v", key)
					}
				}
			}
		}
	}
}

func TestDatasetLuminanceCarriesMgOScaling(t *testing.T) {
	d := getDataset()
	rec, ok := d.lookup(renotationKey{family: FamilyR, hueStep: 5, value: 5, chroma: 6})
	if !ok {
		t.Fatal("missing 5R 5/6 record")
	}
	want := astmValueToY(5) * 0.975
	if math.Abs(rec.yScaled-want) > 1e-12 {
		t.Errorf("yScaled = %v, want %v", rec.yScaled, want)
	}
}

func TestDatasetRhoMonotoneInChroma(t *testing.T) {
	d := getDataset()
	prev := 0.0
	for chroma := 2; chroma <= maxChromaByValue[5]; chroma += 2 {
		rec, ok := d.lookup(renotationKey{family: FamilyG, hueStep: 7.5, value: 5, chroma: chroma})
		if !ok {
			t.Fatalf("missing record at chroma %d", chroma)
		}
		rho := math.Hypot(rec.x-illuminantCx, rec.y-illuminantCy)
		if rho <= prev {
			t.Errorf("rho not monotone at chroma %d: %v <= %v", chroma, rho, prev)
		}
		prev = rho
	}
}

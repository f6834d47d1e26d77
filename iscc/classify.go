package iscc

import (
	"sync"

	"github.com/colorscience/munsellspace"
)

// Result is the classifier's answer for one MunsellSpec.
type Result struct {
	ColorNumber int
	Official    string
	Revised     string
	Shade       string
}

// Classifier wraps an *Index with a small bounded LRU cache keyed on the
// quantized (family, hue, value, chroma) tuple. A single mutex guards the
// cache; a hit is a map lookup plus a move to the most-recently-used end,
// and a miss is one wedge scan, so contention stays below measurement
// noise.
type Classifier struct {
	idx *Index

	mu       sync.Mutex
	cacheCap int
	cacheMap map[cacheKey]Result
	order    []cacheKey
}

type cacheKey struct {
	family             munsellspace.FamilyCode
	hue, value, chroma int32 // quantized to 0.1
}

// NewClassifier wraps idx with an LRU cache of the given capacity. A
// capacity of 0 disables caching entirely.
func NewClassifier(idx *Index, cacheCapacity int) *Classifier {
	return &Classifier{
		idx:      idx,
		cacheCap: cacheCapacity,
		cacheMap: make(map[cacheKey]Result, cacheCapacity),
	}
}

func quantize(f float64) int32 { return int32(f*10 + 0.5) }

func keyOf(spec munsellspace.MunsellSpec) cacheKey {
	if spec.IsAchromatic() {
		return cacheKey{family: 0, hue: 0, value: quantize(spec.Value), chroma: -1}
	}
	return cacheKey{
		family: spec.Family,
		hue:    quantize(spec.Hue),
		value:  quantize(spec.Value),
		chroma: quantize(spec.Chroma),
	}
}

// Classify resolves a MunsellSpec to its ISCC-NBS color. Achromatic specs
// never consult wedges: they fall through the fixed value interval table.
// A spec outside every defined polygon in its wedge returns a NotFound
// error.
func (c *Classifier) Classify(spec munsellspace.MunsellSpec) (Result, error) {
	if spec.IsAchromatic() {
		cn, ok := achromaticColorNumber(spec.Value)
		if !ok {
			return Result{}, notFoundErr("classify", "value out of achromatic range")
		}
		return c.resultFor(cn)
	}

	key := keyOf(spec)
	if c.cacheCap > 0 {
		c.mu.Lock()
		if r, ok := c.cacheMap[key]; ok {
			for i, k := range c.order {
				if k == key {
					copy(c.order[i:], c.order[i+1:])
					c.order[len(c.order)-1] = key
					break
				}
			}
			c.mu.Unlock()
			return r, nil
		}
		c.mu.Unlock()
	}

	w := wedgeOf(spec)
	pt := Point{Value: spec.Value, Chroma: spec.Chroma}
	for _, poly := range c.idx.wedges[w] {
		if poly.Contains(pt) {
			res, err := c.resultFor(poly.ColorNumber)
			if err != nil {
				return Result{}, err
			}
			c.put(key, res)
			return res, nil
		}
	}
	return Result{}, notFoundErr("classify", "no polygon covers (value, chroma) in this wedge")
}

func (c *Classifier) put(key cacheKey, res Result) {
	if c.cacheCap <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.cacheMap[key]; !exists {
		if len(c.order) >= c.cacheCap {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.cacheMap, oldest)
		}
		c.order = append(c.order, key)
	}
	c.cacheMap[key] = res
}

func (c *Classifier) resultFor(colorNumber int) (Result, error) {
	def, ok := c.idx.colorDefs[colorNumber]
	if !ok {
		return Result{}, notFoundErr("classify", "color number has no ColorDef")
	}
	desc := BuildDescriptor(def)
	return Result{
		ColorNumber: colorNumber,
		Official:    desc.OfficialDescriptor,
		Revised:     desc.RevisedDescriptor,
		Shade:       desc.Shade,
	}, nil
}

// ClassifyRGB composes a Converter with Classify, surfacing the first
// error encountered. An OutOfGamut conversion still carries a best-effort
// spec, which is classified anyway.
func (c *Classifier) ClassifyRGB(conv *munsellspace.Converter, r, g, b uint8) (Result, error) {
	spec, err := conv.Convert(r, g, b)
	if err != nil {
		if kind, _ := munsellspace.KindOf(err); kind == munsellspace.ConvergenceFailed {
			return Result{}, err
		}
		// OutOfGamut still carries a best-effort spec; continue classifying it.
	}
	return c.Classify(spec)
}

func notFoundErr(op, msg string) error {
	return &munsellspace.Error{Kind: munsellspace.NotFound, Op: op, Msg: msg}
}

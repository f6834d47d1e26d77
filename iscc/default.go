package iscc

import "sync"

const defaultCacheCapacity = 512

var (
	defaultOnce       sync.Once
	defaultClassifier *Classifier
	defaultBuildErr   error
)

// DefaultClassifier returns a process-wide Classifier built once from the
// embedded tables, the same lazy-singleton shape the root package uses for
// its renotation dataset (renotation.go's getDataset). Safe for concurrent
// use; the embedded tables never fail validation, but the error return is
// kept so a future swap to an externally-loaded table degrades gracefully
// instead of panicking.
func DefaultClassifier() (*Classifier, error) {
	defaultOnce.Do(func() {
		defs, polys := BuildEmbeddedTables()
		idx, err := NewIndex(defs, polys)
		if err != nil {
			defaultBuildErr = err
			return
		}
		defaultClassifier = NewClassifier(idx, defaultCacheCapacity)
	})
	return defaultClassifier, defaultBuildErr
}

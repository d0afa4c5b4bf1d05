package engine

import (
	"context"
	"sync"
)

// LoadFunc produces the dataset. It runs at most once per Holder.
type LoadFunc func(ctx context.Context) (*Dataset, error)

// Holder owns the process-wide dataset. The first call to Dataset runs the
// loader; later calls return the same dataset (or the same error). There is
// no way to replace or mutate the dataset once loaded.
type Holder struct {
	load LoadFunc
	once sync.Once
	ds   *Dataset
	err  error
}

// NewHolder wraps a loader.
func NewHolder(load LoadFunc) *Holder {
	return &Holder{load: load}
}

// Dataset returns the loaded dataset, loading it on first use.
// ctx only affects the first call.
func (h *Holder) Dataset(ctx context.Context) (*Dataset, error) {
	h.once.Do(func() {
		h.ds, h.err = h.load(ctx)
	})
	return h.ds, h.err
}

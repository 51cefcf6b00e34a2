//
// tweak.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gc

import (
	"math"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// ErrTweakExhausted is returned when all 2^32 gate tweaks of a circuit
// have been allocated.
var ErrTweakExhausted = errors.New("gate tweaks exhausted")

// Tweaker allocates unique gate tweaks for one circuit garbled under
// one cipher key. The zero value is ready for use and starts from
// tweak 0. Tweaker is safe for concurrent use.
type Tweaker struct {
	next atomic.Uint64
}

// NewTweaker creates a tweaker whose first tweak is start.
func NewTweaker(start uint32) *Tweaker {
	t := new(Tweaker)
	t.next.Store(uint64(start))
	return t
}

// Next allocates the next tweak.
func (t *Tweaker) Next() (uint32, error) {
	return t.Reserve(1)
}

// Reserve allocates n consecutive tweaks and returns the first of
// them.
func (t *Tweaker) Reserve(n uint32) (uint32, error) {
	if n == 0 {
		return 0, errors.New("empty tweak reservation")
	}
	for {
		first := t.next.Load()
		end := first + uint64(n)
		if end > math.MaxUint32+1 {
			return 0, errors.Wrapf(ErrTweakExhausted,
				"reserving %d tweaks at %d", n, first)
		}
		if t.next.CompareAndSwap(first, end) {
			return uint32(first), nil
		}
	}
}

// Used returns the number of tweaks allocated so far, including the
// skipped ones below the start value.
func (t *Tweaker) Used() uint64 {
	return t.next.Load()
}

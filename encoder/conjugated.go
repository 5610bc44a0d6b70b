// SPDX-License-Identifier: MIT
package encoder

import (
	"fmt"

	"github.com/katalvlaran/molhash/core"
)

// conjugatedBase is the starting value of the fold.
const conjugatedBase int32 = 179426549

// Conjugated applies encoders in a fixed order and folds their outputs.
// With no encoders every atom encodes to the same constant.
type Conjugated struct {
	encoders []AtomEncoder
}

// Conjugate combines encoders in the given order.
//
// Errors:
//   - ErrNilEncoder if any element is nil.
func Conjugate(encoders ...AtomEncoder) (*Conjugated, error) {
	for i, e := range encoders {
		if e == nil {
			return nil, fmt.Errorf("Conjugate: index %d: %w", i, ErrNilEncoder)
		}
	}
	return &Conjugated{encoders: append([]AtomEncoder(nil), encoders...)}, nil
}

// Len returns the number of combined encoders.
func (c *Conjugated) Len() int { return len(c.encoders) }

// Encode folds h = 31*h + e.Encode(atom) over the encoders (int32 wrap-around).
func (c *Conjugated) Encode(atom *core.Atom, container core.Container) int32 {
	h := conjugatedBase
	for _, e := range c.encoders {
		h = 31*h + e.Encode(atom, container)
	}
	return h
}

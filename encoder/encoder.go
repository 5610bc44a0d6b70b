// SPDX-License-Identifier: MIT
package encoder

import "github.com/katalvlaran/molhash/core"

// AtomEncoder maps one atom, in the context of its container, to an integer.
type AtomEncoder interface {
	Encode(atom *core.Atom, c core.Container) int32
}

// Func adapts a function to AtomEncoder.
type Func func(atom *core.Atom, c core.Container) int32

// Encode calls f.
func (f Func) Encode(atom *core.Atom, c core.Container) int32 { return f(atom, c) }

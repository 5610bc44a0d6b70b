// SPDX-License-Identifier: MIT
package stereo

import "github.com/katalvlaran/molhash/core"

// Encoder injects stereo information into an invariant array.
type Encoder interface {
	// Encode writes configured values into next and reports whether any
	// centre was configured by this call.
	Encode(current, next []int64) bool

	// Reset clears configuration state.
	Reset()
}

// Factory creates an Encoder for one molecule.
type Factory interface {
	Create(c core.Container, graph [][]int) Encoder
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func(c core.Container, graph [][]int) Encoder

// Create calls f.
func (f FactoryFunc) Create(c core.Container, graph [][]int) Encoder { return f(c, graph) }

type empty struct{}

func (empty) Encode(_, _ []int64) bool { return false }
func (empty) Reset()                   {}

// Empty is the encoder that never changes anything.
var Empty Encoder = empty{}

type emptyFactory struct{}

func (emptyFactory) Create(core.Container, [][]int) Encoder { return Empty }

// EmptyFactory always creates Empty.
var EmptyFactory Factory = emptyFactory{}

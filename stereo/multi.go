// SPDX-License-Identifier: MIT
package stereo

import "github.com/katalvlaran/molhash/core"

// Multi runs a set of encoders; each one stays in the set only until it
// configures, and Reset restores the full set.
type Multi struct {
	encoders     []Encoder
	unconfigured []bool
}

// NewMulti returns an encoder over encoders, or Empty when there are none.
func NewMulti(encoders []Encoder) Encoder {
	if len(encoders) == 0 {
		return Empty
	}
	m := &Multi{
		encoders:     append([]Encoder(nil), encoders...),
		unconfigured: make([]bool, len(encoders)),
	}
	m.Reset()
	return m
}

// Encode calls every unconfigured encoder and retires those that configure.
func (m *Multi) Encode(current, next []int64) bool {
	configured := false
	for i, e := range m.encoders {
		if !m.unconfigured[i] {
			continue
		}
		if e.Encode(current, next) {
			m.unconfigured[i] = false
			configured = true
		}
	}
	return configured
}

// Reset marks every encoder unconfigured and resets it.
func (m *Multi) Reset() {
	for i, e := range m.encoders {
		m.unconfigured[i] = true
		e.Reset()
	}
}

// conjugated runs several independent encoders side by side.
type conjugated []Encoder

func (c conjugated) Encode(current, next []int64) bool {
	changed := false
	for _, e := range c {
		if e.Encode(current, next) {
			changed = true
		}
	}
	return changed
}

func (c conjugated) Reset() {
	for _, e := range c {
		e.Reset()
	}
}

type conjugatedFactory []Factory

// Conjugate merges factories; the created encoder runs all of theirs.
// Nil factories are skipped and empty encoders dropped.
func Conjugate(factories ...Factory) Factory {
	var fs conjugatedFactory
	for _, f := range factories {
		if f != nil {
			fs = append(fs, f)
		}
	}
	switch len(fs) {
	case 0:
		return EmptyFactory
	case 1:
		return fs[0]
	}
	return fs
}

func (fs conjugatedFactory) Create(c core.Container, graph [][]int) Encoder {
	var encs conjugated
	for _, f := range fs {
		if e := f.Create(c, graph); e != Empty {
			encs = append(encs, e)
		}
	}
	switch len(encs) {
	case 0:
		return Empty
	case 1:
		return encs[0]
	}
	return encs
}

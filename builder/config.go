// SPDX-License-Identifier: MIT
// Package: molhash/builder
//
// config.go - resolved configuration shared by all constructors.
package builder

import "strconv"

// builderConfig carries the resolved options. It is passed by value.
type builderConfig struct {
	// idFn maps a local index to the ID suffix appended to a constructor prefix.
	idFn func(int) string

	// aromaticAtoms flags atoms of Kekule rings as aromatic (default true).
	aromaticAtoms bool
}

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:          strconv.Itoa,
		aromaticAtoms: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// atomID returns prefix + idFn(i).
func (c builderConfig) atomID(prefix string, i int) string {
	return prefix + c.idFn(i)
}

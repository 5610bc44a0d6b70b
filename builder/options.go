// SPDX-License-Identifier: MIT
// Package: molhash/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic.
package builder

// BuilderOption customizes constructors by mutating a builderConfig before
// the molecule is built.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the atom ID suffix generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithoutAromaticFlags keeps Kekule rings' alternating bond orders but
// leaves atoms and bonds unflagged.
func WithoutAromaticFlags() BuilderOption {
	return func(c *builderConfig) { c.aromaticAtoms = false }
}

// SPDX-License-Identifier: MIT
// Package: molhash/atomhash
//
// errors.go - sentinel errors for the atomhash package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Context is attached with %w at the call site.
//   - Configuration errors surface from constructors; Generate fails only on
//     inconsistent input (ErrBondEndpoint).
package atomhash

import "errors"

var (
	// ErrNegativeDepth indicates a depth < 0.
	ErrNegativeDepth = errors.New("atomhash: negative depth")

	// ErrNilSeedGenerator indicates a missing seed generator.
	ErrNilSeedGenerator = errors.New("atomhash: nil seed generator")

	// ErrNilFactory indicates a nil stereo encoder factory.
	ErrNilFactory = errors.New("atomhash: nil stereo factory")

	// ErrNilSuppression indicates a nil atom suppression policy.
	ErrNilSuppression = errors.New("atomhash: nil atom suppression")

	// ErrNilGenerator indicates a missing wrapped generator.
	ErrNilGenerator = errors.New("atomhash: nil generator")

	// ErrNilFinder indicates a nil equivalent-set finder.
	ErrNilFinder = errors.New("atomhash: nil equivalent set finder")

	// ErrOptionViolation indicates a meaningless option value (negative pass
	// limit, nil custom encoder, nil pseudorandom).
	ErrOptionViolation = errors.New("atomhash: invalid option value")

	// ErrBondEndpoint indicates a bond whose endpoint is not in the container.
	ErrBondEndpoint = errors.New("atomhash: bond endpoint not in container")
)

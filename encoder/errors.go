// SPDX-License-Identifier: MIT
package encoder

import "errors"

var (
	// ErrNilEncoder indicates a nil AtomEncoder was supplied.
	ErrNilEncoder = errors.New("encoder: nil atom encoder")

	// ErrUnknownEncoder indicates an unregistered basic encoder name.
	ErrUnknownEncoder = errors.New("encoder: unknown basic encoder")
)

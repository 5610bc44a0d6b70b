// SPDX-License-Identifier: MIT
package molfile

import "errors"

var (
	// ErrTruncated indicates a record ending before its atom or bond block.
	ErrTruncated = errors.New("molfile: truncated record")

	// ErrBadCounts indicates an unreadable counts line.
	ErrBadCounts = errors.New("molfile: bad counts line")

	// ErrBadAtom indicates an unreadable atom line.
	ErrBadAtom = errors.New("molfile: bad atom line")

	// ErrBadBond indicates an unreadable bond line.
	ErrBadBond = errors.New("molfile: bad bond line")

	// ErrBadProperty indicates an unreadable "M  " property line.
	ErrBadProperty = errors.New("molfile: bad property line")

	// ErrUnsupportedVersion indicates a V3000 (or unknown) ctab.
	ErrUnsupportedVersion = errors.New("molfile: unsupported ctab version")
)

// SPDX-License-Identifier: MIT
package stereo

// Multipliers applied to centre invariants once configured.
const (
	AnticlockwiseFactor int64 = 15543053
	ClockwiseFactor     int64 = 15521419
)

// GeometryEncoder configures a set of centres from a permutation parity and
// a geometric parity. It configures at most once until Reset.
type GeometryEncoder struct {
	centres     []int
	permutation PermutationParity
	geometric   GeometricParity
	configured  bool
}

// NewGeometryEncoder returns an encoder over the given centre indices.
func NewGeometryEncoder(centres []int, permutation PermutationParity, geometric GeometricParity) *GeometryEncoder {
	return &GeometryEncoder{
		centres:     append([]int(nil), centres...),
		permutation: permutation,
		geometric:   geometric,
	}
}

// Encode configures when the permutation parity is defined (no ties).
// q = permutation × geometric; q > 0 multiplies the centres by
// AnticlockwiseFactor, q < 0 by ClockwiseFactor, q == 0 leaves them. The
// call reports true whenever the permutation parity was defined.
func (e *GeometryEncoder) Encode(current, next []int64) bool {
	if e.configured {
		return false
	}
	p := e.permutation.Parity(current)
	if p == 0 {
		return false
	}
	q := e.geometric.Parity() * p
	switch {
	case q > 0:
		for _, i := range e.centres {
			next[i] = current[i] * AnticlockwiseFactor
		}
	case q < 0:
		for _, i := range e.centres {
			next[i] = current[i] * ClockwiseFactor
		}
	}
	e.configured = true
	return true
}

// Reset allows the encoder to configure again.
func (e *GeometryEncoder) Reset() { e.configured = false }

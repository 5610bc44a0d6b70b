// SPDX-License-Identifier: MIT
package mix

// Pseudorandom is a deterministic single-step generator.
// Implementations must be pure: equal input ⇒ equal output.
type Pseudorandom interface {
	Next(seed int64) int64
}

// Xorshift is Marsaglia's 64-bit xorshift with shifts (21, 35, 4).
// The right shift is logical (unsigned).
type Xorshift struct{}

// Next applies one xorshift step. Zero is a fixed point.
func (Xorshift) Next(seed int64) int64 {
	seed ^= seed << 21
	seed ^= int64(uint64(seed) >> 35)
	seed ^= seed << 4

	return seed
}

// Mixer binds Rotate/RotateN/Distribute to a Pseudorandom.
// The zero value uses Xorshift.
type Mixer struct {
	p Pseudorandom
}

// New returns a Mixer over p; a nil p selects Xorshift.
func New(p Pseudorandom) Mixer {
	return Mixer{p: p}
}

// Default is the Xorshift mixer used by the package-level helpers.
var Default = New(Xorshift{})

// Rotate applies one pseudorandom step.
func (m Mixer) Rotate(seed int64) int64 {
	if m.p == nil {
		return Xorshift{}.Next(seed)
	}
	return m.p.Next(seed)
}

// RotateN applies n pseudorandom steps; n <= 0 returns value unchanged.
func (m Mixer) RotateN(value int64, n int) int64 {
	for ; n > 0; n-- {
		value = m.Rotate(value)
	}
	return value
}

// Distribute rotates value 1 + (value & 0x7) times.
func (m Mixer) Distribute(value int64) int64 {
	return m.RotateN(value, 1+int(value&0x7))
}

// Rotate applies one Xorshift step.
func Rotate(seed int64) int64 { return Default.Rotate(seed) }

// RotateN applies n Xorshift steps.
func RotateN(value int64, n int) int64 { return Default.RotateN(value, n) }

// Distribute spreads value with the default mixer.
func Distribute(value int64) int64 { return Default.Distribute(value) }

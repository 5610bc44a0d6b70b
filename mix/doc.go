// SPDX-License-Identifier: MIT

// Package mix provides the deterministic pseudorandom step used to spread
// atom invariants over the 64-bit space.
//
// Overview:
//   - Pseudorandom is a pure int64 → int64 step; Xorshift is the default.
//   - Rotate applies one step, RotateN applies n steps (n=0 ⇒ identity).
//   - Distribute rotates a value 1..8 times, the count taken from its own
//     low three bits: 1 + (value & 0x7).
//
// All functions are stateless and safe for concurrent use.
//
// Complexity:
//   - Rotate O(1); RotateN O(n); Distribute O(1) (at most 8 steps).
package mix

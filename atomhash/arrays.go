// SPDX-License-Identifier: MIT
package atomhash

// Clone returns a fresh copy of src.
func Clone(src []int64) []int64 {
	return append(make([]int64, 0, len(src)), src...)
}

// CopyN copies the first n values of src into dst. n is caller-controlled;
// it panics like a slice expression when n exceeds either length.
func CopyN(dst, src []int64, n int) {
	copy(dst[:n], src[:n])
}

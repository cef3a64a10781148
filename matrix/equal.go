// SPDX-License-Identifier: MIT

package matrix

import "hash/maphash"

// hashMultiplier is the fixed accumulator multiplier used by Hash and HashFunc.
const hashMultiplier = 31

// hashSeed is fixed for the life of the process so equal matrices hash equal.
var hashSeed = maphash.MakeSeed()

// Equal reports whether a and b have the same shape and every pair of
// corresponding cells compares equal with ==. Differing shapes short-circuit
// to false. Two nil matrices are equal; a nil and a non-nil one are not.
// Complexity: O(w*h).
func Equal[T comparable](a, b *Dense[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares cells with eq. It works for any T,
// including types that are not comparable (slices, maps, funcs).
// Complexity: O(w*h) calls to eq.
func (m *Dense[T]) EqualFunc(other *Dense[T], eq func(a, b T) bool) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.w != other.w || m.h != other.h {
		return false
	}

	var i, j int
	for i = 0; i < m.h; i++ {
		a, b := m.rows[i], other.rows[i]
		for j = 0; j < m.w; j++ {
			if !eq(a[j], b[j]) {
				return false
			}
		}
	}

	return true
}

// Hash returns a hash of the shape and contents of m, consistent with Equal:
// Equal(a, b) implies Hash(a) == Hash(b) within one process.
//
// Cells equal to the zero value of T are treated as absent and contribute
// only the multiplier step. Hash values are not stable across processes.
// Complexity: O(w*h).
func Hash[T comparable](m *Dense[T]) uint64 {
	var zero T

	return m.HashFunc(func(v T) uint64 {
		if v == zero {
			return 0
		}

		return maphash.Comparable(hashSeed, v)
	})
}

// HashFunc folds the shape and every cell (row-major) into a multiplier-based
// accumulator, hashing cells with h. Callers that want absent cells to be
// neutral should return 0 for them.
// A nil matrix hashes to 0, matching Equal's nil-equals-nil rule.
// Complexity: O(w*h) calls to h.
func (m *Dense[T]) HashFunc(h func(T) uint64) uint64 {
	if m == nil {
		return 0
	}

	code := uint64(m.w) + hashMultiplier*uint64(m.h)

	var i, j int
	for i = 0; i < m.h; i++ {
		r := m.rows[i]
		for j = 0; j < m.w; j++ {
			code = code*hashMultiplier + h(r[j])
		}
	}

	return code
}

// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for physical storage state.
//
// Purpose:
//   - Expose unexported storage details to matrix_test ONLY, so capacity
//     behavior (geometric growth, no shrink, spare reuse) can be asserted
//     without widening the production API.
//
// Build Policy:
//   - A _test.go file in package matrix: compiled only by `go test`.

// Spare_TestOnly reports whether physical row slot i (i >= Height()) holds a
// recycled buffer that the next InsertRow can reuse.
func Spare_TestOnly[T any](m *Dense[T], i int) bool {
	return i >= m.h && i < len(m.rows) && len(m.rows[i]) == m.colCap && m.rows[i] != nil
}

// RawRow_TestOnly returns the full physical buffer of live row i, including
// stale cells beyond Width().
func RawRow_TestOnly[T any](m *Dense[T], i int) []T {
	return m.rows[i]
}

// GrowthFactor_TestOnly returns the resolved growth factor of m.
func GrowthFactor_TestOnly[T any](m *Dense[T]) int {
	return m.growth
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicRowCapacityNegative_TestOnly = panicRowCapacityNegative
	PanicColCapacityNegative_TestOnly = panicColCapacityNegative
	PanicGrowthFactorInvalid_TestOnly = panicGrowthFactorInvalid
)

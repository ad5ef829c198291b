// Package play holds small helpers used to exercise the test setup.
package play

// Add returns the sum of a and b
func Add(a, b int) int {
	return a + b
}

// SPDX-License-Identifier: MIT

package engine

// Test bridge: exposes private layout facts to engine_test without widening
// the production API.

// ProductCount returns the size of the truncated product table of S.
func ProductCount[S Shape]() int {
	return len(layoutOf[S]().products)
}

// SPDX-License-Identifier: MIT
package atomhash

import (
	"fmt"

	"github.com/katalvlaran/molhash/core"
)

// initialRowCap is the starting capacity of each adjacency row.
const initialRowCap = 4

// ToAdjList converts the container's bonds into an adjacency list over
// dense atom indices. graph[v] lists neighbors in bond order; its length is
// exactly the explicit degree of v.
//
// Implementation:
//   - Stage 1: One pass over the bonds; rows start at initialRowCap and
//     double when full.
//   - Stage 2: Trim every row to its degree.
//
// Errors:
//   - ErrBondEndpoint when a bond references an atom absent from the
//     container. No partial list is returned.
//
// Complexity:
//   - Time O(n + b), Space O(n + b).
func ToAdjList(c core.Container) ([][]int, error) {
	n := c.AtomCount()
	graph := make([][]int, n)
	degree := make([]int, n)

	for i, b := range c.Bonds() {
		u, v := c.IndexOf(b.Begin), c.IndexOf(b.End)
		if u < 0 || v < 0 {
			return nil, fmt.Errorf("ToAdjList: bond at index %d references an atom absent from the container: %w", i, ErrBondEndpoint)
		}
		graph[u] = appendNeighbor(graph[u], degree[u], v)
		degree[u]++
		graph[v] = appendNeighbor(graph[v], degree[v], u)
		degree[v]++
	}

	for v := range graph {
		graph[v] = append(make([]int, 0, degree[v]), graph[v][:degree[v]]...)
	}
	return graph, nil
}

// appendNeighbor writes w at position d, growing row by doubling.
func appendNeighbor(row []int, d, w int) []int {
	if row == nil {
		row = make([]int, initialRowCap)
	} else if d == len(row) {
		grown := make([]int, 2*len(row))
		copy(grown, row)
		row = grown
	}
	row[d] = w
	return row
}

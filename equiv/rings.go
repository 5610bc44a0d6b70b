// SPDX-License-Identifier: MIT
// File: rings.go
// Role: Ring membership via bridge detection (iterative lowlink DFS).
package equiv

// Vertex visitation states.
const (
	White = iota // unvisited
	Gray         // on the DFS stack
	Black        // finished
)

type frame struct {
	v, parent int
	next      int  // next neighbor position to inspect
	skipped   bool // parent edge already skipped once
}

// Cyclic reports, per vertex, whether it lies on a cycle: it is an endpoint
// of at least one edge that is not a bridge.
//
// Implementation:
//   - Iterative DFS with discovery times and lowlinks.
//   - The edge back to the parent is skipped once, so a parallel bond to
//     the parent still counts as a cycle.
//   - A tree edge (p, v) is not a bridge iff low[v] <= disc[p]; both
//     endpoints are marked.
//
// Complexity: O(V + E) time, O(V) space.
func Cyclic(graph [][]int) []bool {
	n := len(graph)
	state := make([]int, n)
	disc := make([]int, n)
	low := make([]int, n)
	cyclic := make([]bool, n)
	clock := 0

	var stack []frame
	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		clock++
		disc[root], low[root], state[root] = clock, clock, Gray
		stack = append(stack[:0], frame{v: root, parent: -1})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(graph[top.v]) {
				w := graph[top.v][top.next]
				top.next++
				if w == top.parent && !top.skipped {
					top.skipped = true
					continue
				}
				if state[w] == White {
					clock++
					disc[w], low[w], state[w] = clock, clock, Gray
					stack = append(stack, frame{v: w, parent: top.v})
					continue
				}
				if disc[w] < low[top.v] {
					low[top.v] = disc[w]
				}
				continue
			}

			v, p := top.v, top.parent
			state[v] = Black
			stack = stack[:len(stack)-1]
			if p < 0 {
				continue
			}
			if low[v] < low[p] {
				low[p] = low[v]
			}
			if low[v] <= disc[p] {
				cyclic[v], cyclic[p] = true, true
			}
		}
	}

	return cyclic
}

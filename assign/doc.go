// Package assign solves the square assignment problem on an integer cost
// matrix: pick one cell per row and per column so that rows map to columns
// bijectively.
//
// It includes two solvers behind the Solver interface:
//
//   - Hungarian: Kuhn–Munkres with row/column potentials. O(n³) time,
//     O(n) extra space; guarantees the minimum total cost.
//   - Greedy: rows in order, each takes its cheapest unused column.
//     O(n²) time; a fast baseline with no optimality guarantee.
//
// Results are Assignments: a[i] is the column chosen for row i, and every
// valid Assignment is a permutation of 0..n-1 (see ValidatePermutation).
// Both solvers are deterministic: ties resolve to the lowest column index
// reached by their fixed scan order.
//
// An empty 0×0 matrix is solved by the empty Assignment.
package assign

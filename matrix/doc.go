// SPDX-License-Identifier: MIT

// Package matrix provides the dense integer cost matrix used by the pairing
// engine.
//
// The matrix package provides:
//
//   - Matrix, a minimal read/write interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major int64 implementation with bounds-checked accessors.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateSameShape) that
//     return wrapped sentinel errors instead of panicking.
//   - Element-wise Add, used to overlay noise on a base cost matrix.
//
// Cells hold *costs*: lower means a more desirable pairing. Values are exact
// integers, so cost sums never drift and ties are detected exactly.
//
// Zero-sized matrices (0×0) are legal and model an empty roster.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Add: O(r*c).
package matrix

// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// kernel. All routines MUST return these sentinels and tests MUST check
// them via errors.Is. No routine panics on user-triggered conditions.

package linalg

import "errors"

var (
	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols != b.Rows, or ragged row records.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the
	// input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric
	// violated symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("linalg: matrix is not symmetric within tol")

	// ErrEigenFailed indicates that the Jacobi routine failed to bring
	// the off-diagonal mass under tolerance within the iteration cap.
	// Callers should surface an explicit "not enough data" state rather
	// than a corrupted chart.
	ErrEigenFailed = errors.New("linalg: eigen decomposition failed")

	// ErrEmptyMatrix indicates a nil or zero-row matrix where content
	// was required.
	ErrEmptyMatrix = errors.New("linalg: empty matrix")
)

// SPDX-License-Identifier: MIT

// Package freqtab builds and validates the square frequency tables consumed
// by the exact symmetry tests in package bowker.
//
// A FrequencyTable is an immutable K×K matrix of non-negative integer counts,
// K between MinOrder (2) and MaxOrder (9). The order bound is practical, not
// mathematical: exact enumeration cost is exponential in the off-diagonal
// margins, and tables beyond order 9 are never tractable that way.
//
// Two construction paths are provided:
//
//   - New / FromFloats — wrap an already-tabulated count matrix, rejecting
//     non-square shapes, out-of-range orders, negative, non-integer, or
//     non-finite entries before any computation runs.
//   - Tabulate — aggregate case-level records (optionally weighted by a
//     non-negative integer weight, optionally filtered by a predicate) into
//     a table, padding absent level combinations with zero counts.
//
// All validation failures are sentinel errors matched with errors.Is.
package freqtab

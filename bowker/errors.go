// SPDX-License-Identifier: MIT

package bowker

import "errors"

var (
	// ErrNilTable indicates a nil frequency table was passed to the runner.
	ErrNilTable = errors.New("bowker: nil frequency table")
	// ErrBadPrecision indicates Options.Precision below MinPrecision.
	ErrBadPrecision = errors.New("bowker: precision bound must be at least 1")
	// ErrBadWorkers indicates a negative Options.Workers.
	ErrBadWorkers = errors.New("bowker: worker count must be non-negative")
	// ErrSpaceTooLarge indicates the permutation space exceeds
	// Options.MaxPermutations (or overflows uint64). Reported before any
	// enumeration starts; choose a smaller table or raise the ceiling.
	ErrSpaceTooLarge = errors.New("bowker: permutation space exceeds the configured ceiling")
	// ErrInsufficientPrecision indicates the accumulated weight underflowed
	// to a non-positive p-value under the chosen scaling. The diagnostic
	// counts in Result remain valid; adjust Options.Precision and retry.
	ErrInsufficientPrecision = errors.New("bowker: p-value underflowed; adjust the precision bound")
)

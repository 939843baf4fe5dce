// SPDX-License-Identifier: MIT

package freqtab

import "errors"

var (
	// ErrNilTable indicates a nil *FrequencyTable was passed to an accessor.
	ErrNilTable = errors.New("freqtab: nil frequency table")
	// ErrNonSquare indicates the count matrix has rows of differing length.
	ErrNonSquare = errors.New("freqtab: count matrix must be square")
	// ErrOrderOutOfRange indicates the table order is outside [MinOrder, MaxOrder].
	ErrOrderOutOfRange = errors.New("freqtab: table order must be between 2 and 9")
	// ErrNegativeCount indicates a negative cell count.
	ErrNegativeCount = errors.New("freqtab: counts must be non-negative")
	// ErrNonIntegerCount indicates a fractional cell count.
	ErrNonIntegerCount = errors.New("freqtab: counts must be whole numbers")
	// ErrNonFiniteCount indicates a NaN or ±Inf cell count.
	ErrNonFiniteCount = errors.New("freqtab: counts must be finite")
	// ErrIndexOutOfRange indicates a cell index outside [0, order).
	ErrIndexOutOfRange = errors.New("freqtab: cell index out of range")
	// ErrLevelOutOfRange indicates a case record references a level outside [0, order).
	ErrLevelOutOfRange = errors.New("freqtab: case level out of range")
	// ErrBadWeight indicates a case weight that is not a non-negative finite integer.
	ErrBadWeight = errors.New("freqtab: case weight must be a non-negative integer")
)

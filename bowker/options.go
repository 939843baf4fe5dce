// SPDX-License-Identifier: MIT

package bowker

// DefaultPrecision is the precision bound k used by DefaultOptions. With
// binary64 accumulation the rescaled exponent stays below 2^k = 1024, the
// largest finite power of two a float64 can hold.
const DefaultPrecision = 10

// MinPrecision is the smallest accepted precision bound.
const MinPrecision = 1

// Options configures the exact test runner.
//
// Fields:
//   - Precision       — the bound k from the scaling policy: weighted sums are
//     kept within roughly 2^(2^k). Smaller k reduces overflow risk at the cost
//     of accuracy; values above 10 exceed the binary64 exponent budget and
//     only make sense for wider accumulators.
//   - MaxPermutations — ceiling on the product-space size Π(margin+1);
//     0 means unlimited. Exceeding it fails fast with ErrSpaceTooLarge
//     before enumeration starts.
//   - Workers         — number of goroutines enumerating disjoint slices of the
//     permutation space. 0 or 1 means sequential. Results are identical up
//     to floating-point summation order.
type Options struct {
	Precision       int
	MaxPermutations uint64
	Workers         int
}

// DefaultOptions returns the recommended configuration: precision bound 10,
// unlimited space, sequential enumeration.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision, MaxPermutations: 0, Workers: 1}
}

// validateOptions checks internal consistency of opts. O(1).
func validateOptions(opts Options) error {
	if opts.Precision < MinPrecision {
		return ErrBadPrecision
	}
	if opts.Workers < 0 {
		return ErrBadWorkers
	}

	return nil
}

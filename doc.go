// Package symmetria computes exact (permutation-based) tests of symmetry
// for square contingency tables, together with the descriptive agreement
// statistics usually reported alongside them.
//
// 🚀 What is symmetria?
//
//	A small, deterministic library for categorical agreement analysis:
//		• freqtab/      — square K×K frequency tables, validation, case-level tabulation
//		• bowker/       — exact Bowker test of symmetry (McNemar for K=2),
//		                  log-scaled weight accumulation, optional parallel enumeration
//		• agreement/    — percent agreement and Cohen's kappa
//		• cmd/symmetria — CLI shell: CSV counts in, test report out
//
// ✨ Why choose symmetria?
//
//   - Exact, not asymptotic — the p-value is computed by exhaustively
//     enumerating every reassignment of each mirrored cell pair's counts,
//     so it stays valid on sparse tables where chi-square approximations fail
//   - Overflow-safe — combinatorial weights live in log space and the
//     accumulator is rescaled by a power of two chosen from an explicit
//     precision bound
//   - Deterministic — fixed enumeration order, fixed reduction order,
//     reproducible results with or without worker parallelism
//
// Quick start:
//
//	t, _ := freqtab.New([][]int64{
//	    {0, 8, 0},
//	    {0, 0, 1},
//	    {0, 0, 0},
//	})
//	res, _ := bowker.Exact(t, bowker.DefaultOptions())
//	fmt.Println(res.PValue) // 0.0078125
//
// Enumeration cost grows as Π(margin+1) over the table's mirrored cell
// pairs; the Options ceiling lets callers reject infeasible spaces up front.
package symmetria

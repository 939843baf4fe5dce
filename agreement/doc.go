// SPDX-License-Identifier: MIT

// Package agreement computes the descriptive agreement statistics usually
// reported next to a symmetry test: the observed proportion of agreement
// (diagonal mass) and Cohen's kappa, its chance-corrected form.
//
// Both statistics are pure O(K²) folds over a freqtab.FrequencyTable and
// carry no inferential machinery — exact inference lives in package bowker.
package agreement

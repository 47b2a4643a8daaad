// SPDX-License-Identifier: MIT

package corrgraph

import "math"

// DefaultThreshold is the correlation threshold used by DefaultOptions.
// Pairs correlated at or above it are considered collinear.
const DefaultThreshold = 0.9

// Options contains tunable parameters for graph construction.
type Options struct {
	// Threshold is the minimum correlation, in [0,1], at which a feature
	// pair is linked. Matrix entries ≥ Threshold become edges.
	Threshold float64
}

// DefaultOptions returns an Options with Threshold=DefaultThreshold (0.9).
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// validate reports ErrBadThreshold for thresholds outside [0,1] or NaN.
func (o Options) validate() error {
	if math.IsNaN(o.Threshold) || o.Threshold < 0 || o.Threshold > 1 {
		return ErrBadThreshold
	}
	return nil
}

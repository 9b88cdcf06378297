package survey

import (
	"fmt"
	"math"
	"slices"
)

// weightTolerance bounds how far a probability vector may drift from summing to one
const weightTolerance = 1e-9

// Correlation maps each value of an anchor question to a probability vector
// over a dependent option set.
type Correlation struct {
	options OptionSet
	weights map[string][]float64
}

// NewCorrelation validates and builds a correlation table. Every vector must
// have one non-negative weight per option and sum to 1.
func NewCorrelation(options OptionSet, weights map[string][]float64) (*Correlation, error) {
	if options.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyOptionSet, options.Name())
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: no vectors for %s", ErrMalformedWeights, options.Name())
	}

	c := &Correlation{
		options: options,
		weights: make(map[string][]float64, len(weights)),
	}

	for anchor, vec := range weights {
		if len(vec) != options.Len() {
			return nil, fmt.Errorf("%w: %q has %d weights, %s has %d options",
				ErrMalformedWeights, anchor, len(vec), options.Name(), options.Len())
		}

		sum := 0.0
		for _, w := range vec {
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%w: %q has weight %v", ErrMalformedWeights, anchor, w)
			}
			sum += w
		}
		if math.Abs(sum-1) > weightTolerance {
			return nil, fmt.Errorf("%w: %q sums to %v", ErrMalformedWeights, anchor, sum)
		}

		c.weights[anchor] = slices.Clone(vec)
	}

	return c, nil
}

// MustCorrelation is NewCorrelation for package-level tables; it panics on error
func MustCorrelation(options OptionSet, weights map[string][]float64) *Correlation {
	c, err := NewCorrelation(options, weights)
	if err != nil {
		panic(err)
	}
	return c
}

// Options returns the dependent option set
func (c *Correlation) Options() OptionSet { return c.options }

// Weights returns a copy of the vector for anchor
func (c *Correlation) Weights(anchor string) ([]float64, bool) {
	vec, ok := c.weights[anchor]
	if !ok {
		return nil, false
	}
	return slices.Clone(vec), true
}

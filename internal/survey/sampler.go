package survey

import (
	"fmt"
	"math/rand/v2"
)

// pcgStream is the second PCG word; the seed alone selects the sequence
const pcgStream = 0x5eed_5a3b_1e5c_a1e5

// Sampler draws survey answers from a single seeded source.
// It owns its random source, so two samplers with the same seed produce the same draws.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	rand *rand.Rand
}

// NewSampler returns a sampler seeded with seed
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rand: rand.New(rand.NewPCG(seed, pcgStream))}
}

// Choice draws one label uniformly. Catalog sets are never empty; an empty set panics.
func (s *Sampler) Choice(o OptionSet) string {
	return o.Label(s.rand.IntN(o.Len()))
}

// Scale draws a whole point on the 1-5 scale
func (s *Sampler) Scale() float64 {
	return float64(scalePoints[s.rand.IntN(len(scalePoints))])
}

// LowConcern draws 1 or 2
func (s *Sampler) LowConcern() float64 {
	return float64(lowConcernPoints[s.rand.IntN(len(lowConcernPoints))])
}

// NoisyScale draws a scale point and perturbs it
func (s *Sampler) NoisyScale() float64 {
	return s.PerturbAndClamp(s.Scale())
}

// TopK draws k distinct labels without replacement, in selection order
func (s *Sampler) TopK(o OptionSet, k int) ([]string, error) {
	n := o.Len()
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: %d of %d %s labels", ErrInsufficientOptions, k, n, o.Name())
	}

	// Partial Fisher-Yates over the index space
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	picked := make([]string, k)
	for i := 0; i < k; i++ {
		j := i + s.rand.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		picked[i] = o.Label(idx[i])
	}

	return picked, nil
}

// PerturbAndClamp adds N(0, NoiseStdDev) noise and clamps into [ScaleMin, ScaleMax].
// The result is usually not a whole number.
func (s *Sampler) PerturbAndClamp(v float64) float64 {
	return Clamp(v + s.rand.NormFloat64()*NoiseStdDev)
}

// Clamp bounds v to the closed scale range
func Clamp(v float64) float64 {
	return min(max(v, ScaleMin), ScaleMax)
}

// Correlated draws from c's options using the vector for anchor.
// An anchor without a vector is an error, never a silent fallback.
func (s *Sampler) Correlated(anchor string, c *Correlation) (string, error) {
	vec, ok := c.weights[anchor]
	if !ok {
		return "", fmt.Errorf("%w: %q for %s", ErrUnknownAnchor, anchor, c.options.Name())
	}
	return c.options.Label(s.weighted(vec)), nil
}

// weighted returns an index drawn with the given probabilities.
// Zero-weight entries are never returned.
func (s *Sampler) weighted(vec []float64) int {
	r := s.rand.Float64()
	last := 0
	acc := 0.0
	for i, w := range vec {
		if w == 0 {
			continue
		}
		acc += w
		last = i
		if r < acc {
			return i
		}
	}
	// Rounding left r just above the cumulative sum
	return last
}

// Package survey synthesizes respondent records for the AI-in-education attitude survey.
package survey

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Config configures a Synthesizer
type Config struct {
	// Seed selects the random sequence; equal seeds give equal datasets
	Seed uint64

	// Rules run in order on every record; nil means DefaultRules
	Rules []Rule

	Logger *zap.Logger

	// OnRecord, if set, is called after each record is finished
	OnRecord func(index int)
}

// Synthesizer generates survey datasets
type Synthesizer struct {
	seed     uint64
	rules    []Rule
	logger   *zap.Logger
	onRecord func(int)
}

// New creates a synthesizer from cfg
func New(cfg Config) *Synthesizer {
	rules := cfg.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Synthesizer{
		seed:     cfg.Seed,
		rules:    rules,
		logger:   logger.Named("synth"),
		onRecord: cfg.OnRecord,
	}
}

// Seed returns the seed every Generate call starts from
func (s *Synthesizer) Seed() uint64 { return s.seed }

// Generate produces n records in index order. Each call restarts from the
// configured seed, so repeated calls return identical datasets.
func (s *Synthesizer) Generate(ctx context.Context, n int) (Dataset, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	s.logger.Debug("Generating dataset",
		zap.Int("records", n),
		zap.Uint64("seed", s.seed),
		zap.Int("rules", len(s.rules)))

	sampler := NewSampler(s.seed)
	data := make(Dataset, 0, n)

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := s.record(sampler)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		data = append(data, rec)

		if s.onRecord != nil {
			s.onRecord(i)
		}
	}

	s.logger.Debug("Dataset generated", zap.Int("records", len(data)))
	return data, nil
}

// record draws the base answers for one respondent, then runs the rule chain
func (s *Synthesizer) record(sampler *Sampler) (Record, error) {
	base, err := drawBase(sampler)
	if err != nil {
		return Record{}, err
	}

	rec, err := ApplyRules(base, s.rules, sampler)
	if err != nil {
		return Record{}, err
	}

	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// drawBase samples every field independently, except readiness and benefit
// which start from role-dependent values.
func drawBase(s *Sampler) (Record, error) {
	var r Record

	r.Role = s.Choice(Roles)
	r.Institution = s.Choice(Institutions)
	r.Experience = s.Choice(Experience)
	r.Familiarity = s.Choice(Familiarity)
	r.Readiness = baseReadiness(r.Role)

	r.PersonalizedLearning = s.NoisyScale()
	r.AdministrativeEfficiency = s.NoisyScale()
	r.StudentEngagement = s.NoisyScale()
	r.ContentCreation = s.NoisyScale()
	r.TimelyFeedback = s.NoisyScale()
	r.TaskAutomation = s.NoisyScale()

	switch r.Role {
	case RoleITImplementer, RoleEducator:
		r.Benefit = s.Choice(practicalBenefits)
	default:
		r.Benefit = BenefitEngagement
	}

	r.PrivacyConcern = s.NoisyScale()
	r.DisplacementConcern = s.NoisyScale()
	r.BiasConcern = s.NoisyScale()
	r.OverrelianceConcern = s.NoisyScale()
	r.CostConcern = s.NoisyScale()

	r.BiggestConcern = s.Choice(headlineConcerns)
	r.Regulatory = s.Choice(Regulatory)

	priorities, err := s.TopK(EthicalPriorities, PriorityCount)
	if err != nil {
		return r, err
	}
	r.EthicalPriorities = priorities

	r.Confidence = s.Choice(Confidence)

	r.AdministrationTransformation = s.NoisyScale()
	r.ToolTraining = s.NoisyScale()
	r.AcademicServices = s.NoisyScale()
	r.Inclusivity = s.NoisyScale()
	r.OperationalCosts = s.NoisyScale()

	r.Strategy = s.Choice(Strategies)
	r.EthicalConfidence = s.Choice(Confidence)

	return r, nil
}

func baseReadiness(role string) string {
	if role == RoleEducator || role == RoleStudent {
		return ReadinessNone
	}
	return ReadinessSomewhat
}

package survey

import (
	"fmt"
	"slices"
)

// Rule is one post-processing step over a single record.
// Apply receives the record by value and returns the updated copy; it must only
// read fields of that same record and must not modify slices in place.
type Rule struct {
	Name string

	// Roles limits the rule to these roles; nil matches every record
	Roles []string

	Apply func(r Record, s *Sampler) (Record, error)
}

// Matches reports whether the rule runs for r
func (rule Rule) Matches(r Record) bool {
	return rule.Roles == nil || slices.Contains(rule.Roles, r.Role)
}

// ApplyRules folds rules over r in order. Later rules see, and may overwrite,
// what earlier rules wrote.
func ApplyRules(r Record, rules []Rule, s *Sampler) (Record, error) {
	for _, rule := range rules {
		if !rule.Matches(r) {
			continue
		}
		next, err := rule.Apply(r, s)
		if err != nil {
			return r, fmt.Errorf("rule %s: %w", rule.Name, err)
		}
		r = next
	}
	return r, nil
}

// DefaultRules returns the standard rule chain:
// confidence from familiarity, the role group overrides, then ethical
// confidence from the overridden familiarity.
func DefaultRules() []Rule {
	return []Rule{
		ConfidenceRule,
		ITAndAdministratorRule,
		AdministratorAndEducatorRule,
		StudentRule,
		EthicalConfidenceRule,
	}
}

// ConfidenceRule correlates preparedness confidence with familiarity as sampled
var ConfidenceRule = Rule{
	Name: "confidence",
	Apply: func(r Record, s *Sampler) (Record, error) {
		v, err := s.Correlated(r.Familiarity, ConfidenceByFamiliarity)
		if err != nil {
			return r, err
		}
		r.Confidence = v
		return r, nil
	},
}

// ITAndAdministratorRule makes technical and administrative staff very familiar,
// unconcerned and efficiency-minded.
var ITAndAdministratorRule = Rule{
	Name:  "it-and-administrators",
	Roles: []string{RoleITImplementer, RoleAdministrator},
	Apply: func(r Record, s *Sampler) (Record, error) {
		r.Familiarity = FamiliarityVery
		r.PrivacyConcern = s.LowConcern()
		r.DisplacementConcern = s.LowConcern()
		r.BiasConcern = s.LowConcern()
		r.Benefit = BenefitEfficiency
		return r, nil
	},
}

// AdministratorAndEducatorRule pins the biggest concern to ethics
var AdministratorAndEducatorRule = Rule{
	Name:  "administrators-and-educators",
	Roles: []string{RoleAdministrator, RoleEducator},
	Apply: func(r Record, _ *Sampler) (Record, error) {
		r.BiggestConcern = ConcernEthics
		return r, nil
	},
}

// StudentRule makes students ready, engaged, unconcerned and against oversight
var StudentRule = Rule{
	Name:  "students",
	Roles: []string{RoleStudent},
	Apply: func(r Record, s *Sampler) (Record, error) {
		r.Benefit = BenefitEngagement
		r.Readiness = ReadinessVery
		r.PrivacyConcern = s.LowConcern()
		r.DisplacementConcern = s.LowConcern()
		r.BiasConcern = s.LowConcern()
		r.OverrelianceConcern = s.LowConcern()
		r.Regulatory = RegulatoryNo
		return r, nil
	},
}

// EthicalConfidenceRule correlates ethical confidence with familiarity after overrides
var EthicalConfidenceRule = Rule{
	Name: "ethical-confidence",
	Apply: func(r Record, s *Sampler) (Record, error) {
		v, err := s.Correlated(r.Familiarity, ConfidenceByFamiliarity)
		if err != nil {
			return r, err
		}
		r.EthicalConfidence = v
		return r, nil
	},
}

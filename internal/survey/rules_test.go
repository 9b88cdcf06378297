package survey

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRecord(role string) Record {
	return Record{
		Role:                RoleEducator,
		Familiarity:         FamiliarityNone,
		Readiness:           ReadinessNone,
		Benefit:             "Other",
		PrivacyConcern:      4.6,
		DisplacementConcern: 4.1,
		BiasConcern:         3.3,
		OverrelianceConcern: 4.9,
		CostConcern:         2.2,
		BiggestConcern:      ConcernPrivacy,
		Regulatory:          "Yes",
	}.withRole(role)
}

func (r Record) withRole(role string) Record {
	r.Role = role
	return r
}

func TestApplyRules_OrderAndOverwrite(t *testing.T) {
	var trace []string
	set := func(name, v string) Rule {
		return Rule{Name: name, Apply: func(r Record, _ *Sampler) (Record, error) {
			trace = append(trace, name)
			r.Strategy = v
			return r, nil
		}}
	}

	got, err := ApplyRules(Record{}, []Rule{set("first", "a"), set("second", "b")}, NewSampler(1))
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, trace)
	assert.Equal(t, "b", got.Strategy)
}

func TestApplyRules_SkipsOtherRoles(t *testing.T) {
	rule := Rule{
		Name:  "students only",
		Roles: []string{RoleStudent},
		Apply: func(r Record, _ *Sampler) (Record, error) {
			r.Strategy = "touched"
			return r, nil
		},
	}

	got, err := ApplyRules(baseRecord(RoleEducator), []Rule{rule}, NewSampler(1))
	require.NoError(t, err)
	assert.Empty(t, got.Strategy)
}

func TestApplyRules_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	failing := Rule{Name: "failing", Apply: func(r Record, _ *Sampler) (Record, error) {
		return r, boom
	}}
	after := Rule{Name: "after", Apply: func(r Record, _ *Sampler) (Record, error) {
		t.Fatal("rule after a failure must not run")
		return r, nil
	}}

	_, err := ApplyRules(Record{}, []Rule{failing, after}, NewSampler(1))
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "rule failing")
}

func TestApplyRules_DoesNotMutateInput(t *testing.T) {
	in := baseRecord(RoleStudent)

	_, err := ApplyRules(in, DefaultRules(), NewSampler(1))
	require.NoError(t, err)

	assert.Equal(t, "Yes", in.Regulatory)
	assert.Equal(t, ReadinessNone, in.Readiness)
}

func TestITAndAdministratorRule(t *testing.T) {
	for _, role := range []string{RoleITImplementer, RoleAdministrator} {
		t.Run(role, func(t *testing.T) {
			got, err := ApplyRules(baseRecord(role), []Rule{ITAndAdministratorRule}, NewSampler(9))
			require.NoError(t, err)

			assert.Equal(t, FamiliarityVery, got.Familiarity)
			assert.Equal(t, BenefitEfficiency, got.Benefit)
			assert.Contains(t, []float64{1, 2}, got.PrivacyConcern)
			assert.Contains(t, []float64{1, 2}, got.DisplacementConcern)
			assert.Contains(t, []float64{1, 2}, got.BiasConcern)
			assert.Equal(t, 4.9, got.OverrelianceConcern, "over-reliance is not part of this group")
		})
	}
}

func TestAdministratorAccumulatesBothGroups(t *testing.T) {
	got, err := ApplyRules(baseRecord(RoleAdministrator), DefaultRules(), NewSampler(4))
	require.NoError(t, err)

	assert.Equal(t, FamiliarityVery, got.Familiarity)
	assert.Equal(t, BenefitEfficiency, got.Benefit)
	assert.Equal(t, ConcernEthics, got.BiggestConcern)
}

func TestEducatorGetsEthicsConcernOnly(t *testing.T) {
	got, err := ApplyRules(baseRecord(RoleEducator), DefaultRules(), NewSampler(4))
	require.NoError(t, err)

	assert.Equal(t, ConcernEthics, got.BiggestConcern)
	assert.Equal(t, FamiliarityNone, got.Familiarity)
	assert.Equal(t, 4.6, got.PrivacyConcern)
}

func TestStudentRule(t *testing.T) {
	got, err := ApplyRules(baseRecord(RoleStudent), DefaultRules(), NewSampler(8))
	require.NoError(t, err)

	assert.Equal(t, BenefitEngagement, got.Benefit)
	assert.Equal(t, ReadinessVery, got.Readiness)
	assert.Equal(t, RegulatoryNo, got.Regulatory)
	for _, v := range []float64{got.PrivacyConcern, got.DisplacementConcern, got.BiasConcern, got.OverrelianceConcern} {
		assert.Contains(t, []float64{1, 2}, v)
	}
	assert.Equal(t, 2.2, got.CostConcern)
	assert.Equal(t, ConcernPrivacy, got.BiggestConcern)
}

func TestConfidenceRulesUseFamiliarityAtTheirPosition(t *testing.T) {
	// An IT implementer who was "Not familiar" gets preparedness confidence from
	// that value, and ethical confidence from the overridden "Very familiar".
	for seed := uint64(0); seed < 300; seed++ {
		in := baseRecord(RoleITImplementer)
		got, err := ApplyRules(in, DefaultRules(), NewSampler(seed))
		require.NoError(t, err)

		assert.NotEqual(t, "Very confident", got.Confidence)
		assert.NotEqual(t, "Unsure", got.EthicalConfidence)
	}
}

func TestConfidenceRule_UnknownFamiliarity(t *testing.T) {
	in := baseRecord(RoleStudent)
	in.Familiarity = "Expert"

	_, err := ApplyRules(in, DefaultRules(), NewSampler(1))
	assert.ErrorIs(t, err, ErrUnknownAnchor)
}

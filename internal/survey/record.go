package survey

import (
	"fmt"
	"slices"
)

// Record is one synthetic respondent.
// Scale answers are float64 because noise makes them continuous.
type Record struct {
	Role        string
	Institution string
	Experience  string
	Familiarity string
	Readiness   string

	PersonalizedLearning     float64
	AdministrativeEfficiency float64
	StudentEngagement        float64
	ContentCreation          float64
	TimelyFeedback           float64
	TaskAutomation           float64

	Benefit string

	PrivacyConcern      float64
	DisplacementConcern float64
	BiasConcern         float64
	OverrelianceConcern float64
	CostConcern         float64

	BiggestConcern    string
	Regulatory        string
	EthicalPriorities []string
	Confidence        string

	AdministrationTransformation float64
	ToolTraining                 float64
	AcademicServices             float64
	Inclusivity                  float64
	OperationalCosts             float64

	Strategy          string
	EthicalConfidence string
}

// Dataset is an ordered sequence of records sharing the Columns schema
type Dataset []Record

// Kind is the cell type of a column
type Kind int

const (
	KindLabel Kind = iota
	KindScale
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindScale:
		return "scale"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Column names one field of the schema and gives typed access to it
type Column struct {
	Name string
	Kind Kind

	label func(*Record) *string
	scale func(*Record) *float64
	list  func(*Record) *[]string
}

func labelColumn(name string, f func(*Record) *string) Column {
	return Column{Name: name, Kind: KindLabel, label: f}
}

func scaleColumn(name string, f func(*Record) *float64) Column {
	return Column{Name: name, Kind: KindScale, scale: f}
}

// Label reads a label column
func (c Column) Label(r *Record) string { return *c.label(r) }

// SetLabel writes a label column
func (c Column) SetLabel(r *Record, v string) { *c.label(r) = v }

// Scale reads a scale column
func (c Column) Scale(r *Record) float64 { return *c.scale(r) }

// SetScale writes a scale column
func (c Column) SetScale(r *Record, v float64) { *c.scale(r) = v }

// List reads a list column
func (c Column) List(r *Record) []string { return *c.list(r) }

// SetList writes a list column
func (c Column) SetList(r *Record, v []string) { *c.list(r) = v }

// Columns is the output schema in file order
var Columns = []Column{
	labelColumn("Role", func(r *Record) *string { return &r.Role }),
	labelColumn("Institution Type", func(r *Record) *string { return &r.Institution }),
	labelColumn("Years of Experience", func(r *Record) *string { return &r.Experience }),
	labelColumn("Familiarity with AI", func(r *Record) *string { return &r.Familiarity }),
	labelColumn("IT Readiness", func(r *Record) *string { return &r.Readiness }),
	scaleColumn("Personalized Learning", func(r *Record) *float64 { return &r.PersonalizedLearning }),
	scaleColumn("Administrative Efficiency", func(r *Record) *float64 { return &r.AdministrativeEfficiency }),
	scaleColumn("Student Engagement", func(r *Record) *float64 { return &r.StudentEngagement }),
	scaleColumn("Educational Content Creation", func(r *Record) *float64 { return &r.ContentCreation }),
	scaleColumn("Timely Feedback", func(r *Record) *float64 { return &r.TimelyFeedback }),
	scaleColumn("Automation of Tasks", func(r *Record) *float64 { return &r.TaskAutomation }),
	labelColumn("Significant Benefit of AI", func(r *Record) *string { return &r.Benefit }),
	scaleColumn("Data Privacy Concern", func(r *Record) *float64 { return &r.PrivacyConcern }),
	scaleColumn("Job Displacement Concern", func(r *Record) *float64 { return &r.DisplacementConcern }),
	scaleColumn("Bias in Content Concern", func(r *Record) *float64 { return &r.BiasConcern }),
	scaleColumn("Over-reliance on AI Concern", func(r *Record) *float64 { return &r.OverrelianceConcern }),
	scaleColumn("Implementation Costs Concern", func(r *Record) *float64 { return &r.CostConcern }),
	labelColumn("Biggest Concern", func(r *Record) *string { return &r.BiggestConcern }),
	labelColumn("Need for Regulatory Oversight", func(r *Record) *string { return &r.Regulatory }),
	{Name: "Top Ethical Priorities", Kind: KindList, list: func(r *Record) *[]string { return &r.EthicalPriorities }},
	labelColumn("Confidence in Preparedness", func(r *Record) *string { return &r.Confidence }),
	scaleColumn("Academic Administration Transformation", func(r *Record) *float64 { return &r.AdministrationTransformation }),
	scaleColumn("Training on AI Tools", func(r *Record) *float64 { return &r.ToolTraining }),
	scaleColumn("AI-driven Academic Services", func(r *Record) *float64 { return &r.AcademicServices }),
	scaleColumn("Promoting Inclusivity", func(r *Record) *float64 { return &r.Inclusivity }),
	scaleColumn("Reducing Operational Costs", func(r *Record) *float64 { return &r.OperationalCosts }),
	labelColumn("Primary Focus of AI Strategy", func(r *Record) *string { return &r.Strategy }),
	labelColumn("Confidence in Ethical Preparedness", func(r *Record) *string { return &r.EthicalConfidence }),
}

// Header returns the column names in file order
func Header() []string {
	names := make([]string, len(Columns))
	for i, c := range Columns {
		names[i] = c.Name
	}
	return names
}

// Validate checks that every field is populated, every scale answer lies in
// [ScaleMin, ScaleMax] and the ethical priorities are PriorityCount distinct catalog labels.
func (r *Record) Validate() error {
	for _, c := range Columns {
		switch c.Kind {
		case KindLabel:
			if c.Label(r) == "" {
				return fmt.Errorf("%w: %s is empty", ErrIncompleteRecord, c.Name)
			}
		case KindScale:
			if v := c.Scale(r); v < ScaleMin || v > ScaleMax {
				return fmt.Errorf("%w: %s = %v outside [%v, %v]", ErrIncompleteRecord, c.Name, v, ScaleMin, ScaleMax)
			}
		case KindList:
			if err := validatePriorities(c.List(r)); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrIncompleteRecord, c.Name, err)
			}
		}
	}
	return nil
}

func validatePriorities(items []string) error {
	if len(items) != PriorityCount {
		return fmt.Errorf("want %d entries, got %d", PriorityCount, len(items))
	}
	for i, item := range items {
		if !EthicalPriorities.Contains(item) {
			return fmt.Errorf("unknown priority %q", item)
		}
		if slices.Contains(items[:i], item) {
			return fmt.Errorf("duplicate priority %q", item)
		}
	}
	return nil
}

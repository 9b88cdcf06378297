package survey

import "slices"

// OptionSet is the fixed, ordered list of answers for one survey question.
// The zero value is an empty set; catalog sets are built once at init and never mutated.
type OptionSet struct {
	name   string
	labels []string
}

func newOptionSet(name string, labels ...string) OptionSet {
	return OptionSet{name: name, labels: labels}
}

// Name returns the question the set answers
func (o OptionSet) Name() string { return o.name }

// Len returns the number of labels
func (o OptionSet) Len() int { return len(o.labels) }

// Label returns the i-th label in catalog order
func (o OptionSet) Label(i int) string { return o.labels[i] }

// Labels returns a copy of the labels in catalog order
func (o OptionSet) Labels() []string { return slices.Clone(o.labels) }

// Contains reports whether label belongs to the set
func (o OptionSet) Contains(label string) bool { return slices.Contains(o.labels, label) }

// Labels referenced by the generation rules
const (
	RoleITImplementer = "IT Implementer"
	RoleEducator      = "Educator (Faculty)"
	RoleAdministrator = "Administrator"
	RoleStudent       = "Student"

	FamiliarityVery     = "Very familiar"
	FamiliaritySomewhat = "Somewhat familiar"
	FamiliarityNone     = "Not familiar"

	ReadinessVery     = "Very ready"
	ReadinessSomewhat = "Somewhat ready"
	ReadinessNone     = "Not ready"

	BenefitEfficiency = "Increased efficiency"
	BenefitEngagement = "Improved student engagement"
	BenefitAutomation = "Automation of administrative tasks"

	ConcernPrivacy = "Data privacy and security"
	ConcernBias    = "Bias in AI-generated content"
	ConcernEthics  = "Ethical issues (e.g., bias, transparency)"

	RegulatoryNo = "No"
)

// Question catalog
var (
	Roles = newOptionSet("role",
		RoleITImplementer, RoleEducator, RoleAdministrator, RoleStudent)

	Institutions = newOptionSet("institution",
		"Public University", "Private University", "IT Company", "Technical Institute")

	Experience = newOptionSet("experience",
		"Less than 1 year", "1-3 years", "3-5 years", "More than 5 years")

	Familiarity = newOptionSet("familiarity",
		FamiliarityVery, FamiliaritySomewhat, FamiliarityNone)

	Readiness = newOptionSet("readiness",
		ReadinessVery, ReadinessSomewhat, ReadinessNone, "Unsure")

	Benefits = newOptionSet("benefit",
		BenefitEfficiency, BenefitEngagement, "Personalized learning experiences", BenefitAutomation, "Other")

	Concerns = newOptionSet("concern",
		ConcernPrivacy, "Job displacement", ConcernEthics,
		"Lack of human interaction in learning", "High implementation costs", "Other")

	Regulatory = newOptionSet("regulatory", "Yes", RegulatoryNo, "Not sure")

	EthicalPriorities = newOptionSet("ethical priority",
		"Data privacy and protection",
		"Transparency in AI algorithms",
		"Avoiding algorithmic bias",
		"Academic integrity",
		"Ensuring equitable access to AI tools",
		"Safeguarding human roles in education",
	)

	Confidence = newOptionSet("confidence",
		"Very confident", "Somewhat confident", "Not confident", "Unsure")

	Strategies = newOptionSet("strategy",
		"Ethical AI implementation",
		"Faculty and student training",
		"Reducing administrative costs",
		"Enhancing learning experiences",
		"Developing new AI-driven academic services",
		"Other",
	)

	// The base draws for benefit and biggest concern use narrower sets than the
	// full question catalogs. "Bias in AI-generated content" only exists here.
	practicalBenefits = newOptionSet("practical benefit", BenefitEfficiency, BenefitAutomation)
	headlineConcerns  = newOptionSet("headline concern", ConcernPrivacy, ConcernBias)
)

// Scale points for the 1-5 attitude questions
var (
	scalePoints      = []int{1, 2, 3, 4, 5}
	lowConcernPoints = []int{1, 2}
)

const (
	ScaleMin = 1.0
	ScaleMax = 5.0

	// NoiseStdDev is the standard deviation of the noise added to every scale answer
	NoiseStdDev = 0.5

	// PriorityCount is how many ethical priorities each respondent ranks
	PriorityCount = 3

	// DefaultCount is the number of respondents generated when none is requested
	DefaultCount = 100
)

// ConfidenceByFamiliarity correlates confidence answers with familiarity.
// Every familiarity label has its own vector; see NewCorrelation.
var ConfidenceByFamiliarity = MustCorrelation(Confidence, map[string][]float64{
	FamiliarityVery:     {0.8, 0.15, 0.05, 0.0},
	FamiliaritySomewhat: {0.4, 0.5, 0.1, 0.0},
	FamiliarityNone:     {0.0, 0.1, 0.5, 0.4},
})

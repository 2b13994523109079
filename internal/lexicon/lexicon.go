// Package lexicon holds the static catalogs the engine matches against:
// known tools, skill phrases, and the keyword tables behind the fit scorer.
// Catalogs are immutable after construction and passed into the extraction
// and scoring functions as read-only parameters, which keeps tests parallel
// and lets callers substitute their own tables.
package lexicon

// Tool is one known tool with its canonical name and match variants
type Tool struct {
	Name     string
	Patterns []string
}

// SkillPattern is one skill phrase with its match variants
type SkillPattern struct {
	Name     string
	Patterns []string
}

// RiskSignal is a negative posting phrase with its penalty weight
type RiskSignal struct {
	Phrase string
	Weight int
	Reason string
}

// MetricKeyword maps a keyword found in an outcome to a metric type.
// Checked in slice order; the first match wins.
type MetricKeyword struct {
	Keyword string
	Type    string
}

// Lexicon bundles every static catalog the engine consumes
type Lexicon struct {
	Tools            []Tool
	Skills           []SkillPattern
	StageScores      []StageKeyword
	DomainSignals    []string
	RiskSignals      []RiskSignal
	BenefitKeywords  []string
	SeniorTitles     []string
	StrategicSignals []string
	TeamSignals      []string
	MetricKeywords   []MetricKeyword
}

// StageKeyword maps a funding/maturity phrase to a company-stage score
type StageKeyword struct {
	Phrase string
	Score  int
}

// Default returns the stock catalogs. The returned value is freshly built on
// each call so callers may extend their copy without affecting others.
func Default() *Lexicon {
	return &Lexicon{
		Tools:            defaultTools(),
		Skills:           defaultSkills(),
		StageScores:      defaultStageScores(),
		DomainSignals:    defaultDomainSignals(),
		RiskSignals:      defaultRiskSignals(),
		BenefitKeywords:  defaultBenefitKeywords(),
		SeniorTitles:     defaultSeniorTitles(),
		StrategicSignals: defaultStrategicSignals(),
		TeamSignals:      defaultTeamSignals(),
		MetricKeywords:   defaultMetricKeywords(),
	}
}

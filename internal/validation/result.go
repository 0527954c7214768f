package validation

import "strings"

// Result is the outcome of validating one event or one event collection.
// IsValid is true exactly when Errors is empty; warnings and suggestions
// never affect it.
type Result struct {
	IsValid     bool     `json:"is_valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

type ContinuityAssessment struct {
	BackwardContinuity float64  `json:"backward_continuity"`
	ForwardContinuity  float64  `json:"forward_continuity"`
	Issues             []string `json:"issues"`
}

// QualityPrediction ranks a chunk for triage. The scores are heuristic
// linear penalties, not probabilities, and never gate acceptance by
// themselves.
type QualityPrediction struct {
	UserExperience   float64  `json:"user_experience"`
	TechnicalSuccess float64  `json:"technical_success"`
	RiskFactors      []string `json:"risk_factors"`
}

type ChunkResult struct {
	IsValid     bool                 `json:"is_valid"`
	Errors      []string             `json:"errors"`
	Warnings    []string             `json:"warnings"`
	Suggestions []string             `json:"suggestions"`
	Continuity  ContinuityAssessment `json:"continuity_assessment"`
	Quality     QualityPrediction    `json:"quality_prediction"`
}

func finalizeResult(errs, warns, suggestions []string) Result {
	errs = dedupeStrings(errs)
	warns = dedupeStrings(warns)
	suggestions = dedupeStrings(suggestions)
	return Result{
		IsValid:     len(errs) == 0,
		Errors:      errs,
		Warnings:    warns,
		Suggestions: suggestions,
	}
}

func predictQuality(errs, warns []string) QualityPrediction {
	ue := 1.0 - 0.1*float64(len(warns)) - 0.3*float64(len(errs))
	if ue < 0 {
		ue = 0
	}
	ts := 1.0 - 0.2*float64(len(errs))
	if ts < 0 {
		ts = 0
	}
	risks := make([]string, 0, len(errs))
	risks = append(risks, errs...)
	for _, w := range warns {
		if strings.Contains(w, "exceed") {
			risks = append(risks, w)
		}
	}
	return QualityPrediction{
		UserExperience:   ue,
		TechnicalSuccess: ts,
		RiskFactors:      risks,
	}
}

func dedupeStrings(in []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

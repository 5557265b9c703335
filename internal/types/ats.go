package types

// ATSReport is the heuristic applicant tracking system compliance result.
type ATSReport struct {
	Score           float64  `json:"ats_score"` // [0,1], 3 decimals
	Overlap         float64  `json:"overlap"`   // [0,1], 3 decimals
	Issues          []string `json:"issues"`    // detection order
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	MissingKeywords []string `json:"missing_keywords,omitempty"`
}

// Passed reports whether no issue was raised.
func (r *ATSReport) Passed() bool {
	return len(r.Issues) == 0
}

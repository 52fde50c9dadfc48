package entities

import "strings"

// GradeType selects the grading track for a request.
type GradeType string

const (
	// GradeFunctionality marks a test-based functionality grade request.
	GradeFunctionality GradeType = "Functionality"
	// GradeDesign marks a code-review-based design grade request.
	GradeDesign GradeType = "Design"
)

// Lower returns the label form of the grade type.
func (t GradeType) Lower() string {
	return strings.ToLower(string(t))
}

// PenaltyPolicy describes the late-penalty tiers of one grading track.
type PenaltyPolicy struct {
	BlockHours      float64
	PenaltyPerBlock float64
	CapPercent      float64
}

// GradeReport is the outcome of grading one submission timestamp.
// Deduction never exceeds the policy cap and Grade is 100 minus Deduction.
type GradeReport struct {
	Created        string  `json:"created"`
	Deadline       string  `json:"deadline"`
	LateMultiplier int     `json:"late"`
	Deduction      float64 `json:"deduction"`
	Grade          float64 `json:"grade"`
}

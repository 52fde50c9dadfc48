package domain

import (
	"math"
	"time"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"
)

// displayLayout renders instants the way graders read them in issue bodies.
const displayLayout = "January 2, 2006 at 3:04 PM MST"

// CalculateGrade computes the late-penalty-adjusted grade for one submission
// timestamp. Both instants are normalized to the reference zone before any
// arithmetic. Submitting exactly at the deadline already counts as late.
func CalculateGrade(submitted, deadline time.Time, policy entities.PenaltyPolicy, zone *time.Location) entities.GradeReport {
	submitted = submitted.In(zone)
	deadline = deadline.In(zone)

	report := entities.GradeReport{
		Created:  submitted.Format(displayLayout),
		Deadline: deadline.Format(displayLayout),
	}

	if !submitted.Before(deadline) {
		hoursLate := submitted.Sub(deadline).Hours()
		report.LateMultiplier = 1 + int(math.Floor(hoursLate/policy.BlockHours))
	}

	report.Deduction = math.Min(policy.CapPercent, float64(report.LateMultiplier)*policy.PenaltyPerBlock)
	report.Grade = 100 - report.Deduction
	return report
}

func displayOrNA(t *time.Time, zone *time.Location) string {
	if t == nil || t.IsZero() {
		return "N/A"
	}
	return t.In(zone).Format(displayLayout)
}

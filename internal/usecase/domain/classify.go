package domain

import (
	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"
)

// Classify splits one project's issue stream into grading buckets. The input
// must be ordered by ascending creation time; scanning stops at the first
// item whose title matches targetTitle.
func Classify(items []entities.Item, targetTitle string) entities.Classification {
	var result entities.Classification

	for _, item := range items {
		if item.Record().Title == targetTitle {
			result.DuplicateFound = true
			return result
		}

		switch v := item.(type) {
		case entities.PullRequest:
			result.Pulls = append(result.Pulls, v)
		case entities.Issue:
			if isFunctionalityRecord(v) {
				// When several qualify, the latest one encountered wins.
				record := v
				result.Functionality = &record
				continue
			}
			result.Extra = append(result.Extra, v)
		}
	}

	return result
}

// isFunctionalityRecord reports whether the issue is the settled record of a
// functionality grade: closed, locked as resolved, and labeled accordingly.
func isFunctionalityRecord(issue entities.Issue) bool {
	return issue.State == entities.IssueClosed &&
		issue.Locked &&
		issue.LockReason == entities.LockReasonResolved &&
		issue.HasLabel(entities.LabelFunctionality)
}

package entities

import "time"

// ReviewApproved is the review state that counts toward eligibility.
const ReviewApproved = "APPROVED"

// PullRequest is a read-only snapshot of a repository pull request.
type PullRequest struct {
	Issue
	Draft bool
}

// Record returns the issue fields shared with plain issues.
func (p PullRequest) Record() Issue { return p.Issue }

// Review is one review left on a pull request.
type Review struct {
	Reviewer    string
	State       string
	SubmittedAt time.Time
}

// ApprovedPull pairs a pull request with its chosen qualifying approval.
type ApprovedPull struct {
	Pull     PullRequest
	Approval Review
}

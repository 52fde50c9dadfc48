package entities

import "time"

const (
	// IssueOpen marks an issue as open.
	IssueOpen = "open"
	// IssueClosed marks an issue as closed.
	IssueClosed = "closed"
	// LockReasonResolved is the lock reason marking a settled grading issue.
	LockReasonResolved = "resolved"
)

const (
	// LabelFunctionality tags functionality grading issues.
	LabelFunctionality = "functionality"
	// LabelPassed marks a pull request that passed its code review.
	LabelPassed = "passed"
)

// Issue is a read-only snapshot of a repository issue.
type Issue struct {
	Number     int
	Title      string
	State      string
	Labels     []string
	Locked     bool
	LockReason string
	HTMLURL    string
	CreatedAt  time.Time
	ClosedAt   *time.Time
}

// HasLabel reports whether the issue carries the given label.
func (i Issue) HasLabel(name string) bool {
	for _, label := range i.Labels {
		if label == name {
			return true
		}
	}
	return false
}

// Record returns the issue itself.
func (i Issue) Record() Issue { return i }

// Item is one element of a project's issue stream: a plain issue or a pull
// request. The variant is decided once at ingestion, not by field probing.
type Item interface {
	Record() Issue
}

// NewIssue carries the fields needed to create a grading issue.
type NewIssue struct {
	Title     string
	Body      string
	Labels    []string
	Assignees []string
	Milestone int
}

// Milestone groups grading issues for one project.
type Milestone struct {
	Number      int
	Title       string
	Description string
	State       string
}

package entities

// Classification buckets one project's issue stream.
type Classification struct {
	DuplicateFound bool
	Pulls          []PullRequest
	Extra          []Issue
	Functionality  *Issue
}

// PullSummaryRow is one display row for an approved pull request.
// Empty version or synchrony labels and missing timestamps render as N/A.
type PullSummaryRow struct {
	Number    int    `json:"number"`
	HTMLURL   string `json:"html_url"`
	Status    string `json:"status"`
	Version   string `json:"version"`
	Synchrony string `json:"synchrony"`
	Created   string `json:"created"`
	Approved  string `json:"approved"`
	Closed    string `json:"closed"`
	Passed    bool   `json:"passed"`
}

// Reconciliation partitions pull requests by qualifying approval.
type Reconciliation struct {
	Approved   []ApprovedPull
	Unapproved []PullRequest
	Rows       []PullSummaryRow
}

// Canonical returns the canonical submission: the earliest-created pull
// request among the approved ones, not the earliest approval timestamp.
func (r Reconciliation) Canonical() (ApprovedPull, bool) {
	if len(r.Approved) == 0 {
		return ApprovedPull{}, false
	}
	return r.Approved[0], true
}

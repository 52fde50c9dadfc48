package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"
)

var versionLabel = regexp.MustCompile(`^v\d+`)

// Reconcile partitions pull requests by qualifying approval from the
// authorized reviewer, preserving the ascending-creation input order. A
// failed review lookup downgrades that one pull request to unapproved
// instead of aborting the run.
func (u *Usecase) Reconcile(ctx context.Context, pulls []entities.PullRequest) (entities.Reconciliation, error) {
	var rec entities.Reconciliation

	for _, pull := range pulls {
		reviews, err := u.gw.ListReviews(ctx, pull.Number)
		if err != nil {
			u.log.Warnw("review lookup failed", "pull", pull.Number, "error", err)
			rec.Unapproved = append(rec.Unapproved, pull)
			continue
		}

		approval, ok := lastApproval(reviews, u.opts.Reviewer)
		if !ok {
			rec.Unapproved = append(rec.Unapproved, pull)
			continue
		}

		rec.Approved = append(rec.Approved, entities.ApprovedPull{Pull: pull, Approval: approval})
		rec.Rows = append(rec.Rows, u.summaryRow(pull, approval))
	}

	u.log.Infow("pull requests reconciled",
		"approved", len(rec.Approved),
		"unapproved", len(rec.Unapproved),
	)

	if len(rec.Approved) == 0 {
		return rec, fmt.Errorf("%w: none of %d pull request(s) has a qualifying review", entities.ErrNoApprovedPull, len(pulls))
	}
	return rec, nil
}

// lastApproval selects the temporally last qualifying approval.
func lastApproval(reviews []entities.Review, reviewer string) (entities.Review, bool) {
	var (
		found entities.Review
		ok    bool
	)
	for _, review := range reviews {
		if review.State != entities.ReviewApproved || review.Reviewer != reviewer {
			continue
		}
		if !ok || review.SubmittedAt.After(found.SubmittedAt) {
			found = review
			ok = true
		}
	}
	return found, ok
}

func (u *Usecase) summaryRow(pull entities.PullRequest, approval entities.Review) entities.PullSummaryRow {
	status := pull.State
	if pull.Draft {
		status = "draft"
	}

	created := pull.CreatedAt
	approved := approval.SubmittedAt

	return entities.PullSummaryRow{
		Number:    pull.Number,
		HTMLURL:   pull.HTMLURL,
		Status:    status,
		Version:   lastLabel(pull.Labels, versionLabel.MatchString),
		Synchrony: lastLabel(pull.Labels, func(name string) bool { return strings.HasSuffix(name, "chronous") }),
		Created:   displayOrNA(&created, u.opts.Zone),
		Approved:  displayOrNA(&approved, u.opts.Zone),
		Closed:    displayOrNA(pull.ClosedAt, u.opts.Zone),
		Passed:    pull.HasLabel(entities.LabelPassed),
	}
}

// lastLabel returns the last matching label in original label order.
func lastLabel(labels []string, match func(string) bool) string {
	var found string
	for _, name := range labels {
		if match(name) {
			found = name
		}
	}
	return found
}

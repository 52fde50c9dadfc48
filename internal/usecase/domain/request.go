package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"
	"github.com/usf-cs272-fall2021/action-request-grade/internal/policy"
	"github.com/usf-cs272-fall2021/action-request-grade/internal/render"
)

// RequestGrade drives one grading run from verified state to a created,
// commented and closed grading issue. Any failure aborts the run; a failure
// after issue creation leaves the partial issue in place.
func (u *Usecase) RequestGrade(ctx context.Context, state entities.RunState) (*entities.GradeOutcome, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	switch state.Type {
	case entities.GradeFunctionality:
		return u.requestFunctionality(ctx, state)
	case entities.GradeDesign:
		return u.requestDesign(ctx, state)
	default:
		return nil, fmt.Errorf("%w: %q", entities.ErrInvalidGradeType, string(state.Type))
	}
}

// requestFunctionality grades the release creation time against the
// functionality deadline. Any existing functionality issue for the project,
// matching title or not, disqualifies the request.
func (u *Usecase) requestFunctionality(ctx context.Context, state entities.RunState) (*entities.GradeOutcome, error) {
	title := state.IssueTitle()

	items, err := u.gw.ListProjectItems(ctx, state.Project, state.Type.Lower())
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.Record().Title == title {
			return nil, fmt.Errorf("%w: an issue titled %q already exists", entities.ErrDuplicateIssue, title)
		}
	}
	if len(items) > 0 {
		return nil, fmt.Errorf("%w: found %d functionality issue(s) for project %d already",
			entities.ErrPriorIssue, len(items), state.Project)
	}

	report, err := u.grade(state, state.ReleaseDate)
	if err != nil {
		return nil, err
	}

	outcome := &entities.GradeOutcome{State: state, Report: report}
	if err := u.publish(ctx, outcome); err != nil {
		return nil, err
	}
	return outcome, nil
}

// requestDesign classifies the project's issue stream, reconciles review
// approvals, and grades the canonical approval time against the design
// deadline.
func (u *Usecase) requestDesign(ctx context.Context, state entities.RunState) (*entities.GradeOutcome, error) {
	title := state.IssueTitle()

	items, err := u.gw.ListProjectItems(ctx, state.Project, "")
	if err != nil {
		return nil, err
	}

	classified := Classify(items, title)
	switch {
	case classified.DuplicateFound:
		return nil, fmt.Errorf("%w: an issue titled %q already exists", entities.ErrDuplicateIssue, title)
	case len(classified.Extra) > 0:
		return nil, fmt.Errorf("%w: found %d extra issue(s) for project %d",
			entities.ErrExtraIssues, len(classified.Extra), state.Project)
	case classified.Functionality == nil:
		return nil, fmt.Errorf("%w: project %d has no closed and locked functionality issue",
			entities.ErrMissingFunctionality, state.Project)
	}

	reconciled, err := u.Reconcile(ctx, classified.Pulls)
	if err != nil {
		return nil, err
	}

	canonical, _ := reconciled.Canonical()
	u.log.Infow("canonical submission",
		"pull", canonical.Pull.Number,
		"approved_at", canonical.Approval.SubmittedAt,
	)

	report, err := u.grade(state, canonical.Approval.SubmittedAt)
	if err != nil {
		return nil, err
	}

	outcome := &entities.GradeOutcome{
		State:         state,
		Report:        report,
		Summary:       &reconciled,
		Functionality: classified.Functionality,
	}
	if err := u.publish(ctx, outcome); err != nil {
		return nil, err
	}
	return outcome, nil
}

func (u *Usecase) grade(state entities.RunState, submitted time.Time) (entities.GradeReport, error) {
	deadline, err := policy.Deadline(state.Project, state.Type, u.opts.Zone)
	if err != nil {
		return entities.GradeReport{}, err
	}

	report := CalculateGrade(submitted, deadline, policy.Penalty(state.Type), u.opts.Zone)
	u.log.Infow("grade calculated",
		"project", state.Project,
		"type", state.Type.Lower(),
		"late", report.LateMultiplier,
		"deduction", report.Deduction,
		"grade", report.Grade,
	)
	return report, nil
}

// publish creates the grading issue, posts the student instructions, and
// closes the issue so the student re-opens it once the checklist is done.
func (u *Usecase) publish(ctx context.Context, outcome *entities.GradeOutcome) error {
	outcome.ReleaseCreated = displayOrNA(&outcome.State.ReleaseDate, u.opts.Zone)

	milestone, err := u.ensureMilestone(ctx, outcome.State.Project)
	if err != nil {
		return err
	}

	issue, err := u.gw.CreateIssue(ctx, entities.NewIssue{
		Title:     outcome.State.IssueTitle(),
		Body:      render.IssueBody(*outcome),
		Labels:    []string{outcome.State.ProjectLabel(), outcome.State.Type.Lower()},
		Assignees: policy.Assignees(outcome.State.Type),
		Milestone: milestone.Number,
	})
	if err != nil {
		return err
	}
	outcome.IssueNumber = issue.Number
	outcome.IssueURL = issue.HTMLURL
	u.log.Infow("grading issue created", "issue", issue.Number, "url", issue.HTMLURL)

	commentURL, err := u.gw.CreateComment(ctx, issue.Number, render.Instructions(outcome.State))
	if err != nil {
		return err
	}
	u.log.Infow("instructions posted", "comment_url", commentURL)

	return u.gw.CloseIssue(ctx, issue.Number)
}

// ensureMilestone finds the project milestone or creates it.
func (u *Usecase) ensureMilestone(ctx context.Context, project int) (*entities.Milestone, error) {
	title := fmt.Sprintf("Project %d", project)

	milestones, err := u.gw.ListMilestones(ctx)
	if err != nil {
		return nil, err
	}
	for _, milestone := range milestones {
		if milestone.Title == title {
			found := milestone
			return &found, nil
		}
	}

	return u.gw.CreateMilestone(ctx, title, fmt.Sprintf("Project %d %s", project, policy.Name(project)))
}

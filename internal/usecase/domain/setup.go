package domain

import (
	"context"
	"fmt"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"
)

const releaseEvent = "release"

// ParseGradeType maps a raw request type onto a grading track. Anything
// starting with "d" is a design request, anything starting with "f" a
// functionality request.
func ParseGradeType(raw string) (entities.GradeType, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: missing grade type", entities.ErrInvalidGradeType)
	}

	switch raw[0] {
	case 'd', 'D':
		return entities.GradeDesign, nil
	case 'f', 'F':
		return entities.GradeFunctionality, nil
	default:
		return "", fmt.Errorf("%w: %q", entities.ErrInvalidGradeType, raw)
	}
}

// VerifyRequest validates a grade request, confirms the release passed its
// test workflow, and captures the run state handed to RequestGrade.
func (u *Usecase) VerifyRequest(ctx context.Context, req entities.GradeRequest) (*entities.RunState, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	gradeType, err := ParseGradeType(req.Type)
	if err != nil {
		return nil, err
	}

	project, err := entities.ProjectFromTag(req.Release)
	if err != nil {
		return nil, err
	}

	release, err := u.gw.GetReleaseByTag(ctx, req.Release)
	if err != nil {
		return nil, err
	}

	run, err := u.verifiedRun(ctx, release.TagName)
	if err != nil {
		return nil, err
	}

	state := &entities.RunState{
		Type:        gradeType,
		Project:     project,
		Release:     release.TagName,
		ReleaseID:   release.ID,
		ReleaseURL:  release.HTMLURL,
		ReleaseDate: release.CreatedAt,
		RunNumber:   run.RunNumber,
		RunID:       run.ID,
		RunURL:      run.HTMLURL,
		Actor:       req.Actor,
	}

	u.log.Infow("request verified",
		"project", project,
		"type", gradeType.Lower(),
		"release", state.Release,
		"run", run.RunNumber,
	)
	return state, nil
}

// verifiedRun finds the test workflow run for the release tag and requires it
// to be completed and successful.
func (u *Usecase) verifiedRun(ctx context.Context, tag string) (*entities.WorkflowRun, error) {
	runs, err := u.gw.ListWorkflowRuns(ctx, u.opts.WorkflowFile, releaseEvent)
	if err != nil {
		return nil, fmt.Errorf("list workflow runs: %w", err)
	}

	for _, run := range runs {
		if run.HeadBranch != tag {
			continue
		}
		if !run.Completed() {
			return nil, fmt.Errorf("%w: run #%d (%d) for the %s release was not successful",
				entities.ErrRunNotVerified, run.RunNumber, run.ID, tag)
		}
		found := run
		return &found, nil
	}

	return nil, fmt.Errorf("%w: no recent runs for the %s release", entities.ErrRunNotVerified, tag)
}

package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"
	"github.com/usf-cs272-fall2021/action-request-grade/internal/mapper"

	gh "github.com/google/go-github/v66/github"
)

// GetReleaseByTag returns the release published under the given tag.
func (g *GitHub) GetReleaseByTag(ctx context.Context, tag string) (*entities.Release, error) {
	release, resp, err := g.api.Repositories.GetReleaseByTag(ctx, g.cfg.Owner, g.cfg.Repo, tag)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", entities.ErrReleaseNotFound, tag)
		}
		return nil, fmt.Errorf("get release %s: %w", tag, err)
	}
	return mapper.FromGitHubRelease(release), nil
}

// ListWorkflowRuns returns runs of the given workflow file triggered by the
// given event, newest first as the API reports them.
func (g *GitHub) ListWorkflowRuns(ctx context.Context, workflowFile, event string) ([]entities.WorkflowRun, error) {
	listed, _, err := g.api.Actions.ListWorkflowRunsByFileName(ctx, g.cfg.Owner, g.cfg.Repo, workflowFile, &gh.ListWorkflowRunsOptions{
		Event: event,
	})
	if err != nil {
		return nil, fmt.Errorf("list %s runs: %w", workflowFile, err)
	}

	runs := make([]entities.WorkflowRun, 0, len(listed.WorkflowRuns))
	for _, run := range listed.WorkflowRuns {
		runs = append(runs, mapper.FromGitHubRun(run))
	}
	return runs, nil
}

// ListReviews returns the reviews left on a pull request, in submission order.
func (g *GitHub) ListReviews(ctx context.Context, pullNumber int) ([]entities.Review, error) {
	listed, _, err := g.api.PullRequests.ListReviews(ctx, g.cfg.Owner, g.cfg.Repo, pullNumber, nil)
	if err != nil {
		return nil, fmt.Errorf("list reviews for pull #%d: %w", pullNumber, err)
	}

	reviews := make([]entities.Review, 0, len(listed))
	for _, review := range listed {
		reviews = append(reviews, mapper.FromGitHubReview(review))
	}
	return reviews, nil
}

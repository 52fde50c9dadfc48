// Package mapper converts GitHub API models into domain entities.
package mapper

import (
	gh "github.com/google/go-github/v66/github"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"
)

// FromGitHubItem builds an issue or pull request entity from a listing row.
// The variant is decided here, once, so downstream code never probes fields.
func FromGitHubItem(src *gh.Issue) entities.Item {
	issue := entities.Issue{
		Number:     src.GetNumber(),
		Title:      src.GetTitle(),
		State:      src.GetState(),
		Labels:     labelNames(src.Labels),
		Locked:     src.GetLocked(),
		LockReason: src.GetActiveLockReason(),
		HTMLURL:    src.GetHTMLURL(),
		CreatedAt:  src.GetCreatedAt().Time,
	}

	if closed := src.GetClosedAt().Time; !closed.IsZero() {
		issue.ClosedAt = &closed
	}

	if src.IsPullRequest() {
		return entities.PullRequest{Issue: issue, Draft: src.GetDraft()}
	}
	return issue
}

// FromGitHubRelease maps a repository release to its entity.
func FromGitHubRelease(src *gh.RepositoryRelease) *entities.Release {
	return &entities.Release{
		ID:        src.GetID(),
		TagName:   src.GetTagName(),
		HTMLURL:   src.GetHTMLURL(),
		CreatedAt: src.GetCreatedAt().Time,
	}
}

// FromGitHubRun maps a workflow run to its entity.
func FromGitHubRun(src *gh.WorkflowRun) entities.WorkflowRun {
	return entities.WorkflowRun{
		ID:         src.GetID(),
		RunNumber:  src.GetRunNumber(),
		Name:       src.GetName(),
		HeadBranch: src.GetHeadBranch(),
		Status:     src.GetStatus(),
		Conclusion: src.GetConclusion(),
		HTMLURL:    src.GetHTMLURL(),
	}
}

// FromGitHubReview maps a pull request review to its entity.
func FromGitHubReview(src *gh.PullRequestReview) entities.Review {
	return entities.Review{
		Reviewer:    src.GetUser().GetLogin(),
		State:       src.GetState(),
		SubmittedAt: src.GetSubmittedAt().Time,
	}
}

// FromGitHubMilestone maps a milestone to its entity.
func FromGitHubMilestone(src *gh.Milestone) entities.Milestone {
	return entities.Milestone{
		Number:      src.GetNumber(),
		Title:       src.GetTitle(),
		Description: src.GetDescription(),
		State:       src.GetState(),
	}
}

// FromGitHubIssue maps a created issue response to its entity.
func FromGitHubIssue(src *gh.Issue) *entities.Issue {
	issue := FromGitHubItem(src).Record()
	return &issue
}

func labelNames(labels []*gh.Label) []string {
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.GetName())
	}
	return names
}

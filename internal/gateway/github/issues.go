package github

import (
	"context"
	"fmt"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"
	"github.com/usf-cs272-fall2021/action-request-grade/internal/mapper"

	gh "github.com/google/go-github/v66/github"
)

// ListProjectItems returns all issues and pull requests carrying the project
// label (and the grade-type label, when given), ascending by creation time.
func (g *GitHub) ListProjectItems(ctx context.Context, project int, typeLabel string) ([]entities.Item, error) {
	labels := []string{fmt.Sprintf("project%d", project)}
	if typeLabel != "" {
		labels = append(labels, typeLabel)
	}

	opts := &gh.IssueListByRepoOptions{
		Labels:      labels,
		State:       "all",
		Sort:        "created",
		Direction:   "asc",
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	var items []entities.Item
	for {
		page, resp, err := g.api.Issues.ListByRepo(ctx, g.cfg.Owner, g.cfg.Repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list issues for project %d: %w", project, err)
		}
		for _, issue := range page {
			items = append(items, mapper.FromGitHubItem(issue))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	g.log.Infow("listed project items", "project", project, "labels", labels, "count", len(items))
	return items, nil
}

// CreateIssue opens a grading issue with labels, assignees and milestone.
func (g *GitHub) CreateIssue(ctx context.Context, issue entities.NewIssue) (*entities.Issue, error) {
	req := &gh.IssueRequest{
		Title:     gh.String(issue.Title),
		Body:      gh.String(issue.Body),
		Labels:    &issue.Labels,
		Assignees: &issue.Assignees,
		Milestone: gh.Int(issue.Milestone),
	}

	created, _, err := g.api.Issues.Create(ctx, g.cfg.Owner, g.cfg.Repo, req)
	if err != nil {
		return nil, fmt.Errorf("%w: create issue %q: %v", entities.ErrRemoteWrite, issue.Title, err)
	}
	return mapper.FromGitHubIssue(created), nil
}

// CreateComment posts a comment on an issue and returns its URL.
func (g *GitHub) CreateComment(ctx context.Context, issueNumber int, body string) (string, error) {
	comment, _, err := g.api.Issues.CreateComment(ctx, g.cfg.Owner, g.cfg.Repo, issueNumber, &gh.IssueComment{
		Body: gh.String(body),
	})
	if err != nil {
		return "", fmt.Errorf("%w: comment on issue #%d: %v", entities.ErrRemoteWrite, issueNumber, err)
	}
	return comment.GetHTMLURL(), nil
}

// CloseIssue marks an issue closed.
func (g *GitHub) CloseIssue(ctx context.Context, issueNumber int) error {
	_, _, err := g.api.Issues.Edit(ctx, g.cfg.Owner, g.cfg.Repo, issueNumber, &gh.IssueRequest{
		State: gh.String("closed"),
	})
	if err != nil {
		return fmt.Errorf("%w: close issue #%d: %v", entities.ErrRemoteWrite, issueNumber, err)
	}
	return nil
}

// ListMilestones returns the repository milestones.
func (g *GitHub) ListMilestones(ctx context.Context) ([]entities.Milestone, error) {
	listed, _, err := g.api.Issues.ListMilestones(ctx, g.cfg.Owner, g.cfg.Repo, nil)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}

	milestones := make([]entities.Milestone, 0, len(listed))
	for _, m := range listed {
		milestones = append(milestones, mapper.FromGitHubMilestone(m))
	}
	return milestones, nil
}

// CreateMilestone opens a milestone for a project.
func (g *GitHub) CreateMilestone(ctx context.Context, title, description string) (*entities.Milestone, error) {
	created, _, err := g.api.Issues.CreateMilestone(ctx, g.cfg.Owner, g.cfg.Repo, &gh.Milestone{
		Title:       gh.String(title),
		State:       gh.String("open"),
		Description: gh.String(description),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create milestone %q: %v", entities.ErrRemoteWrite, title, err)
	}

	milestone := mapper.FromGitHubMilestone(created)
	g.log.Infow("milestone created", "title", milestone.Title, "number", milestone.Number)
	return &milestone, nil
}

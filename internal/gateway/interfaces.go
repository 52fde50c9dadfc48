// Package gateway contains gateway interfaces for the repository host.
package gateway

import (
	"context"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"
)

// LifecycleInterface describes gateway startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ReleaseInterface exposes release and workflow verification lookups.
type ReleaseInterface interface {
	GetReleaseByTag(ctx context.Context, tag string) (*entities.Release, error)
	ListWorkflowRuns(ctx context.Context, workflowFile, event string) ([]entities.WorkflowRun, error)
}

// IssueInterface exposes issue listing and write operations.
type IssueInterface interface {
	ListProjectItems(ctx context.Context, project int, typeLabel string) ([]entities.Item, error)
	CreateIssue(ctx context.Context, issue entities.NewIssue) (*entities.Issue, error)
	CreateComment(ctx context.Context, issueNumber int, body string) (string, error)
	CloseIssue(ctx context.Context, issueNumber int) error
}

// MilestoneInterface exposes milestone lookups and creation.
type MilestoneInterface interface {
	ListMilestones(ctx context.Context) ([]entities.Milestone, error)
	CreateMilestone(ctx context.Context, title, description string) (*entities.Milestone, error)
}

// ReviewInterface exposes pull request review lookups.
type ReviewInterface interface {
	ListReviews(ctx context.Context, pullNumber int) ([]entities.Review, error)
}

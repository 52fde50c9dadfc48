// Package gateway provides factory for repository host gateways.
package gateway

import (
	"context"
	"fmt"

	"github.com/usf-cs272-fall2021/action-request-grade/config"
	"github.com/usf-cs272-fall2021/action-request-grade/internal/gateway/github"

	"go.uber.org/zap"
)

// Gateway aggregates all repository host interfaces.
type Gateway interface {
	LifecycleInterface
	ReleaseInterface
	IssueInterface
	MilestoneInterface
	ReviewInterface
}

// New constructs a gateway backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Gateway, error) {
	switch name {
	case "github":
		return github.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown gateway backend: %s", name)
	}
}

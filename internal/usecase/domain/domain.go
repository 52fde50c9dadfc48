// Package domain contains the grading use cases.
package domain

import (
	"context"
	"time"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/gateway"

	"go.uber.org/zap"
)

// Options carries run parameters for the grading use cases.
type Options struct {
	// Timeout bounds one full usecase call, all gateway calls included.
	Timeout time.Duration
	// Zone is the reference zone for deadline and submission arithmetic.
	Zone *time.Location
	// Reviewer is the single identity whose approvals count.
	Reviewer string
	// WorkflowFile names the test workflow verifying releases.
	WorkflowFile string
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx  context.Context
	log  *zap.SugaredLogger
	gw   gateway.Gateway
	opts Options
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	gw gateway.Gateway,
	opts Options,
) *Usecase {
	if opts.Zone == nil {
		opts.Zone = time.UTC
	}
	return &Usecase{
		ctx:  ctx,
		log:  log,
		gw:   gw,
		opts: opts,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

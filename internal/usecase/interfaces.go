package usecase

import (
	"context"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/entities"
)

// SetupUsecaseInterface abstracts request verification for the delivery layer.
type SetupUsecaseInterface interface {
	VerifyRequest(ctx context.Context, req entities.GradeRequest) (*entities.RunState, error)
}

// GradeUsecaseInterface abstracts grade-request processing.
type GradeUsecaseInterface interface {
	RequestGrade(ctx context.Context, state entities.RunState) (*entities.GradeOutcome, error)
}

package usecase

import (
	"context"

	"github.com/usf-cs272-fall2021/action-request-grade/internal/gateway"
	"github.com/usf-cs272-fall2021/action-request-grade/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	SetupUsecaseInterface
	GradeUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, gw gateway.Gateway, opts domain.Options) InterfaceUsecase {
	return domain.New(log, ctx, gw, opts)
}

package usecases

import (
	"context"

	"github.com/chatterbox-hq/chatterbox-backend/repositories"
	"github.com/chatterbox-hq/chatterbox-backend/usecases/executor_factory"
)

type livenessRepository interface {
	Liveness(ctx context.Context, exec repositories.Executor) error
}

type LivenessUseCase struct {
	executorFactory  executor_factory.ExecutorFactory
	healthRepository livenessRepository
	apiVersion       string
}

func (usecase *LivenessUseCase) Liveness(ctx context.Context) error {
	return usecase.healthRepository.Liveness(ctx, usecase.executorFactory.NewExecutor())
}

func (usecase *LivenessUseCase) ApiVersion() string {
	return usecase.apiVersion
}

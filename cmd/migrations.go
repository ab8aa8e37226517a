package cmd

import (
	"context"
	"fmt"

	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"

	"github.com/chatterbox-hq/chatterbox-backend/infra"
	"github.com/chatterbox-hq/chatterbox-backend/repositories"
	"github.com/chatterbox-hq/chatterbox-backend/utils"
)

func RunMigrations() error {
	pgConfig := pgConfigFromEnv()

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := pgConfig.Validate(); err != nil {
		return err
	}

	if err := repositories.RunMigrations(ctx, pgConfig, logger); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error running migrations: %v", err))
		return err
	}

	// The task queue keeps its own schema, managed by river.
	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		return err
	}
	defer pool.Close()

	migrator, err := rivermigrate.New(riverpgxv5.New(pool), nil)
	if err != nil {
		return err
	}
	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error running task queue migrations: %v", err))
		return err
	}

	logger.InfoContext(ctx, "migrations done")
	return nil
}

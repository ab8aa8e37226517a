package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
)

type HealthRepository interface {
	Liveness(ctx context.Context, exec Executor) error
}

type HealthRepositoryPostgresql struct{}

func (repo HealthRepositoryPostgresql) Liveness(ctx context.Context, exec Executor) error {
	var one int
	if err := exec.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return errors.Wrap(err, "database liveness check failed")
	}
	return nil
}

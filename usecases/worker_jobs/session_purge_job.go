package worker_jobs

import (
	"context"
	"time"

	"github.com/riverqueue/river"

	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/repositories"
	"github.com/chatterbox-hq/chatterbox-backend/usecases/executor_factory"
	"github.com/chatterbox-hq/chatterbox-backend/utils"
)

const (
	SESSION_PURGE_INTERVAL = 1 * time.Hour
	SESSION_PURGE_TIMEOUT  = 5 * time.Minute
	SESSION_PURGE_QUEUE    = "session_purge"
)

func NewSessionPurgePeriodicJob() *river.PeriodicJob {
	return river.NewPeriodicJob(
		river.PeriodicInterval(SESSION_PURGE_INTERVAL),
		func() (river.JobArgs, *river.InsertOpts) {
			return models.SessionPurgeJobArgs{},
				&river.InsertOpts{
					Queue:    SESSION_PURGE_QUEUE,
					Priority: 4, // Low priority
					UniqueOpts: river.UniqueOpts{
						ByQueue:  true,
						ByPeriod: SESSION_PURGE_INTERVAL,
					},
				}
		},
		&river.PeriodicJobOpts{RunOnStart: true},
	)
}

type sessionPurgeRepository interface {
	DeleteExpiredSessions(ctx context.Context, exec repositories.Executor, now time.Time) (int64, error)
}

// SessionPurgeWorker removes sessions past their expiry. Expired sessions
// are already rejected at authentication time, so this only reclaims rows.
type SessionPurgeWorker struct {
	river.WorkerDefaults[models.SessionPurgeJobArgs]

	sessionRepository sessionPurgeRepository
	executorFactory   executor_factory.ExecutorFactory
}

func NewSessionPurgeWorker(
	sessionRepository sessionPurgeRepository,
	executorFactory executor_factory.ExecutorFactory,
) *SessionPurgeWorker {
	return &SessionPurgeWorker{
		sessionRepository: sessionRepository,
		executorFactory:   executorFactory,
	}
}

func (w *SessionPurgeWorker) Timeout(job *river.Job[models.SessionPurgeJobArgs]) time.Duration {
	return SESSION_PURGE_TIMEOUT
}

func (w *SessionPurgeWorker) Work(ctx context.Context, job *river.Job[models.SessionPurgeJobArgs]) error {
	logger := utils.LoggerFromContext(ctx)

	deleted, err := w.sessionRepository.DeleteExpiredSessions(ctx,
		w.executorFactory.NewExecutor(), time.Now())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete expired sessions", "error", err)
		return err
	}

	if deleted > 0 {
		logger.InfoContext(ctx, "Session purge completed", "deleted_sessions", deleted)
	}

	return nil
}

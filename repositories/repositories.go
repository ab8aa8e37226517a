package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
)

type Repositories struct {
	ExecutorGetter    ExecutorGetter
	UserRepository    UserRepository
	SessionRepository SessionRepository
	MessageRepository MessageRepository
	HealthRepository  HealthRepository
	RiverClient       *river.Client[pgx.Tx]
}

type Option func(*options)

type options struct {
	riverClient *river.Client[pgx.Tx]
}

func WithRiverClient(client *river.Client[pgx.Tx]) Option {
	return func(o *options) {
		o.riverClient = client
	}
}

func NewRepositories(pool *pgxpool.Pool, opts ...Option) Repositories {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return Repositories{
		ExecutorGetter:    NewExecutorGetter(pool),
		UserRepository:    &UserRepositoryPostgresql{},
		SessionRepository: &SessionRepositoryPostgresql{},
		MessageRepository: &MessageRepositoryPostgresql{},
		HealthRepository:  HealthRepositoryPostgresql{},
		RiverClient:       o.riverClient,
	}
}

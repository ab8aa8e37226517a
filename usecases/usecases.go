package usecases

import (
	"time"

	"github.com/chatterbox-hq/chatterbox-backend/models"
	"github.com/chatterbox-hq/chatterbox-backend/repositories"
	"github.com/chatterbox-hq/chatterbox-backend/usecases/executor_factory"
)

const DefaultSessionLifetime = 7 * 24 * time.Hour

type Usecases struct {
	Repositories    repositories.Repositories
	appName         string
	apiVersion      string
	sessionLifetime time.Duration
}

type Option func(*options)

func WithAppName(appName string) Option {
	return func(o *options) {
		o.appName = appName
	}
}

func WithApiVersion(apiVersion string) Option {
	return func(o *options) {
		o.apiVersion = apiVersion
	}
}

func WithSessionLifetime(lifetime time.Duration) Option {
	return func(o *options) {
		if lifetime > 0 {
			o.sessionLifetime = lifetime
		}
	}
}

type options struct {
	appName         string
	apiVersion      string
	sessionLifetime time.Duration
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{
		sessionLifetime: DefaultSessionLifetime,
	}
	for _, opt := range opts {
		opt(o)
	}
	return Usecases{
		Repositories:    repositories,
		appName:         o.appName,
		apiVersion:      o.apiVersion,
		sessionLifetime: o.sessionLifetime,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewAuthUseCase() AuthUseCase {
	return AuthUseCase{
		executorFactory:   usecases.NewExecutorFactory(),
		userRepository:    usecases.Repositories.UserRepository,
		sessionRepository: usecases.Repositories.SessionRepository,
		sessionLifetime:   usecases.sessionLifetime,
	}
}

func (usecases *Usecases) NewLivenessUseCase() LivenessUseCase {
	return LivenessUseCase{
		executorFactory:  usecases.NewExecutorFactory(),
		healthRepository: usecases.Repositories.HealthRepository,
		apiVersion:       usecases.apiVersion,
	}
}

// UsecasesWithCreds ties a Usecases instance to the credentials of the
// request being served.
type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases *Usecases) WithCreds(creds models.Credentials) UsecasesWithCreds {
	return UsecasesWithCreds{
		Usecases:    *usecases,
		Credentials: creds,
	}
}

func (usecases *UsecasesWithCreds) NewChatUseCase() ChatUseCase {
	return ChatUseCase{
		executorFactory:   usecases.NewExecutorFactory(),
		messageRepository: usecases.Repositories.MessageRepository,
		credentials:       usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewUserUseCase() UserUseCase {
	return UserUseCase{
		executorFactory: usecases.NewExecutorFactory(),
		userRepository:  usecases.Repositories.UserRepository,
		credentials:     usecases.Credentials,
	}
}

package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/chatterbox-hq/chatterbox-backend/api"
	"github.com/chatterbox-hq/chatterbox-backend/infra"
	"github.com/chatterbox-hq/chatterbox-backend/repositories"
	"github.com/chatterbox-hq/chatterbox-backend/usecases"
	"github.com/chatterbox-hq/chatterbox-backend/utils"
)

func RunServer(apiVersion string) error {
	// This is where we read the environment variables and set up the configuration for the application.
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             appName,
		ApiVersion:          apiVersion,
		Port:                utils.GetEnv("PORT", "5000"),
		AppUrl:              utils.GetEnv("APP_URL", ""),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
		SessionCookieSecure: utils.GetEnv("SESSION_COOKIE_SECURE", false),
		EnablePrometheus:    utils.GetEnv("ENABLE_PROMETHEUS", true),
	}
	pgConfig := pgConfigFromEnv()
	serverConfig := struct {
		loggingFormat   string
		sentryDsn       string
		sessionLifetime time.Duration
	}{
		loggingFormat:   utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:       utils.GetEnv("SENTRY_DSN", ""),
		sessionLifetime: utils.GetEnv("SESSION_LIFETIME", usecases.DefaultSessionLifetime),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := pgConfig.Validate(); err != nil {
		return err
	}

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env)
	defer sentry.Flush(3 * time.Second)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	repositories := repositories.NewRepositories(pool)

	uc := usecases.NewUsecases(repositories,
		usecases.WithAppName(apiConfig.AppName),
		usecases.WithApiVersion(apiVersion),
		usecases.WithSessionLifetime(serverConfig.sessionLifetime),
	)

	auth := api.NewAuthentication(uc)

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc, auth)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(
			ctx,
			errors.Wrap(err, "Error while shutting down the server"),
		)
		return err
	}

	return nil
}

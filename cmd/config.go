package cmd

import (
	"github.com/chatterbox-hq/chatterbox-backend/infra"
	"github.com/chatterbox-hq/chatterbox-backend/utils"
)

const appName = "chatterbox-backend"

func pgConfigFromEnv() infra.PgConfig {
	return infra.PgConfig{
		ConnectionString:   utils.GetEnv("DATABASE_URL", ""),
		Database:           utils.GetEnv("PG_DATABASE", "chatterbox"),
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
}

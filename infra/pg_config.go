package infra

import (
	"fmt"
	"strings"
)

const DEFAULT_MAX_CONNECTIONS = 20

type PgConfig struct {
	// ConnectionString takes precedence over the discrete fields. Both the
	// postgres:// and postgresql:// schemes are accepted (managed providers
	// hand out either).
	ConnectionString   string
	Database           string
	Hostname           string
	Password           string
	Port               string
	User               string
	MaxPoolConnections int
	SslMode            string
}

func (config PgConfig) GetConnectionString() string {
	if config.ConnectionString != "" {
		return strings.Replace(config.ConnectionString, "postgres://", "postgresql://", 1)
	}

	if config.SslMode == "" {
		config.SslMode = "prefer"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s database=%s sslmode=%s",
		config.Hostname, config.Port, config.User, config.Password, config.Database, config.SslMode)
}

func (config PgConfig) Validate() error {
	if config.ConnectionString == "" && config.Hostname == "" {
		return fmt.Errorf("either DATABASE_URL or PG_HOSTNAME is required")
	}
	return nil
}

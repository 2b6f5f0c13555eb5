package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig contains every environment-driven parameter of the gateway.
type EnvConfig struct {
	Port        string `env:"PORT" envDefault:"3000"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"datastore-gateway"`

	Mongo   Mongo   `envPrefix:"MONGO_"`
	MySQL   MySQL   `envPrefix:"MYSQL_"`
	Storage Storage `envPrefix:"S3_"`
	Upload  Upload  `envPrefix:"UPLOAD_"`
	Log     Log     `envPrefix:""`
}

// Mongo contains document-store connection parameters.
type Mongo struct {
	URI      string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"DB" envDefault:"gateway"`
}

// MySQL contains relational-store connection parameters. PoolSize bounds the
// number of concurrently open connections; waiters queue without a timeout.
type MySQL struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"3306"`
	User     string `env:"USER" envDefault:"root"`
	Password string `env:"PASSWORD"`
	Database string `env:"DB" envDefault:"gateway"`
	PoolSize int    `env:"POOL_SIZE" envDefault:"10"`
}

// Storage contains object-storage credentials. SessionToken is only needed
// with temporary credentials.
type Storage struct {
	Endpoint     string `env:"ENDPOINT" envDefault:"s3.amazonaws.com"`
	AccessKey    string `env:"ACCESS_KEY"`
	SecretKey    string `env:"SECRET_KEY"`
	SessionToken string `env:"SESSION_TOKEN"`
	Region       string `env:"REGION" envDefault:"us-east-1"`
	UseSSL       bool   `env:"USE_SSL" envDefault:"true"`
}

// Upload contains multipart upload limits.
type Upload struct {
	MaxBytes int64 `env:"MAX_BYTES" envDefault:"52428800"`
}

// Log contains audit-logging parameters. When OTLPEndpoint is empty the
// logger writes to stdout only.
type Log struct {
	OTLPEndpoint string `env:"OTLP_LOG_ENDPOINT"`
	OTLPInsecure bool   `env:"OTLP_LOG_INSECURE" envDefault:"false"`
}

// LoadEnvConfig parses the environment into an EnvConfig.
func LoadEnvConfig() (*EnvConfig, error) {
	cfg := EnvConfig{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return &cfg, nil
}

// DSN renders the MySQL connection string.
func (m MySQL) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		m.User, m.Password, m.Host, m.Port, m.Database)
}

package infra

import (
	"context"
	"fmt"

	"github.com/jrandrade/datastore-gateway/config"
)

// Infra is the connection manager: one handle per backing store plus the
// audit logger. It is constructed once in main and injected into the
// repositories and controllers; there is no package-level instance.
type Infra struct {
	Mongo       *MongoClient
	MySQL       *MySQLClient
	ObjectStore *ObjectStoreClient
	Logger      *LoggerClient
}

// InitInfra builds every client. Store connectivity is probed once and the
// outcome logged; a down store is non-fatal at boot, only a misconfigured
// client is.
func InitInfra(cfg *config.Config) (*Infra, error) {
	logger, err := InitLoggerClient(cfg.EnvConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := context.Background()

	mongo, err := InitMongoClient(cfg.EnvConfig)
	if err != nil {
		return nil, err
	}
	if err := mongo.Ping(ctx); err != nil {
		logger.ErrorWithContextf(ctx, err, "[Infra] MongoDB unreachable at startup")
	} else {
		logger.InfoWithContextf(ctx, "[Infra] MongoDB connected")
	}

	mysql, err := InitMySQLClient(cfg.EnvConfig)
	if err != nil {
		return nil, err
	}
	if err := mysql.Ping(ctx); err != nil {
		logger.ErrorWithContextf(ctx, err, "[Infra] MySQL unreachable at startup")
	} else {
		logger.InfoWithContextf(ctx, "[Infra] MySQL pool connected (capacity %d)", cfg.EnvConfig.MySQL.PoolSize)
	}

	objectStore, err := InitObjectStoreClient(cfg.EnvConfig)
	if err != nil {
		return nil, err
	}

	return &Infra{
		Mongo:       mongo,
		MySQL:       mysql,
		ObjectStore: objectStore,
		Logger:      logger,
	}, nil
}

// Shutdown tears down every handle. Errors are collected best-effort; the
// process is exiting either way.
func (i *Infra) Shutdown(ctx context.Context) {
	if i.Mongo != nil {
		if err := i.Mongo.Disconnect(ctx); err != nil {
			i.Logger.ErrorWithContextf(ctx, err, "[Infra] MongoDB disconnect failed")
		}
	}
	if i.MySQL != nil {
		if err := i.MySQL.Close(); err != nil {
			i.Logger.ErrorWithContextf(ctx, err, "[Infra] MySQL pool close failed")
		}
	}
	if i.Logger != nil {
		_ = i.Logger.Shutdown(ctx)
	}
}

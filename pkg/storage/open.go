package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/config"
	"carecompanion.app/companion-service/pkg/db"
)

// Open selects the KV backend named by the configuration. The returned close function
// releases network clients; it is a no-op for the gorm backends.
func Open(ctx context.Context, cfg *config.Config) (KV, func(), error) {
	logger := common.GetLoggerWith(common.LoggerNameStorage)
	logger.Info("Opening key-value backend", zap.String("backend", cfg.KVBackend))

	switch cfg.KVBackend {
	case "file":
		return NewGormKV(db.GetInstance(db.UseSqliteDialector())), func() {}, nil
	case "memory":
		return NewGormKV(db.GetInstance(db.UseMemorySqliteDialector())), func() {}, nil
	case "postgres":
		return NewGormKV(db.GetInstance(db.UsePostgresDialector(cfg.PostgresDSN))), func() {}, nil
	case "redis":
		client, err := DialRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisKV(client, "companion:"), func() { _ = client.Close() }, nil
	case "mongo":
		client, err := DialMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		closer := func() { _ = client.Disconnect(context.Background()) }
		return NewMongoKV(client.Database(cfg.MongoDatabase)), closer, nil
	default:
		return nil, nil, fmt.Errorf("unknown kv backend: %q", cfg.KVBackend)
	}
}

// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	oauthstatestore "github.com/launchithq/launchit/internal/app/store/oauthstate"
	poststore "github.com/launchithq/launchit/internal/app/store/posts"
	projectstore "github.com/launchithq/launchit/internal/app/store/projects"
	savestore "github.com/launchithq/launchit/internal/app/store/saves"
	userstore "github.com/launchithq/launchit/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and verifies it with a
// ping before the rest of startup proceeds.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("MongoDB connect failed", zap.Error(err))
		return DBDeps{}, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Error("MongoDB ping failed", zap.Error(err))
		_ = client.Disconnect(ctx)
		return DBDeps{}, err
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes every store relies on. Index builds
// are idempotent, running this on every boot is safe.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	for name, ensure := range map[string]func(context.Context) error{
		"users":        userstore.New(db).EnsureIndexes,
		"posts":        poststore.New(db).EnsureIndexes,
		"projects":     projectstore.New(db).EnsureIndexes,
		"saves":        savestore.New(db).EnsureIndexes,
		"oauth_states": oauthstatestore.New(db).EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			logger.Error("index build failed", zap.String("store", name), zap.Error(err))
			return err
		}
	}

	logger.Info("database indexes ensured")
	return nil
}

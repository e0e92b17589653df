package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"dealer-orders/internal/configs"
	"dealer-orders/internal/repository"
	mg "dealer-orders/internal/repository/mongo"
	pg "dealer-orders/internal/repository/postgres"
)

// SetupLogger configures the global logrus logger.
func SetupLogger(cfg configs.Config) {
	logrus.SetOutput(os.Stdout)
	if strings.EqualFold(cfg.LogFormat, "text") {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", cfg.LogLevel)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// OpenOrderStore connects the store selected by STORE_DRIVER. The returned
// func releases the connection.
func OpenOrderStore(ctx context.Context, cfg configs.Config) (repository.OrderStore, func(), error) {
	switch cfg.StoreDriver {
	case "postgres":
		db, err := pg.Open(cfg.PgDSN())
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connect: %w", err)
		}
		if err := pg.Migrate(db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("postgres migrate: %w", err)
		}
		logrus.Print("connected to postgres")
		return pg.NewOrderPostgres(db), func() {
			if err := db.Close(); err != nil {
				logrus.Errorf("db close: %v", err)
			}
		}, nil

	case "mongo":
		db, err := mg.ConnectDB(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo connect: %w", err)
		}
		closeFn := func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				logrus.Errorf("mongo disconnect: %v", err)
			}
		}
		store := mg.NewOrderMongo(db)
		if err := store.CreateIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("mongo indexes: %w", err)
		}
		logrus.Print("connected to mongo")
		return store, closeFn, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

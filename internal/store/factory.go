package store

import (
	"fmt"

	"go.uber.org/zap"

	"alumni-connect/pkg/config"
)

// Open builds the record store selected by the configuration.
func Open(cfg *config.Config, log *zap.Logger) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		s, err := NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info("connected to sqlite store", zap.String("path", cfg.SQLitePath))
		return s, nil
	case config.DriverPostgres:
		s, err := NewPostgres(cfg.PostgresConnStr)
		if err != nil {
			return nil, err
		}
		log.Info("connected to PostgreSQL store")
		return s, nil
	case config.DriverMongo:
		s, err := NewMongo(cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		log.Info("connected to MongoDB store")
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

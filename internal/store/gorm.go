package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// record is the single table backing the SQL drivers: one serialized
// collection per scope key.
type record struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     string
	UpdatedAt time.Time
}

func (record) TableName() string { return "records" }

type gormStore struct {
	db *gorm.DB
}

// NewSQLite opens (creating if needed) the sqlite-backed store at path.
// ":memory:" gives a throwaway store for tests.
func NewSQLite(path string) (Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}
	return newGormStore(db)
}

// NewPostgres connects the store to a PostgreSQL database.
func NewPostgres(connStr string) (Store, error) {
	db, err := gorm.Open(postgres.Open(connStr), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging PostgreSQL: %w", err)
	}
	return newGormStore(db)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
}

func newGormStore(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("migrating records table: %w", err)
	}
	return &gormStore{db: db}, nil
}

func (s *gormStore) Get(key string) (string, bool, error) {
	var rec record
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

func (s *gormStore) Put(key, value string) error {
	rec := record{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

func (s *gormStore) Delete(key string) error {
	return s.db.Delete(&record{}, "key = ?", key).Error
}

func (s *gormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

package db

import (
  "fmt"
  "path/filepath"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/types"
  "github.com/Renyaaaa/mlbb-miniapp/internal/utils"
)

type SqliteService struct {
  db    *gorm.DB
  path  string
  log   *logger.Logger
}

func NewSqliteService(log *logger.Logger) (*SqliteService, error) {
  serviceLog := log.With("service", "SqliteService")

  path := utils.GetEnv("SQLITE_PATH", "data.sqlite3", log)

  log.Info("Opening sqlite database...", "path", path)
  db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
  if err != nil {
    log.Error("Failed to open sqlite database", "path", path, "error", err)
    return nil, fmt.Errorf("Failed to open sqlite database: %w", err)
  }

  // Single writer; avoids SQLITE_BUSY under concurrent requests.
  if err := db.Exec("PRAGMA busy_timeout = 5000").Error; err != nil {
    log.Warn("Failed to set busy_timeout pragma", "error", err)
  }

  return &SqliteService{db: db, path: path, log: serviceLog}, nil
}

func (s *SqliteService) AutoMigrateAll() error {
  s.log.Info("Auto migrating sqlite tables...")
  err := s.db.AutoMigrate(
    &types.UsedHero{},
    &types.QuizQuestion{},
    &types.DailyChallenge{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for sqlite tables", "error", err)
    return err
  }
  return nil
}

func (s *SqliteService) DB() *gorm.DB {
  return s.db
}

// Path returns the absolute location of the database file for diagnostics.
func (s *SqliteService) Path() string {
  abs, err := filepath.Abs(s.path)
  if err != nil {
    return s.path
  }
  return abs
}

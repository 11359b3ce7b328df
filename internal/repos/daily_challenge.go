package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/types"
)

type DailyChallengeRepo interface {
  GetByDate(ctx context.Context, tx *gorm.DB, date string) (*types.DailyChallenge, error)
  Create(ctx context.Context, tx *gorm.DB, record *types.DailyChallenge) (bool, error)
}

type dailyChallengeRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewDailyChallengeRepo(db *gorm.DB, baseLog *logger.Logger) DailyChallengeRepo {
  repoLog := baseLog.With("repo", "DailyChallengeRepo")
  return &dailyChallengeRepo{db: db, log: repoLog}
}

// GetByDate returns (nil, nil) when no row matches.
func (r *dailyChallengeRepo) GetByDate(ctx context.Context, tx *gorm.DB, date string) (*types.DailyChallenge, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.DailyChallenge
  if err := transaction.WithContext(ctx).
    Where("date = ?", date).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

// Create inserts the challenge for its date. The date key is authoritative:
// a conflicting insert is ignored and reported as inserted=false so the
// caller can re-read the winning row.
func (r *dailyChallengeRepo) Create(ctx context.Context, tx *gorm.DB, record *types.DailyChallenge) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  res := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{DoNothing: true}).
    Create(record)
  if res.Error != nil {
    return false, res.Error
  }
  return res.RowsAffected > 0, nil
}

package repos

import (
  "context"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/types"
)

type UsedHeroRepo interface {
  ListHeroes(ctx context.Context, tx *gorm.DB) ([]string, error)
  Create(ctx context.Context, tx *gorm.DB, record *types.UsedHero) error
  DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error)
}

type usedHeroRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUsedHeroRepo(db *gorm.DB, baseLog *logger.Logger) UsedHeroRepo {
  repoLog := baseLog.With("repo", "UsedHeroRepo")
  return &usedHeroRepo{db: db, log: repoLog}
}

func (r *usedHeroRepo) ListHeroes(ctx context.Context, tx *gorm.DB) ([]string, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var heroes []string
  if err := transaction.WithContext(ctx).
    Model(&types.UsedHero{}).
    Pluck("hero", &heroes).Error; err != nil {
    return nil, err
  }
  return heroes, nil
}

// Create inserts the used mark. Re-marking an already used hero is a no-op,
// the first insert wins.
func (r *usedHeroRepo) Create(ctx context.Context, tx *gorm.DB, record *types.UsedHero) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{DoNothing: true}).
    Create(record).Error; err != nil {
    return err
  }
  return nil
}

func (r *usedHeroRepo) DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  res := transaction.WithContext(ctx).
    Where("1 = 1").
    Delete(&types.UsedHero{})
  if res.Error != nil {
    return 0, res.Error
  }
  return res.RowsAffected, nil
}

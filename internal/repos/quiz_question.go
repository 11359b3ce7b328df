package repos

import (
  "context"
  "errors"
  "gorm.io/gorm"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/types"
)

type QuizQuestionRepo interface {
  Create(ctx context.Context, tx *gorm.DB, question *types.QuizQuestion) (*types.QuizQuestion, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.QuizQuestion, error)
  ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.QuizQuestion, error)
}

type quizQuestionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewQuizQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuizQuestionRepo {
  repoLog := baseLog.With("repo", "QuizQuestionRepo")
  return &quizQuestionRepo{db: db, log: repoLog}
}

func (r *quizQuestionRepo) Create(ctx context.Context, tx *gorm.DB, question *types.QuizQuestion) (*types.QuizQuestion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(question).Error; err != nil {
    return nil, err
  }
  return question, nil
}

// GetByID returns (nil, nil) when no row matches.
func (r *quizQuestionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.QuizQuestion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.QuizQuestion
  if err := transaction.WithContext(ctx).
    First(&result, id).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *quizQuestionRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.QuizQuestion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if limit <= 0 {
    limit = 10
  }

  var results []*types.QuizQuestion
  if err := transaction.WithContext(ctx).
    Order("id DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

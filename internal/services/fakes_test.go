package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/Renyaaaa/mlbb-miniapp/internal/logger"
	"github.com/Renyaaaa/mlbb-miniapp/internal/types"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to build test logger: %v", err)
	}
	return log
}

// fakeGemini scripts the provider reply for envelope tests.
type fakeGemini struct {
	text  string
	err   error
	calls int
}

func (f *fakeGemini) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	f.calls++
	return f.text, f.err
}

func (f *fakeGemini) Model() string { return "fake-model" }

type memUsedHeroRepo struct {
	rows    map[string]string
	listErr error
}

func newMemUsedHeroRepo() *memUsedHeroRepo {
	return &memUsedHeroRepo{rows: map[string]string{}}
}

func (m *memUsedHeroRepo) ListHeroes(ctx context.Context, tx *gorm.DB) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	heroes := make([]string, 0, len(m.rows))
	for hero := range m.rows {
		heroes = append(heroes, hero)
	}
	return heroes, nil
}

func (m *memUsedHeroRepo) Create(ctx context.Context, tx *gorm.DB, record *types.UsedHero) error {
	if _, exists := m.rows[record.Hero]; exists {
		return nil
	}
	m.rows[record.Hero] = record.PostedAt
	return nil
}

func (m *memUsedHeroRepo) DeleteAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	cleared := int64(len(m.rows))
	m.rows = map[string]string{}
	return cleared, nil
}

type memQuizRepo struct {
	rows   []types.QuizQuestion
	nextID uint
}

func newMemQuizRepo() *memQuizRepo {
	return &memQuizRepo{nextID: 1}
}

func (m *memQuizRepo) Create(ctx context.Context, tx *gorm.DB, question *types.QuizQuestion) (*types.QuizQuestion, error) {
	question.ID = m.nextID
	m.nextID++
	m.rows = append(m.rows, *question)
	return question, nil
}

func (m *memQuizRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.QuizQuestion, error) {
	for i := range m.rows {
		if m.rows[i].ID == id {
			row := m.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (m *memQuizRepo) ListRecent(ctx context.Context, tx *gorm.DB, limit int) ([]*types.QuizQuestion, error) {
	if limit <= 0 {
		limit = 10
	}
	results := make([]*types.QuizQuestion, 0, limit)
	for i := len(m.rows) - 1; i >= 0 && len(results) < limit; i-- {
		row := m.rows[i]
		results = append(results, &row)
	}
	return results, nil
}

type memDailyRepo struct {
	rows     map[string]types.DailyChallenge
	onCreate func(record *types.DailyChallenge) (bool, error)
}

func newMemDailyRepo() *memDailyRepo {
	return &memDailyRepo{rows: map[string]types.DailyChallenge{}}
}

func (m *memDailyRepo) GetByDate(ctx context.Context, tx *gorm.DB, date string) (*types.DailyChallenge, error) {
	row, ok := m.rows[date]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (m *memDailyRepo) Create(ctx context.Context, tx *gorm.DB, record *types.DailyChallenge) (bool, error) {
	if m.onCreate != nil {
		return m.onCreate(record)
	}
	if _, exists := m.rows[record.Date]; exists {
		return false, nil
	}
	m.rows[record.Date] = *record
	return true, nil
}

package services

import (
  "context"
  "fmt"
  "time"

  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/repos"
  "github.com/Renyaaaa/mlbb-miniapp/internal/types"
)

type DailyResult struct {
  Date   string `json:"date"`
  Text   string `json:"text"`
  Cached bool   `json:"cached"`
}

type DailyService interface {
  GetOrCreate(ctx context.Context) (*DailyResult, error)
}

type dailyService struct {
  log       *logger.Logger
  genSvc    GenerationService
  dailyRepo repos.DailyChallengeRepo
  now       func() time.Time
}

func NewDailyService(log *logger.Logger, genSvc GenerationService, dailyRepo repos.DailyChallengeRepo) DailyService {
  return &dailyService{
    log:       log.With("service", "DailyService"),
    genSvc:    genSvc,
    dailyRepo: dailyRepo,
    now:       time.Now,
  }
}

func (s *dailyService) GetOrCreate(ctx context.Context) (*DailyResult, error) {
  today := s.now().UTC().Format("2006-01-02")
  return s.getOrCreateForDate(ctx, today)
}

// getOrCreateForDate is idempotent for the rest of the calendar day: the
// first call generates and persists, every later call is a pure read. Two
// near simultaneous first calls may both generate; the date key decides the
// winner and the loser re-reads its row.
func (s *dailyService) getOrCreateForDate(ctx context.Context, date string) (*DailyResult, error) {
  existing, err := s.dailyRepo.GetByDate(ctx, nil, date)
  if err != nil {
    return nil, fmt.Errorf("Failed to load daily challenge: %w", err)
  }
  if existing != nil {
    return &DailyResult{Date: date, Text: existing.Text, Cached: true}, nil
  }

  text := s.genSvc.DailyChallenge(ctx)
  record := &types.DailyChallenge{
    Date:      date,
    Text:      text,
    CreatedAt: s.now().UTC().Format(time.RFC3339),
  }
  inserted, err := s.dailyRepo.Create(ctx, nil, record)
  if err != nil {
    return nil, fmt.Errorf("Failed to save daily challenge: %w", err)
  }
  if !inserted {
    // Lost the first-of-day race, serve the winning row.
    winner, err := s.dailyRepo.GetByDate(ctx, nil, date)
    if err != nil {
      return nil, fmt.Errorf("Failed to re-read daily challenge after conflict: %w", err)
    }
    if winner != nil {
      return &DailyResult{Date: date, Text: winner.Text, Cached: true}, nil
    }
    return nil, fmt.Errorf("Daily challenge insert conflicted but no row found for %s", date)
  }
  return &DailyResult{Date: date, Text: text, Cached: false}, nil
}

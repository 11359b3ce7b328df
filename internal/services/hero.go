package services

import (
  "context"
  "errors"
  "fmt"
  "math/rand"
  "time"

  "github.com/Renyaaaa/mlbb-miniapp/internal/heroes"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/repos"
  "github.com/Renyaaaa/mlbb-miniapp/internal/types"
)

// ErrHeroesExhausted means every roster entry has been marked used since the
// last reset. The caller surfaces it as a conflict, a reset is a separate
// explicit operation.
var ErrHeroesExhausted = errors.New("all heroes used, reset needed")

type HeroService interface {
  Remaining(ctx context.Context) (remaining []string, usedCount int, total int, err error)
  PickUnused(ctx context.Context) (string, error)
  MarkUsed(ctx context.Context, hero string) (*types.UsedHero, error)
  Reset(ctx context.Context) (int64, error)
}

type heroService struct {
  log      *logger.Logger
  roster   []string
  usedRepo repos.UsedHeroRepo
}

func NewHeroService(log *logger.Logger, roster []string, usedRepo repos.UsedHeroRepo) HeroService {
  return &heroService{
    log:      log.With("service", "HeroService"),
    roster:   roster,
    usedRepo: usedRepo,
  }
}

func NewDefaultHeroService(log *logger.Logger, usedRepo repos.UsedHeroRepo) HeroService {
  return NewHeroService(log, heroes.Roster, usedRepo)
}

func (s *heroService) unused(ctx context.Context) ([]string, int, error) {
  used, err := s.usedRepo.ListHeroes(ctx, nil)
  if err != nil {
    return nil, 0, fmt.Errorf("Failed to read used heroes: %w", err)
  }
  usedSet := make(map[string]struct{}, len(used))
  for _, h := range used {
    usedSet[h] = struct{}{}
  }
  remaining := make([]string, 0, len(s.roster))
  for _, h := range s.roster {
    if _, ok := usedSet[h]; !ok {
      remaining = append(remaining, h)
    }
  }
  return remaining, len(usedSet), nil
}

func (s *heroService) Remaining(ctx context.Context) ([]string, int, int, error) {
  remaining, usedCount, err := s.unused(ctx)
  if err != nil {
    return nil, 0, 0, err
  }
  return remaining, usedCount, len(s.roster), nil
}

// PickUnused draws uniformly from the unused subset. It has no side effect:
// committing the draw is MarkUsed, so a caller can preview before posting.
func (s *heroService) PickUnused(ctx context.Context) (string, error) {
  remaining, _, err := s.unused(ctx)
  if err != nil {
    return "", err
  }
  if len(remaining) == 0 {
    return "", ErrHeroesExhausted
  }
  return remaining[rand.Intn(len(remaining))], nil
}

func (s *heroService) MarkUsed(ctx context.Context, hero string) (*types.UsedHero, error) {
  if hero == "" {
    return nil, fmt.Errorf("Hero name is required")
  }
  record := &types.UsedHero{
    Hero:     hero,
    PostedAt: time.Now().UTC().Format(time.RFC3339),
  }
  if err := s.usedRepo.Create(ctx, nil, record); err != nil {
    return nil, fmt.Errorf("Failed to mark hero used: %w", err)
  }
  return record, nil
}

func (s *heroService) Reset(ctx context.Context) (int64, error) {
  cleared, err := s.usedRepo.DeleteAll(ctx, nil)
  if err != nil {
    return 0, fmt.Errorf("Failed to reset used heroes: %w", err)
  }
  s.log.Info("Hero rotation reset", "cleared", cleared)
  return cleared, nil
}

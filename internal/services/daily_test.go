package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Renyaaaa/mlbb-miniapp/internal/types"
)

func fixedClock(ts string) func() time.Time {
	parsed, _ := time.Parse(time.RFC3339, ts)
	return func() time.Time { return parsed }
}

func TestGetOrCreateIsIdempotentForTheDay(t *testing.T) {
	repo := newMemDailyRepo()
	gemini := &fakeGemini{text: "Сыграй без Recall"}
	svc := &dailyService{
		log:       newTestLogger(t),
		genSvc:    NewGenerationService(newTestLogger(t), gemini),
		dailyRepo: repo,
		now:       fixedClock("2025-06-01T10:00:00Z"),
	}
	ctx := context.Background()

	first, err := svc.GetOrCreate(ctx)
	require.NoError(t, err)
	require.Equal(t, "2025-06-01", first.Date)
	require.Equal(t, "Сыграй без Recall", first.Text)
	require.False(t, first.Cached)

	second, err := svc.GetOrCreate(ctx)
	require.NoError(t, err)
	require.Equal(t, first.Text, second.Text)
	require.True(t, second.Cached)

	// The second call must not hit the provider again.
	require.Equal(t, 1, gemini.calls)
}

func TestGetOrCreateNewDayGeneratesAgain(t *testing.T) {
	repo := newMemDailyRepo()
	gemini := &fakeGemini{text: "Выиграй матч с 3 защитными предметами"}
	svc := &dailyService{
		log:       newTestLogger(t),
		genSvc:    NewGenerationService(newTestLogger(t), gemini),
		dailyRepo: repo,
		now:       fixedClock("2025-06-01T23:59:00Z"),
	}
	ctx := context.Background()

	_, err := svc.GetOrCreate(ctx)
	require.NoError(t, err)

	svc.now = fixedClock("2025-06-02T00:01:00Z")
	next, err := svc.GetOrCreate(ctx)
	require.NoError(t, err)
	require.Equal(t, "2025-06-02", next.Date)
	require.False(t, next.Cached)
	require.Equal(t, 2, gemini.calls)
}

func TestGetOrCreateConflictLoserRereadsWinner(t *testing.T) {
	repo := newMemDailyRepo()
	// Simulate losing the first-of-day race: a competing writer lands its
	// row between our existence check and our insert.
	repo.onCreate = func(record *types.DailyChallenge) (bool, error) {
		repo.rows[record.Date] = types.DailyChallenge{
			Date: record.Date,
			Text: "winner text",
		}
		return false, nil
	}
	svc := &dailyService{
		log:       newTestLogger(t),
		genSvc:    NewGenerationService(newTestLogger(t), &fakeGemini{text: "loser text"}),
		dailyRepo: repo,
		now:       fixedClock("2025-06-01T00:00:01Z"),
	}

	result, err := svc.GetOrCreate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "winner text", result.Text)
	require.True(t, result.Cached)
}

func TestGetOrCreateFallsBackWhenProviderDown(t *testing.T) {
	repo := newMemDailyRepo()
	svc := &dailyService{
		log:       newTestLogger(t),
		genSvc:    NewGenerationService(newTestLogger(t), nil),
		dailyRepo: repo,
		now:       fixedClock("2025-06-01T10:00:00Z"),
	}

	result, err := svc.GetOrCreate(context.Background())
	require.NoError(t, err)
	require.Equal(t, fallbackDaily, result.Text)
	require.False(t, result.Cached)
}

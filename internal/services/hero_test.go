package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPickUnusedNeverReturnsMarkedHero(t *testing.T) {
	repo := newMemUsedHeroRepo()
	svc := NewHeroService(newTestLogger(t), []string{"A", "B", "C"}, repo)
	ctx := context.Background()

	_, err := svc.MarkUsed(ctx, "A")
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		hero, err := svc.PickUnused(ctx)
		require.NoError(t, err)
		require.Contains(t, []string{"B", "C"}, hero)
	}
}

func TestPickUnusedExhaustion(t *testing.T) {
	repo := newMemUsedHeroRepo()
	svc := NewHeroService(newTestLogger(t), []string{"A", "B", "C"}, repo)
	ctx := context.Background()

	for _, hero := range []string{"A", "B", "C"} {
		_, err := svc.MarkUsed(ctx, hero)
		require.NoError(t, err)
	}

	_, err := svc.PickUnused(ctx)
	require.ErrorIs(t, err, ErrHeroesExhausted)
}

func TestPickHasNoSideEffect(t *testing.T) {
	repo := newMemUsedHeroRepo()
	svc := NewHeroService(newTestLogger(t), []string{"A", "B"}, repo)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := svc.PickUnused(ctx)
		require.NoError(t, err)
	}

	remaining, usedCount, total, err := svc.Remaining(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	require.Equal(t, 0, usedCount)
	require.Equal(t, 2, total)
}

func TestMarkUsedTwiceKeepsSingleRow(t *testing.T) {
	repo := newMemUsedHeroRepo()
	svc := NewHeroService(newTestLogger(t), []string{"A", "B"}, repo)
	ctx := context.Background()

	_, err := svc.MarkUsed(ctx, "A")
	require.NoError(t, err)
	_, err = svc.MarkUsed(ctx, "A")
	require.NoError(t, err)

	_, usedCount, _, err := svc.Remaining(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, usedCount)
}

func TestMarkUsedRequiresHero(t *testing.T) {
	svc := NewHeroService(newTestLogger(t), []string{"A"}, newMemUsedHeroRepo())
	_, err := svc.MarkUsed(context.Background(), "")
	require.Error(t, err)
}

func TestResetReopensRotation(t *testing.T) {
	repo := newMemUsedHeroRepo()
	svc := NewHeroService(newTestLogger(t), []string{"A", "B"}, repo)
	ctx := context.Background()

	for _, hero := range []string{"A", "B"} {
		_, err := svc.MarkUsed(ctx, hero)
		require.NoError(t, err)
	}
	_, err := svc.PickUnused(ctx)
	require.ErrorIs(t, err, ErrHeroesExhausted)

	cleared, err := svc.Reset(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), cleared)

	hero, err := svc.PickUnused(ctx)
	require.NoError(t, err)
	require.Contains(t, []string{"A", "B"}, hero)
}

func TestRemainingSurfacesStoreError(t *testing.T) {
	repo := newMemUsedHeroRepo()
	repo.listErr = errors.New("disk gone")
	svc := NewHeroService(newTestLogger(t), []string{"A"}, repo)

	_, _, _, err := svc.Remaining(context.Background())
	require.Error(t, err)
}

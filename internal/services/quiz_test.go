package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

const validQuizReply = `{"question":"Что такое ротация?","options":["Смена линий","Предмет","Эмблема","Скилл"],"correct_index":0,"explanation":"Перемещение по карте."}`

func TestGenerateRoundTrip(t *testing.T) {
	repo := newMemQuizRepo()
	gen := NewGenerationService(newTestLogger(t), &fakeGemini{text: validQuizReply})
	svc := NewQuizService(newTestLogger(t), gen, repo)
	ctx := context.Background()

	generated, err := svc.Generate(ctx, "механики", "easy")
	require.NoError(t, err)
	require.NotZero(t, generated.QuizID)

	fetched, err := svc.Get(ctx, generated.QuizID)
	require.NoError(t, err)
	require.Equal(t, generated.Question, fetched.Question)
	require.Equal(t, generated.Options, fetched.Options)
	require.Equal(t, generated.CorrectIndex, fetched.CorrectIndex)
	require.Equal(t, generated.Explanation, fetched.Explanation)
}

func TestGeneratePersistsFallbackToo(t *testing.T) {
	repo := newMemQuizRepo()
	gen := NewGenerationService(newTestLogger(t), &fakeGemini{err: errors.New("provider down")})
	svc := NewQuizService(newTestLogger(t), gen, repo)
	ctx := context.Background()

	result, err := svc.Generate(ctx, "", "easy")
	require.NoError(t, err)
	require.NotZero(t, result.QuizID)
	require.Equal(t, "Что даёт предмет 'Necklace of Durance'?", result.Question)
	require.Equal(t, 0, result.CorrectIndex)

	// Fallback content still resolves later by id.
	fetched, err := svc.Get(ctx, result.QuizID)
	require.NoError(t, err)
	require.Equal(t, result.Question, fetched.Question)
}

func TestCheckVerdicts(t *testing.T) {
	repo := newMemQuizRepo()
	gen := NewGenerationService(newTestLogger(t), &fakeGemini{text: validQuizReply})
	svc := NewQuizService(newTestLogger(t), gen, repo)
	ctx := context.Background()

	generated, err := svc.Generate(ctx, "", "easy")
	require.NoError(t, err)

	right, err := svc.Check(ctx, generated.QuizID, 0)
	require.NoError(t, err)
	require.True(t, right.Correct)
	require.Equal(t, 0, right.CorrectIndex)

	wrong, err := svc.Check(ctx, generated.QuizID, 1)
	require.NoError(t, err)
	require.False(t, wrong.Correct)
	require.Equal(t, 0, wrong.CorrectIndex)
	require.Equal(t, right.Explanation, wrong.Explanation)
	require.Equal(t, right.Question, wrong.Question)
	require.Equal(t, right.Options, wrong.Options)
}

func TestCheckIsIdempotent(t *testing.T) {
	repo := newMemQuizRepo()
	gen := NewGenerationService(newTestLogger(t), &fakeGemini{text: validQuizReply})
	svc := NewQuizService(newTestLogger(t), gen, repo)
	ctx := context.Background()

	generated, err := svc.Generate(ctx, "", "easy")
	require.NoError(t, err)

	first, err := svc.Check(ctx, generated.QuizID, 2)
	require.NoError(t, err)
	second, err := svc.Check(ctx, generated.QuizID, 2)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// No mutation: the stored row still serves the same content.
	fetched, err := svc.Get(ctx, generated.QuizID)
	require.NoError(t, err)
	require.Equal(t, generated.Options, fetched.Options)
	require.Equal(t, generated.CorrectIndex, fetched.CorrectIndex)
}

func TestGetAndCheckUnknownID(t *testing.T) {
	svc := NewQuizService(newTestLogger(t), NewGenerationService(newTestLogger(t), nil), newMemQuizRepo())
	ctx := context.Background()

	_, err := svc.Get(ctx, 42)
	require.ErrorIs(t, err, ErrQuizNotFound)

	_, err = svc.Check(ctx, 42, 0)
	require.ErrorIs(t, err, ErrQuizNotFound)
}

func TestListRecentNewestFirst(t *testing.T) {
	repo := newMemQuizRepo()
	gen := NewGenerationService(newTestLogger(t), &fakeGemini{text: validQuizReply})
	svc := NewQuizService(newTestLogger(t), gen, repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Generate(ctx, "", "easy")
		require.NoError(t, err)
	}

	results, err := svc.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, uint(3), results[0].QuizID)
	require.Equal(t, uint(2), results[1].QuizID)
}

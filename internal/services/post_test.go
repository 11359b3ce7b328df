package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeYouTube struct {
	video *Video
	err   error
}

func (f *fakeYouTube) FindVideoForHero(ctx context.Context, hero string) (*Video, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.video, nil
}

func (f *fakeYouTube) PingGlobal(ctx context.Context) ([]VideoProbe, error)  { return nil, nil }
func (f *fakeYouTube) ChannelPing(ctx context.Context, hero string) ([]VideoProbe, error) {
	return nil, nil
}
func (f *fakeYouTube) ChannelID() string { return "UCchan" }

func newComposeFixture(t *testing.T, roster []string, yt YouTubeClient) PostService {
	t.Helper()
	log := newTestLogger(t)
	heroSvc := NewHeroService(log, roster, newMemUsedHeroRepo())
	genSvc := NewGenerationService(log, nil)
	return NewPostService(log, heroSvc, genSvc, yt)
}

func TestComposeWithExplicitHero(t *testing.T) {
	yt := &fakeYouTube{video: &Video{Title: "Fanny guide", URL: "https://www.youtube.com/watch?v=f1"}}
	svc := newComposeFixture(t, []string{"Fanny"}, yt)

	post, err := svc.Compose(context.Background(), "Fanny")
	require.NoError(t, err)
	require.Equal(t, "Fanny", post.Hero)
	require.Equal(t, "Fanny guide", post.VideoTitle)
	require.True(t, strings.HasSuffix(post.PostText, "\nhttps://www.youtube.com/watch?v=f1"))
	require.Contains(t, post.PostText, "Fanny")
}

func TestComposeDrawsWhenHeroOmitted(t *testing.T) {
	yt := &fakeYouTube{video: &Video{Title: "guide", URL: "https://www.youtube.com/watch?v=x"}}
	svc := newComposeFixture(t, []string{"Chou"}, yt)

	post, err := svc.Compose(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "Chou", post.Hero)
}

func TestComposeExhaustedRotation(t *testing.T) {
	yt := &fakeYouTube{video: &Video{URL: "https://www.youtube.com/watch?v=x"}}
	svc := newComposeFixture(t, []string{}, yt)

	_, err := svc.Compose(context.Background(), "")
	require.ErrorIs(t, err, ErrHeroesExhausted)
}

func TestComposeUnconfigured(t *testing.T) {
	svc := newComposeFixture(t, []string{"Chou"}, nil)

	_, err := svc.Compose(context.Background(), "Chou")
	require.ErrorIs(t, err, ErrYouTubeNotConfigured)
}

func TestComposeNoVideo(t *testing.T) {
	svc := newComposeFixture(t, []string{"Chou"}, &fakeYouTube{err: ErrNoVideoFound})

	_, err := svc.Compose(context.Background(), "Chou")
	require.ErrorIs(t, err, ErrNoVideoFound)
}

package services

import (
  "context"
  "errors"
  "fmt"

  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
)

var ErrYouTubeNotConfigured = errors.New("youtube integration is not configured")

type ComposedPost struct {
  Hero       string `json:"hero"`
  VideoTitle string `json:"video_title"`
  VideoURL   string `json:"video_url"`
  PostText   string `json:"post_text"`
}

// PostService assembles a ready-to-publish post: a hero (given or drawn from
// the rotation), a matching channel video and a generated caption.
type PostService interface {
  Compose(ctx context.Context, hero string) (*ComposedPost, error)
}

type postService struct {
  log      *logger.Logger
  heroSvc  HeroService
  genSvc   GenerationService
  ytClient YouTubeClient
}

// NewPostService accepts a nil ytClient; Compose then fails with
// ErrYouTubeNotConfigured instead of crashing.
func NewPostService(log *logger.Logger, heroSvc HeroService, genSvc GenerationService, ytClient YouTubeClient) PostService {
  return &postService{
    log:      log.With("service", "PostService"),
    heroSvc:  heroSvc,
    genSvc:   genSvc,
    ytClient: ytClient,
  }
}

func (s *postService) Compose(ctx context.Context, hero string) (*ComposedPost, error) {
  if s.ytClient == nil {
    return nil, ErrYouTubeNotConfigured
  }

  if hero == "" {
    picked, err := s.heroSvc.PickUnused(ctx)
    if err != nil {
      return nil, err
    }
    hero = picked
  }

  video, err := s.ytClient.FindVideoForHero(ctx, hero)
  if err != nil {
    return nil, err
  }

  postText := fmt.Sprintf("%s\n%s", s.genSvc.HeroPost(ctx, hero), video.URL)
  return &ComposedPost{
    Hero:       hero,
    VideoTitle: video.Title,
    VideoURL:   video.URL,
    PostText:   postText,
  }, nil
}

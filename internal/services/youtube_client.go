package services

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "io"
  "net/http"
  "net/url"
  "strings"
  "time"

  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/utils"
)

var ErrNoVideoFound = errors.New("no video found")

type Video struct {
  Title       string `json:"title"`
  URL         string `json:"url"`
  PublishedAt string `json:"published_at"`
}

// VideoProbe is the trimmed search item used by the diagnostic endpoints.
type VideoProbe struct {
  Kind    string `json:"kind"`
  VideoID string `json:"video_id"`
  Title   string `json:"title"`
}

type YouTubeClient interface {
  FindVideoForHero(ctx context.Context, hero string) (*Video, error)
  PingGlobal(ctx context.Context) ([]VideoProbe, error)
  ChannelPing(ctx context.Context, hero string) ([]VideoProbe, error)
  ChannelID() string
}

type youtubeClient struct {
  log           *logger.Logger
  baseURL       string
  apiKey        string
  channelID     string
  strictChannel bool
  httpClient    *http.Client
}

func NewYouTubeClient(log *logger.Logger) (YouTubeClient, error) {
  serviceLog := log.With("service", "YouTubeClient")

  apiKey := utils.GetEnv("YOUTUBE_API_KEY", "", log)
  if apiKey == "" {
    return nil, fmt.Errorf("YOUTUBE_API_KEY is not set")
  }

  return &youtubeClient{
    log:           serviceLog,
    baseURL:       utils.GetEnv("YOUTUBE_BASE_URL", "https://www.googleapis.com/youtube/v3", log),
    apiKey:        apiKey,
    channelID:     utils.GetEnv("YOUTUBE_CHANNEL_ID", "", log),
    strictChannel: utils.GetEnvAsBool("YOUTUBE_STRICT_CHANNEL", true, log),
    httpClient:    &http.Client{Timeout: 30 * time.Second},
  }, nil
}

func (c *youtubeClient) ChannelID() string {
  return c.channelID
}

type ytSearchItem struct {
  ID struct {
    Kind    string `json:"kind"`
    VideoID string `json:"videoId"`
  } `json:"id"`
  Snippet struct {
    Title       string `json:"title"`
    PublishedAt string `json:"publishedAt"`
  } `json:"snippet"`
}

type ytSearchResponse struct {
  Items []ytSearchItem `json:"items"`
}

func (c *youtubeClient) search(ctx context.Context, query, order, channelID string) ([]ytSearchItem, error) {
  params := url.Values{}
  params.Set("part", "snippet")
  params.Set("q", query)
  params.Set("type", "video")
  params.Set("order", order)
  params.Set("maxResults", "5")
  params.Set("key", c.apiKey)
  if channelID != "" {
    params.Set("channelId", channelID)
  }

  endpoint := fmt.Sprintf("%s/search?%s", strings.TrimRight(c.baseURL, "/"), params.Encode())
  req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
  if err != nil {
    return nil, fmt.Errorf("Failed to build youtube request: %w", err)
  }

  resp, err := c.httpClient.Do(req)
  if err != nil {
    return nil, fmt.Errorf("YouTube request failed: %w", err)
  }
  defer resp.Body.Close()

  body, err := io.ReadAll(resp.Body)
  if err != nil {
    return nil, fmt.Errorf("Failed to read youtube response: %w", err)
  }
  if resp.StatusCode != http.StatusOK {
    c.log.Warn("YouTube API error", "status", resp.StatusCode, "body", strings.TrimSpace(string(body)))
    return nil, fmt.Errorf("YouTube http %d", resp.StatusCode)
  }

  var parsed ytSearchResponse
  if err := json.Unmarshal(body, &parsed); err != nil {
    return nil, fmt.Errorf("Failed to decode youtube response: %w", err)
  }
  return parsed.Items, nil
}

// FindVideoForHero searches the configured channel first, by relevance and
// then by date; only when the channel yields nothing and strict mode is off
// does it fall back to a global search.
func (c *youtubeClient) FindVideoForHero(ctx context.Context, hero string) (*Video, error) {
  var items []ytSearchItem
  var err error

  if c.channelID != "" {
    for _, order := range []string{"relevance", "date"} {
      items, err = c.search(ctx, hero, order, c.channelID)
      if err != nil {
        return nil, err
      }
      if len(items) > 0 {
        break
      }
    }
  }

  if len(items) == 0 && !c.strictChannel {
    for _, order := range []string{"relevance", "date"} {
      items, err = c.search(ctx, hero, order, "")
      if err != nil {
        return nil, err
      }
      if len(items) > 0 {
        break
      }
    }
  }

  for _, it := range items {
    if it.ID.Kind != "youtube#video" || it.ID.VideoID == "" {
      continue
    }
    return &Video{
      Title:       it.Snippet.Title,
      URL:         fmt.Sprintf("https://www.youtube.com/watch?v=%s", it.ID.VideoID),
      PublishedAt: it.Snippet.PublishedAt,
    }, nil
  }
  return nil, ErrNoVideoFound
}

func (c *youtubeClient) PingGlobal(ctx context.Context) ([]VideoProbe, error) {
  items, err := c.search(ctx, "Mobile Legends hero guide", "relevance", "")
  if err != nil {
    return nil, err
  }
  return toProbes(items), nil
}

func (c *youtubeClient) ChannelPing(ctx context.Context, hero string) ([]VideoProbe, error) {
  if c.channelID == "" {
    return nil, fmt.Errorf("YOUTUBE_CHANNEL_ID is not set")
  }
  items, err := c.search(ctx, hero, "relevance", c.channelID)
  if err != nil {
    return nil, err
  }
  return toProbes(items), nil
}

func toProbes(items []ytSearchItem) []VideoProbe {
  probes := make([]VideoProbe, 0, len(items))
  for _, it := range items {
    probes = append(probes, VideoProbe{
      Kind:    it.ID.Kind,
      VideoID: it.ID.VideoID,
      Title:   it.Snippet.Title,
    })
  }
  return probes
}

package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/services"
)

// YouTubeHandler serves video lookup; ytClient is nil when the API key is
// not configured and every route then answers 503.
type YouTubeHandler struct {
  log      *logger.Logger
  ytClient services.YouTubeClient
}

func NewYouTubeHandler(log *logger.Logger, ytClient services.YouTubeClient) *YouTubeHandler {
  return &YouTubeHandler{
    log:      log.With("handler", "YouTubeHandler"),
    ytClient: ytClient,
  }
}

type videoForHeroRequest struct {
  Hero string `json:"hero" binding:"required"`
}

// POST /youtube/video-for-hero
func (h *YouTubeHandler) VideoForHero(c *gin.Context) {
  if h.ytClient == nil {
    RespondError(c, http.StatusServiceUnavailable, "not_configured", errors.New("YouTube API key not configured"))
    return
  }
  var body videoForHeroRequest
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  video, err := h.ytClient.FindVideoForHero(c.Request.Context(), body.Hero)
  if err != nil {
    if errors.Is(err, services.ErrNoVideoFound) {
      RespondError(c, http.StatusNotFound, "no_video", err)
      return
    }
    h.log.Error("YouTube lookup failed", "hero", body.Hero, "error", err)
    RespondError(c, http.StatusInternalServerError, "youtube_error", errors.New("YouTube lookup failed"))
    return
  }
  RespondOK(c, video)
}

package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/services"
)

type PostHandler struct {
  log     *logger.Logger
  postSvc services.PostService
}

func NewPostHandler(log *logger.Logger, postSvc services.PostService) *PostHandler {
  return &PostHandler{
    log:     log.With("handler", "PostHandler"),
    postSvc: postSvc,
  }
}

type composeRequest struct {
  // Empty hero means: draw a random unused one.
  Hero string `json:"hero"`
}

// POST /post/compose
func (h *PostHandler) Compose(c *gin.Context) {
  var body composeRequest
  if c.Request.ContentLength > 0 {
    if err := c.ShouldBindJSON(&body); err != nil {
      RespondError(c, http.StatusBadRequest, "bad_request", err)
      return
    }
  }
  result, err := h.postSvc.Compose(c.Request.Context(), body.Hero)
  if err != nil {
    switch {
    case errors.Is(err, services.ErrYouTubeNotConfigured):
      RespondError(c, http.StatusServiceUnavailable, "not_configured", err)
    case errors.Is(err, services.ErrHeroesExhausted):
      RespondError(c, http.StatusConflict, "heroes_exhausted", err)
    case errors.Is(err, services.ErrNoVideoFound):
      RespondError(c, http.StatusNotFound, "no_video", err)
    default:
      h.log.Error("Compose failed", "hero", body.Hero, "error", err)
      RespondError(c, http.StatusInternalServerError, "compose_failed", errors.New("Compose failed"))
    }
    return
  }
  RespondOK(c, result)
}

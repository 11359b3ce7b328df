package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/services"
)

type HeroHandler struct {
  log     *logger.Logger
  heroSvc services.HeroService
}

func NewHeroHandler(log *logger.Logger, heroSvc services.HeroService) *HeroHandler {
  return &HeroHandler{
    log:     log.With("handler", "HeroHandler"),
    heroSvc: heroSvc,
  }
}

type heroPickRequest struct {
  Hero string `json:"hero" binding:"required"`
}

// GET /heroes/remaining
func (h *HeroHandler) Remaining(c *gin.Context) {
  remaining, usedCount, total, err := h.heroSvc.Remaining(c.Request.Context())
  if err != nil {
    h.log.Error("Failed to read remaining heroes", "error", err)
    RespondError(c, http.StatusInternalServerError, "db_error", errors.New("Failed to read heroes from DB"))
    return
  }
  RespondOK(c, gin.H{
    "remaining":  remaining,
    "used_count": usedCount,
    "total":      total,
  })
}

// POST /heroes/pick
func (h *HeroHandler) Pick(c *gin.Context) {
  hero, err := h.heroSvc.PickUnused(c.Request.Context())
  if err != nil {
    if errors.Is(err, services.ErrHeroesExhausted) {
      RespondError(c, http.StatusConflict, "heroes_exhausted", err)
      return
    }
    h.log.Error("Failed to pick hero", "error", err)
    RespondError(c, http.StatusInternalServerError, "db_error", errors.New("DB error"))
    return
  }
  RespondOK(c, gin.H{"hero": hero})
}

// POST /heroes/mark-used
func (h *HeroHandler) MarkUsed(c *gin.Context) {
  var body heroPickRequest
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  record, err := h.heroSvc.MarkUsed(c.Request.Context(), body.Hero)
  if err != nil {
    h.log.Error("Failed to mark hero used", "hero", body.Hero, "error", err)
    RespondError(c, http.StatusInternalServerError, "db_error", errors.New("DB error"))
    return
  }
  RespondOK(c, gin.H{
    "ok":        true,
    "hero":      record.Hero,
    "posted_at": record.PostedAt,
  })
}

// POST /heroes/reset
func (h *HeroHandler) Reset(c *gin.Context) {
  cleared, err := h.heroSvc.Reset(c.Request.Context())
  if err != nil {
    h.log.Error("Failed to reset hero rotation", "error", err)
    RespondError(c, http.StatusInternalServerError, "db_error", errors.New("DB error"))
    return
  }
  RespondOK(c, gin.H{
    "ok":      true,
    "cleared": cleared,
  })
}

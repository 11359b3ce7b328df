package handlers

import (
  "fmt"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/services"
)

// AIHandler serves the generation-backed endpoints. The envelope guarantees
// a usable value for every call, so these handlers never see provider errors.
type AIHandler struct {
  log    *logger.Logger
  genSvc services.GenerationService
}

func NewAIHandler(log *logger.Logger, genSvc services.GenerationService) *AIHandler {
  return &AIHandler{
    log:    log.With("handler", "AIHandler"),
    genSvc: genSvc,
  }
}

type heroPostRequest struct {
  Hero     string `json:"hero" binding:"required"`
  VideoURL string `json:"video_url" binding:"required"`
}

type counterPickRequest struct {
  Enemy string `json:"enemy" binding:"required"`
  Lane  string `json:"lane"`
  Role  string `json:"role"`
}

type tierListRequest struct {
  Role  string `json:"role"`
  Lane  string `json:"lane"`
  Skill string `json:"skill"`
  Note  string `json:"note"`
}

type patchExplainRequest struct {
  NotesText string `json:"notes_text" binding:"required"`
}

// POST /ai/hero-post
func (h *AIHandler) HeroPost(c *gin.Context) {
  var body heroPostRequest
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  text := h.genSvc.HeroPost(c.Request.Context(), body.Hero)
  RespondOK(c, gin.H{
    "hero":      body.Hero,
    "post_text": fmt.Sprintf("%s\n%s", text, body.VideoURL),
  })
}

// POST /ai/counter-pick
func (h *AIHandler) CounterPick(c *gin.Context) {
  var body counterPickRequest
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  answer := h.genSvc.CounterPick(c.Request.Context(), body.Enemy, body.Lane, body.Role)
  RespondOK(c, gin.H{
    "enemy":  body.Enemy,
    "answer": answer,
  })
}

// POST /ai/tier-list
func (h *AIHandler) TierList(c *gin.Context) {
  var body tierListRequest
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  list := h.genSvc.TierList(c.Request.Context(), body.Role, body.Lane, body.Skill, body.Note)
  RespondOK(c, list)
}

// POST /ai/patch-explain
func (h *AIHandler) PatchExplain(c *gin.Context) {
  var body patchExplainRequest
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  summary := h.genSvc.PatchExplain(c.Request.Context(), body.NotesText)
  RespondOK(c, gin.H{"summary": summary})
}

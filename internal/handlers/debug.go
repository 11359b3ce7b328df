package handlers

import (
  "errors"
  "net/http"
  "strings"
  "github.com/gin-gonic/gin"
  "github.com/Renyaaaa/mlbb-miniapp/internal/heroes"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/services"
)

// DebugHandler exposes operator diagnostics. Client fields are nil when the
// matching credential is absent.
type DebugHandler struct {
  log         *logger.Logger
  gemini      services.GeminiClient
  ytClient    services.YouTubeClient
  quizSvc     services.QuizService
  dbPath      string
  corsOrigins []string
}

func NewDebugHandler(log *logger.Logger, gemini services.GeminiClient, ytClient services.YouTubeClient, quizSvc services.QuizService, dbPath string, corsOrigins []string) *DebugHandler {
  return &DebugHandler{
    log:         log.With("handler", "DebugHandler"),
    gemini:      gemini,
    ytClient:    ytClient,
    quizSvc:     quizSvc,
    dbPath:      dbPath,
    corsOrigins: corsOrigins,
  }
}

// GET /debug/env
func (h *DebugHandler) Env(c *gin.Context) {
  geminiModel := ""
  if h.gemini != nil {
    geminiModel = h.gemini.Model()
  }
  channelID := ""
  if h.ytClient != nil {
    channelID = h.ytClient.ChannelID()
  }
  RespondOK(c, gin.H{
    "gemini_model":       geminiModel,
    "gemini_key_set":     h.gemini != nil,
    "youtube_key_set":    h.ytClient != nil,
    "youtube_channel_id": channelID,
    "cors_origins":       h.corsOrigins,
    "heroes_count":       len(heroes.Roster),
  })
}

// GET /debug/db
func (h *DebugHandler) DB(c *gin.Context) {
  last, err := h.quizSvc.ListRecent(c.Request.Context(), 5)
  if err != nil {
    h.log.Error("DB diagnostics failed", "error", err)
    RespondError(c, http.StatusInternalServerError, "db_error", errors.New("DB diagnostics failed"))
    return
  }
  quizzes := make([]gin.H, 0, len(last))
  for _, q := range last {
    quizzes = append(quizzes, gin.H{"id": q.QuizID, "question": q.Question})
  }
  RespondOK(c, gin.H{
    "db_path":      h.dbPath,
    "last_quizzes": quizzes,
  })
}

// GET /debug/ai-ping
func (h *DebugHandler) AIPing(c *gin.Context) {
  if h.gemini == nil {
    RespondOK(c, gin.H{"ok": false, "reason": "no_api_key"})
    return
  }
  text, err := h.gemini.GenerateText(c.Request.Context(), "", "ok")
  if err != nil {
    RespondOK(c, gin.H{"ok": false, "error": err.Error()})
    return
  }
  RespondOK(c, gin.H{
    "ok":    strings.EqualFold(strings.TrimSpace(text), "ok"),
    "model": h.gemini.Model(),
  })
}

// GET /debug/youtube-ping
func (h *DebugHandler) YouTubePing(c *gin.Context) {
  if h.ytClient == nil {
    RespondError(c, http.StatusServiceUnavailable, "not_configured", errors.New("YouTube API key not configured"))
    return
  }
  items, err := h.ytClient.PingGlobal(c.Request.Context())
  if err != nil {
    RespondOK(c, gin.H{"ok": false, "error": err.Error()})
    return
  }
  RespondOK(c, gin.H{"ok": true, "items": items})
}

type channelPingRequest struct {
  Hero string `json:"hero" binding:"required"`
}

// POST /debug/youtube-channel-ping
func (h *DebugHandler) YouTubeChannelPing(c *gin.Context) {
  if h.ytClient == nil || h.ytClient.ChannelID() == "" {
    RespondError(c, http.StatusServiceUnavailable, "not_configured", errors.New("YouTube channel not configured"))
    return
  }
  var body channelPingRequest
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  items, err := h.ytClient.ChannelPing(c.Request.Context(), body.Hero)
  if err != nil {
    RespondOK(c, gin.H{"ok": false, "error": err.Error()})
    return
  }
  RespondOK(c, gin.H{"ok": true, "items": items})
}

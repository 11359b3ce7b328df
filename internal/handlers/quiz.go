package handlers

import (
  "errors"
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/services"
)

type QuizHandler struct {
  log     *logger.Logger
  quizSvc services.QuizService
}

func NewQuizHandler(log *logger.Logger, quizSvc services.QuizService) *QuizHandler {
  return &QuizHandler{
    log:     log.With("handler", "QuizHandler"),
    quizSvc: quizSvc,
  }
}

type quizGenerateRequest struct {
  Topic      string `json:"topic"`
  Difficulty string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

type quizCheckRequest struct {
  QuizID      uint `json:"quiz_id" binding:"required"`
  AnswerIndex *int `json:"answer_index" binding:"required"`
}

// POST /quiz/generate
func (h *QuizHandler) Generate(c *gin.Context) {
  var body quizGenerateRequest
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  result, err := h.quizSvc.Generate(c.Request.Context(), body.Topic, body.Difficulty)
  if err != nil {
    h.log.Error("Failed to generate quiz", "error", err)
    RespondError(c, http.StatusInternalServerError, "db_error", errors.New("Failed to save quiz"))
    return
  }
  RespondOK(c, result)
}

// POST /quiz/check
func (h *QuizHandler) Check(c *gin.Context) {
  var body quizCheckRequest
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  verdict, err := h.quizSvc.Check(c.Request.Context(), body.QuizID, *body.AnswerIndex)
  if err != nil {
    if errors.Is(err, services.ErrQuizNotFound) {
      RespondError(c, http.StatusNotFound, "quiz_not_found", err)
      return
    }
    h.log.Error("Failed to check quiz answer", "quiz_id", body.QuizID, "error", err)
    RespondError(c, http.StatusInternalServerError, "db_error", errors.New("DB error"))
    return
  }
  RespondOK(c, verdict)
}

// GET /quiz/:id
func (h *QuizHandler) Get(c *gin.Context) {
  id, err := strconv.ParseUint(c.Param("id"), 10, 32)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", errors.New("Quiz id must be an integer"))
    return
  }
  result, err := h.quizSvc.Get(c.Request.Context(), uint(id))
  if err != nil {
    if errors.Is(err, services.ErrQuizNotFound) {
      RespondError(c, http.StatusNotFound, "quiz_not_found", err)
      return
    }
    h.log.Error("Failed to load quiz", "quiz_id", id, "error", err)
    RespondError(c, http.StatusInternalServerError, "db_error", errors.New("DB error"))
    return
  }
  RespondOK(c, result)
}

// GET /quiz
func (h *QuizHandler) List(c *gin.Context) {
  limit := 10
  if raw := c.Query("limit"); raw != "" {
    if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
      limit = parsed
    }
  }
  results, err := h.quizSvc.ListRecent(c.Request.Context(), limit)
  if err != nil {
    h.log.Error("Failed to list quizzes", "error", err)
    RespondError(c, http.StatusInternalServerError, "db_error", errors.New("DB error"))
    return
  }
  RespondOK(c, gin.H{"quizzes": results})
}

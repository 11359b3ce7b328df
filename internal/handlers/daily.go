package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/services"
)

type DailyHandler struct {
  log      *logger.Logger
  dailySvc services.DailyService
}

func NewDailyHandler(log *logger.Logger, dailySvc services.DailyService) *DailyHandler {
  return &DailyHandler{
    log:      log.With("handler", "DailyHandler"),
    dailySvc: dailySvc,
  }
}

// POST /daily/generate
func (h *DailyHandler) Generate(c *gin.Context) {
  result, err := h.dailySvc.GetOrCreate(c.Request.Context())
  if err != nil {
    h.log.Error("Failed to get or create daily challenge", "error", err)
    RespondError(c, http.StatusInternalServerError, "db_error", errors.New("DB error"))
    return
  }
  RespondOK(c, result)
}

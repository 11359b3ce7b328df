package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/services"
)

type TelegramHandler struct {
  log      *logger.Logger
  verifier services.TelegramVerifier
}

func NewTelegramHandler(log *logger.Logger, verifier services.TelegramVerifier) *TelegramHandler {
  return &TelegramHandler{
    log:      log.With("handler", "TelegramHandler"),
    verifier: verifier,
  }
}

type tgVerifyRequest struct {
  InitData string `json:"init_data" binding:"required"`
}

// POST /tg/verify
func (h *TelegramHandler) Verify(c *gin.Context) {
  var body tgVerifyRequest
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "bad_request", err)
    return
  }
  auth, err := h.verifier.VerifyInitData(body.InitData)
  if err != nil {
    switch {
    case errors.Is(err, services.ErrTelegramNotConfigured):
      RespondError(c, http.StatusServiceUnavailable, "not_configured", err)
    case errors.Is(err, services.ErrMissingHash):
      RespondError(c, http.StatusBadRequest, "missing_hash", err)
    case errors.Is(err, services.ErrInvalidSignature):
      RespondError(c, http.StatusUnauthorized, "invalid_signature", err)
    default:
      h.log.Error("init_data verification failed", "error", err)
      RespondError(c, http.StatusBadRequest, "bad_request", errors.New("Verification failed"))
    }
    return
  }
  RespondOK(c, gin.H{
    "ok":        true,
    "user":      auth.User,
    "auth_date": auth.AuthDate,
    "query_id":  auth.QueryID,
  })
}

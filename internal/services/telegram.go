package services

import (
  "crypto/hmac"
  "crypto/sha256"
  "encoding/hex"
  "encoding/json"
  "errors"
  "fmt"
  "net/url"
  "sort"
  "strings"

  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
)

var (
  ErrTelegramNotConfigured = errors.New("telegram bot token is not configured")
  ErrMissingHash           = errors.New("missing hash in init_data")
  ErrInvalidSignature      = errors.New("invalid init_data hash")
)

// TelegramAuth is the verified payload of a Mini App init_data string.
type TelegramAuth struct {
  User     map[string]any `json:"user"`
  AuthDate string         `json:"auth_date"`
  QueryID  string         `json:"query_id"`
}

type TelegramVerifier interface {
  VerifyInitData(initData string) (*TelegramAuth, error)
}

type telegramVerifier struct {
  log      *logger.Logger
  botToken string
}

func NewTelegramVerifier(log *logger.Logger, botToken string) TelegramVerifier {
  return &telegramVerifier{
    log:      log.With("service", "TelegramVerifier"),
    botToken: botToken,
  }
}

// VerifyInitData checks the Mini App signature: HMAC-SHA256 over the sorted
// key=value lines (hash excluded) keyed with SHA256(bot token).
func (v *telegramVerifier) VerifyInitData(initData string) (*TelegramAuth, error) {
  if v.botToken == "" {
    return nil, ErrTelegramNotConfigured
  }

  values, err := url.ParseQuery(initData)
  if err != nil {
    return nil, fmt.Errorf("Failed to parse init_data: %w", err)
  }

  data := make(map[string]string, len(values))
  for key := range values {
    data[key] = values.Get(key)
  }
  receivedHash, ok := data["hash"]
  if !ok || receivedHash == "" {
    return nil, ErrMissingHash
  }
  delete(data, "hash")

  keys := make([]string, 0, len(data))
  for key := range data {
    keys = append(keys, key)
  }
  sort.Strings(keys)

  pairs := make([]string, 0, len(keys))
  for _, key := range keys {
    pairs = append(pairs, key+"="+data[key])
  }
  checkString := strings.Join(pairs, "\n")

  secret := sha256.Sum256([]byte(v.botToken))
  mac := hmac.New(sha256.New, secret[:])
  mac.Write([]byte(checkString))
  calculated := hex.EncodeToString(mac.Sum(nil))

  if !hmac.Equal([]byte(calculated), []byte(receivedHash)) {
    return nil, ErrInvalidSignature
  }

  auth := &TelegramAuth{
    AuthDate: data["auth_date"],
    QueryID:  data["query_id"],
  }
  if rawUser := data["user"]; rawUser != "" {
    if err := json.Unmarshal([]byte(rawUser), &auth.User); err != nil {
      v.log.Warn("init_data user field is not valid JSON", "error", err)
    }
  }
  return auth, nil
}

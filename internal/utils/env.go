package utils

import (
  "os"
  "strconv"
  "strings"
  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
)

func GetEnv(key, defaultVal string, log *logger.Logger) string {
  if log != nil {
    log = log.With("env_var", key)
  }
  val, ok := os.LookupEnv(key)
  if !ok {
    if log != nil {
      log.Debug("Environment variable not found, using default", "default", defaultVal)
    }
    return defaultVal
  }
  return val
}

func GetEnvAsInt(key string, defaultVal int, log *logger.Logger) int {
  raw := GetEnv(key, "", log)
  if raw == "" {
    return defaultVal
  }
  parsed, err := strconv.Atoi(strings.TrimSpace(raw))
  if err != nil {
    if log != nil {
      log.Warn("Environment variable is not a valid integer, using default", "env_var", key, "value", raw, "default", defaultVal)
    }
    return defaultVal
  }
  return parsed
}

func GetEnvAsBool(key string, defaultVal bool, log *logger.Logger) bool {
  raw := strings.ToLower(strings.TrimSpace(GetEnv(key, "", log)))
  if raw == "" {
    return defaultVal
  }
  switch raw {
  case "1", "true", "yes", "on":
    return true
  case "0", "false", "no", "off":
    return false
  }
  if log != nil {
    log.Warn("Environment variable is not a valid boolean, using default", "env_var", key, "value", raw, "default", defaultVal)
  }
  return defaultVal
}

// GetEnvAsList splits a comma separated env value, trimming blanks.
func GetEnvAsList(key string, defaultVal []string, log *logger.Logger) []string {
  raw := GetEnv(key, "", log)
  if raw == "" {
    return defaultVal
  }
  parts := strings.Split(raw, ",")
  out := make([]string, 0, len(parts))
  for _, p := range parts {
    p = strings.TrimSpace(p)
    if p != "" {
      out = append(out, p)
    }
  }
  if len(out) == 0 {
    return defaultVal
  }
  return out
}

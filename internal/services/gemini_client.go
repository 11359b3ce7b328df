package services

import (
  "bytes"
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"
  "strings"
  "time"

  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/utils"
)

// GeminiClient is the raw transport to the text generation provider.
// Failure policy (fallbacks, shape validation) lives in GenerationService,
// not here: this client just reports errors.
type GeminiClient interface {
  GenerateText(ctx context.Context, system string, prompt string) (string, error)
  Model() string
}

type geminiClient struct {
  log        *logger.Logger
  baseURL    string
  apiKey     string
  model      string
  httpClient *http.Client
}

func NewGeminiClient(log *logger.Logger) (GeminiClient, error) {
  serviceLog := log.With("service", "GeminiClient")

  apiKey := utils.GetEnv("GEMINI_API_KEY", "", log)
  if apiKey == "" {
    return nil, fmt.Errorf("GEMINI_API_KEY is not set")
  }

  baseURL := utils.GetEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta", log)
  model := utils.GetEnv("GEMINI_MODEL", "gemini-1.5-flash", log)
  timeoutSec := utils.GetEnvAsInt("GEMINI_TIMEOUT_SECONDS", 60, log)

  return &geminiClient{
    log:        serviceLog,
    baseURL:    strings.TrimRight(baseURL, "/"),
    apiKey:     apiKey,
    model:      model,
    httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
  }, nil
}

func (c *geminiClient) Model() string {
  return c.model
}

type geminiPart struct {
  Text string `json:"text,omitempty"`
}

type geminiContent struct {
  Role  string       `json:"role,omitempty"`
  Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
  Contents          []geminiContent `json:"contents"`
  SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
}

type geminiResponse struct {
  Candidates []struct {
    Content struct {
      Parts []geminiPart `json:"parts"`
      Role  string       `json:"role"`
    } `json:"content"`
    FinishReason string `json:"finishReason"`
  } `json:"candidates"`
}

func (c *geminiClient) GenerateText(ctx context.Context, system string, prompt string) (string, error) {
  reqBody := geminiRequest{
    Contents: []geminiContent{
      {
        Role:  "user",
        Parts: []geminiPart{{Text: prompt}},
      },
    },
  }
  if system != "" {
    reqBody.SystemInstruction = &geminiContent{
      Parts: []geminiPart{{Text: system}},
    }
  }

  payload, err := json.Marshal(reqBody)
  if err != nil {
    return "", fmt.Errorf("Failed to marshal gemini request: %w", err)
  }

  url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
  req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
  if err != nil {
    return "", fmt.Errorf("Failed to build gemini request: %w", err)
  }
  req.Header.Set("Content-Type", "application/json")

  resp, err := c.httpClient.Do(req)
  if err != nil {
    return "", fmt.Errorf("Gemini request failed: %w", err)
  }
  defer resp.Body.Close()

  body, err := io.ReadAll(resp.Body)
  if err != nil {
    return "", fmt.Errorf("Failed to read gemini response: %w", err)
  }
  if resp.StatusCode != http.StatusOK {
    return "", fmt.Errorf("Gemini http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
  }

  var parsed geminiResponse
  if err := json.Unmarshal(body, &parsed); err != nil {
    return "", fmt.Errorf("Failed to decode gemini response: %w", err)
  }
  if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
    return "", fmt.Errorf("Gemini returned no candidates")
  }

  var sb strings.Builder
  for _, part := range parsed.Candidates[0].Content.Parts {
    sb.WriteString(part.Text)
  }
  return strings.TrimSpace(sb.String()), nil
}

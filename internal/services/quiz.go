package services

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "time"

  "gorm.io/datatypes"

  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/repos"
  "github.com/Renyaaaa/mlbb-miniapp/internal/types"
)

var ErrQuizNotFound = errors.New("quiz not found")

// QuizResult is the served form of a QuizQuestion row, options unpacked.
type QuizResult struct {
  QuizID       uint     `json:"quiz_id"`
  Question     string   `json:"question"`
  Options      []string `json:"options"`
  CorrectIndex int      `json:"correct_index"`
  Explanation  string   `json:"explanation"`
  CreatedAt    string   `json:"created_at"`
}

type QuizVerdict struct {
  Correct      bool     `json:"correct"`
  CorrectIndex int      `json:"correct_index"`
  Explanation  string   `json:"explanation"`
  Question     string   `json:"question"`
  Options      []string `json:"options"`
}

type QuizService interface {
  Generate(ctx context.Context, topic, difficulty string) (*QuizResult, error)
  Get(ctx context.Context, quizID uint) (*QuizResult, error)
  Check(ctx context.Context, quizID uint, answerIndex int) (*QuizVerdict, error)
  ListRecent(ctx context.Context, limit int) ([]*QuizResult, error)
}

type quizService struct {
  log      *logger.Logger
  genSvc   GenerationService
  quizRepo repos.QuizQuestionRepo
}

func NewQuizService(log *logger.Logger, genSvc GenerationService, quizRepo repos.QuizQuestionRepo) QuizService {
  return &quizService{
    log:      log.With("service", "QuizService"),
    genSvc:   genSvc,
    quizRepo: quizRepo,
  }
}

// Generate persists whatever draft the envelope produced, fallback included,
// so every response carries a quiz_id that Check and Get can resolve later.
func (s *quizService) Generate(ctx context.Context, topic, difficulty string) (*QuizResult, error) {
  draft := s.genSvc.QuizDraft(ctx, topic, difficulty)

  optionsJSON, err := json.Marshal(draft.Options)
  if err != nil {
    return nil, fmt.Errorf("Failed to serialize quiz options: %w", err)
  }

  record := &types.QuizQuestion{
    Question:     draft.Question,
    Options:      datatypes.JSON(optionsJSON),
    CorrectIndex: draft.CorrectIndex,
    Explanation:  draft.Explanation,
    CreatedAt:    time.Now().UTC().Format(time.RFC3339),
  }
  record, err = s.quizRepo.Create(ctx, nil, record)
  if err != nil {
    return nil, fmt.Errorf("Failed to save quiz: %w", err)
  }
  return toQuizResult(record)
}

func (s *quizService) Get(ctx context.Context, quizID uint) (*QuizResult, error) {
  record, err := s.quizRepo.GetByID(ctx, nil, quizID)
  if err != nil {
    return nil, fmt.Errorf("Failed to load quiz: %w", err)
  }
  if record == nil {
    return nil, ErrQuizNotFound
  }
  return toQuizResult(record)
}

// Check is read only: repeated checks against the same quiz are idempotent.
func (s *quizService) Check(ctx context.Context, quizID uint, answerIndex int) (*QuizVerdict, error) {
  result, err := s.Get(ctx, quizID)
  if err != nil {
    return nil, err
  }
  return &QuizVerdict{
    Correct:      answerIndex == result.CorrectIndex,
    CorrectIndex: result.CorrectIndex,
    Explanation:  result.Explanation,
    Question:     result.Question,
    Options:      result.Options,
  }, nil
}

func (s *quizService) ListRecent(ctx context.Context, limit int) ([]*QuizResult, error) {
  records, err := s.quizRepo.ListRecent(ctx, nil, limit)
  if err != nil {
    return nil, fmt.Errorf("Failed to list quizzes: %w", err)
  }
  results := make([]*QuizResult, 0, len(records))
  for _, record := range records {
    result, err := toQuizResult(record)
    if err != nil {
      return nil, err
    }
    results = append(results, result)
  }
  return results, nil
}

func toQuizResult(record *types.QuizQuestion) (*QuizResult, error) {
  var options []string
  if len(record.Options) > 0 {
    if err := json.Unmarshal(record.Options, &options); err != nil {
      return nil, fmt.Errorf("Failed to decode quiz options for id %d: %w", record.ID, err)
    }
  }
  return &QuizResult{
    QuizID:       record.ID,
    Question:     record.Question,
    Options:      options,
    CorrectIndex: record.CorrectIndex,
    Explanation:  record.Explanation,
    CreatedAt:    record.CreatedAt,
  }, nil
}

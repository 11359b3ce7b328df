package services

import (
  "context"
  "encoding/json"
  "fmt"
  "strings"

  "github.com/Renyaaaa/mlbb-miniapp/internal/logger"
  "github.com/Renyaaaa/mlbb-miniapp/internal/types"
)

// GenerationService is the envelope around the text generation provider.
// Every method returns a usable value unconditionally: a missing credential,
// a provider failure, an empty reply and a malformed structured reply all
// collapse into the per-call-site fallback. No method returns an error.
type GenerationService interface {
  HeroPost(ctx context.Context, hero string) string
  CounterPick(ctx context.Context, enemy, lane, role string) string
  TierList(ctx context.Context, role, lane, skill, note string) types.TierList
  QuizDraft(ctx context.Context, topic, difficulty string) types.QuizDraft
  DailyChallenge(ctx context.Context) string
  PatchExplain(ctx context.Context, notesText string) string
}

const (
  systemHeroPost    = "Ты — редактор русскоязычного Telegram-канала по MLBB. Пиши короткие, энергичные посты."
  systemCounterPick = "Ты — эксперт по MLBB. Даёшь практичные советы и контр-пики на русском языке."
  systemTierList    = "Ты — аналитик MLBB. Формируешь tier list в JSON для Telegram Mini App."
  systemQuiz        = "Ты — тренер MLBB. Генерируешь тестовые вопросы (multiple choice) на русском."
  systemDaily       = "Ты — креативный менеджер MLBB. Придумываешь челленджи для игроков."
  systemPatch       = "Ты — аналитик патчноутов MLBB. Объясняешь изменения простым языком."

  fallbackDaily        = "Выиграй матч, не умирая более 2 раз!"
  fallbackPatch        = "Нет явных изменений."
  fallbackTierNotes    = "Не удалось распарсить JSON."
  fallbackQuizQuestion = "Что даёт предмет 'Necklace of Durance'?"
  fallbackQuizExplain  = "Предмет снижает лечение противника (anti-heal)."
)

func fallbackQuizDraft() types.QuizDraft {
  return types.QuizDraft{
    Question:     fallbackQuizQuestion,
    Options:      []string{"Анти-хилл", "Щит", "Скорость атаки", "Вампиризм"},
    CorrectIndex: 0,
    Explanation:  fallbackQuizExplain,
  }
}

type generationService struct {
  log    *logger.Logger
  client GeminiClient
}

// NewGenerationService wraps the provider client. A nil client means no
// credential is configured; every call then serves its fallback without
// touching the network.
func NewGenerationService(log *logger.Logger, client GeminiClient) GenerationService {
  return &generationService{
    log:    log.With("service", "GenerationService"),
    client: client,
  }
}

// generate is the single choke point: one provider call, no retries,
// any failure comes back as an empty string plus an operator log line.
func (s *generationService) generate(ctx context.Context, callSite, system, prompt string) string {
  if s.client == nil {
    return ""
  }
  text, err := s.client.GenerateText(ctx, system, prompt)
  if err != nil {
    s.log.Warn("Generation call failed, serving fallback", "call_site", callSite, "error", err)
    return ""
  }
  return strings.TrimSpace(text)
}

func (s *generationService) HeroPost(ctx context.Context, hero string) string {
  prompt := fmt.Sprintf(`Герой: %s
Задача: напиши 1–2 коротких предложения на русском о приёме, трюке или полезном совете с этим героем в Mobile Legends.
Стиль: живой, мотивирующий, как подпись к видео в соцсетях.
Не используй хэштеги. Не придумывай новых умений.`, hero)

  text := s.generate(ctx, "hero_post", systemHeroPost, prompt)
  if text == "" {
    text = fmt.Sprintf("Есть крутой приём с героем %s! Смотри видео ниже 👇", hero)
  }
  return text
}

func (s *generationService) CounterPick(ctx context.Context, enemy, lane, role string) string {
  var sb strings.Builder
  fmt.Fprintf(&sb, `Вопрос: как контрить героя %s в MLBB?
Укажи 3–6 контр-пиков (герои), по 1–2 ключевых совета против него и 1–2 предмета/эмблемы/боевых заклинаний, которые особенно полезны.
`, enemy)
  if lane != "" {
    fmt.Fprintf(&sb, "Линия/позиция: %s\n", lane)
  }
  if role != "" {
    fmt.Fprintf(&sb, "Роль: %s\n", role)
  }
  sb.WriteString("\nФормат ответа: короткие маркированные пункты (— ...). Без хэштегов. Без выдуманных умений.")

  text := s.generate(ctx, "counter_pick", systemCounterPick, sb.String())
  if text == "" {
    text = fmt.Sprintf("Против %s старайся пикать героев с жёстким контролем и сохраняй важные умения на её вход. Анти-хилл и прерывание — ключевые инструменты.", enemy)
  }
  return text
}

func (s *generationService) TierList(ctx context.Context, role, lane, skill, note string) types.TierList {
  var sb strings.Builder
  sb.WriteString("Сформируй актуальный tier list по MLBB в JSON с ключами: \"S\", \"A\", \"B\" (массивы имён героев) и \"notes\" (строка).\n")
  if role != "" {
    fmt.Fprintf(&sb, "Роль/класс: %s\n", role)
  }
  if lane != "" {
    fmt.Fprintf(&sb, "Линия: %s\n", lane)
  }
  if skill != "" {
    fmt.Fprintf(&sb, "Уровень игры: %s\n", skill)
  }
  if note != "" {
    fmt.Fprintf(&sb, "Контекст/заметки: %s\n", note)
  }
  sb.WriteString("\nВозвращай ТОЛЬКО валидный JSON, без пояснений, вроде:\n{\"S\":[\"...\",\"...\"],\"A\":[\"...\"],\"B\":[\"...\"],\"notes\":\"...\"}")

  raw := s.generate(ctx, "tier_list", systemTierList, sb.String())

  var list types.TierList
  if err := json.Unmarshal([]byte(stripJSONFences(raw)), &list); err != nil {
    notes := raw
    if notes == "" {
      notes = fallbackTierNotes
    }
    return types.TierList{S: []string{}, A: []string{}, B: []string{}, Notes: notes}
  }
  if list.S == nil {
    list.S = []string{}
  }
  if list.A == nil {
    list.A = []string{}
  }
  if list.B == nil {
    list.B = []string{}
  }
  return list
}

func (s *generationService) QuizDraft(ctx context.Context, topic, difficulty string) types.QuizDraft {
  if topic == "" {
    topic = "общие механики, герои, предметы"
  }
  if difficulty == "" {
    difficulty = "easy"
  }
  prompt := fmt.Sprintf(`Сгенерируй один вопрос викторины по MLBB на русском.
Тема: %s.
Сложность: %s.
Формат ответа строго JSON:
{
  "question": "Текст вопроса?",
  "options": ["Вариант 1","Вариант 2","Вариант 3","Вариант 4"],
  "correct_index": 0,
  "explanation": "Короткое объяснение, почему ответ верный."
}
Без дополнительного текста — только JSON.`, topic, difficulty)

  raw := s.generate(ctx, "quiz", systemQuiz, prompt)

  var draft types.QuizDraft
  if err := json.Unmarshal([]byte(stripJSONFences(raw)), &draft); err != nil {
    return fallbackQuizDraft()
  }
  if len(draft.Options) != 4 {
    s.log.Warn("Quiz draft failed shape check, serving fallback", "options_count", len(draft.Options))
    return fallbackQuizDraft()
  }
  if draft.CorrectIndex < 0 || draft.CorrectIndex > 3 {
    s.log.Warn("Quiz draft has out of range correct_index, serving fallback", "correct_index", draft.CorrectIndex)
    return fallbackQuizDraft()
  }
  if strings.TrimSpace(draft.Question) == "" {
    return fallbackQuizDraft()
  }
  return draft
}

func (s *generationService) DailyChallenge(ctx context.Context) string {
  prompt := `Придумай один ежедневный челлендж для MLBB на русском.
Формат: 1–2 предложения, конкретная цель, без хэштегов.
Примеры: "Выиграй матч, купив хотя бы 3 защитных предмета"; "Сыграй без Recall"; "Сделай 3 успешных ганка до 7 минуты".`

  text := s.generate(ctx, "daily_challenge", systemDaily, prompt)
  if text == "" {
    return fallbackDaily
  }
  return text
}

func (s *generationService) PatchExplain(ctx context.Context, notesText string) string {
  prompt := fmt.Sprintf(`Вот текст патчноутов (могут быть сокращены или сырыми):

%s

Сделай краткое объяснение по пунктам: кто усилен/ослаблен, ключевые изменения предметов/эмблем, что это значит для меты. Пиши по-русски, списком из 5–10 пунктов.`, notesText)

  text := s.generate(ctx, "patch_explain", systemPatch, prompt)
  if text == "" {
    return fallbackPatch
  }
  return text
}

// stripJSONFences unwraps ```json ... ``` blocks the model tends to emit
// even when asked for bare JSON.
func stripJSONFences(raw string) string {
  trimmed := strings.TrimSpace(raw)
  if !strings.HasPrefix(trimmed, "```") {
    return trimmed
  }
  trimmed = strings.TrimPrefix(trimmed, "```json")
  trimmed = strings.TrimPrefix(trimmed, "```")
  trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
  return strings.TrimSpace(trimmed)
}

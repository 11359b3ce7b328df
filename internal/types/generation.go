package types

// TierList is produced fresh per request and never persisted.
type TierList struct {
  S       []string    `json:"S"`
  A       []string    `json:"A"`
  B       []string    `json:"B"`
  Notes   string      `json:"notes"`
}

// QuizDraft is the raw structured reply from the model before it is
// accepted as a QuizQuestion row.
type QuizDraft struct {
  Question      string      `json:"question"`
  Options       []string    `json:"options"`
  CorrectIndex  int         `json:"correct_index"`
  Explanation   string      `json:"explanation"`
}

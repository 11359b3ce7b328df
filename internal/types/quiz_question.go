package types

import (
  "gorm.io/datatypes"
)

// QuizQuestion rows are created once per generation call and never updated.
// Options holds the four answer variants as a JSON array.
type QuizQuestion struct {
  ID            uint              `gorm:"primaryKey;autoIncrement" json:"id"`
  Question      string            `gorm:"column:question;not null" json:"question"`
  Options       datatypes.JSON    `gorm:"column:options_json" json:"options"`
  CorrectIndex  int               `gorm:"column:correct_index;not null" json:"correct_index"`
  Explanation   string            `gorm:"column:explanation" json:"explanation"`
  CreatedAt     string            `gorm:"column:created_at" json:"created_at"`
}

func (QuizQuestion) TableName() string {
  return "quiz_question"
}

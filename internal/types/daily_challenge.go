package types

// DailyChallenge is keyed by calendar date (YYYY-MM-DD, UTC); at most one row per day.
type DailyChallenge struct {
  Date        string    `gorm:"primaryKey;column:date" json:"date"`
  Text        string    `gorm:"column:text;not null" json:"text"`
  CreatedAt   string    `gorm:"column:created_at" json:"created_at"`
}

func (DailyChallenge) TableName() string {
  return "daily_challenge"
}

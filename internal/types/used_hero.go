package types

type UsedHero struct {
  Hero      string    `gorm:"primaryKey;column:hero" json:"hero"`
  PostedAt  string    `gorm:"column:posted_at" json:"posted_at"`
}

func (UsedHero) TableName() string {
  return "used_hero"
}

package article

import "time"

// Article holds one anti-scam awareness article. IDs come from the
// import source (or an admin create), not from the database sequence,
// so re-imports address the same rows.
type Article struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Time      time.Time `gorm:"index;not null" json:"time"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Article) TableName() string { return "articles" }

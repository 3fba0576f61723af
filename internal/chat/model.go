package chat

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Conversation is one user question and its asynchronous answer.
// Status only moves forward: pending -> processing -> completed|failed,
// and only the worker advances it past pending.
type Conversation struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint64 `gorm:"index;not null" json:"-"`
	Question string `gorm:"type:text;not null" json:"question"`

	Status  Status `gorm:"type:varchar(20);index;not null;default:pending" json:"status"`
	Content string `gorm:"type:text;not null;default:''" json:"content"`
	Error   string `gorm:"type:text;not null;default:''" json:"error"`

	// opaque dispatch handle, kept for traceability
	TaskID string `gorm:"type:varchar(255);not null;default:''" json:"task_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Conversation) TableName() string { return "conversations" }

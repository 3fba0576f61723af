package chat

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, c *Conversation) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repo) GetByID(ctx context.Context, id uint64) (*Conversation, error) {
	var c Conversation
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOwnedByID scopes the lookup to one owner, so a foreign id surfaces
// as gorm.ErrRecordNotFound rather than as a permission failure.
func (r *Repo) GetOwnedByID(ctx context.Context, userID, id uint64) (*Conversation, error) {
	var c Conversation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListAll returns every conversation, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]Conversation, error) {
	var convs []Conversation
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&convs).Error; err != nil {
		return nil, err
	}
	return convs, nil
}

// ListByUser returns one user's conversations, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uint64) ([]Conversation, error) {
	var convs []Conversation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&convs).Error; err != nil {
		return nil, err
	}
	return convs, nil
}

func (r *Repo) SetTaskID(ctx context.Context, id uint64, taskID string) error {
	return r.db.WithContext(ctx).Model(&Conversation{}).
		Where("id = ?", id).
		Update("task_id", taskID).Error
}

// MarkProcessing claims the pending -> processing edge. It reports whether
// the claim succeeded; a redelivered message for an already claimed or
// terminal conversation claims nothing.
func (r *Repo) MarkProcessing(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&Conversation{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Update("status", StatusProcessing)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *Repo) MarkCompleted(ctx context.Context, id uint64, content string) error {
	return r.db.WithContext(ctx).Model(&Conversation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":  StatusCompleted,
			"content": content,
			"error":   "",
		}).Error
}

func (r *Repo) MarkFailed(ctx context.Context, id uint64, errMsg string) error {
	return r.db.WithContext(ctx).Model(&Conversation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":  StatusFailed,
			"error":   errMsg,
			"content": "",
		}).Error
}

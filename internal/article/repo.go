package article

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// List returns all articles, newest publication time first.
func (r *Repo) List(ctx context.Context) ([]Article, error) {
	var arts []Article
	if err := r.db.WithContext(ctx).
		Order("time DESC").
		Find(&arts).Error; err != nil {
		return nil, err
	}
	return arts, nil
}

func (r *Repo) GetByID(ctx context.Context, id uint64) (*Article, error) {
	var a Article
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repo) Create(ctx context.Context, a *Article) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// UpdateFields overwrites title/time/content of an existing article.
// The id itself is never rewritten.
func (r *Repo) UpdateFields(ctx context.Context, id uint64, title string, t time.Time, content string) (*Article, error) {
	var a Article
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&a).Updates(map[string]any{
			"title":   title,
			"time":    t,
			"content": content,
		}).Error; err != nil {
			return err
		}
		a.Title, a.Time, a.Content = title, t, content
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Outcome classifies one reconciled row.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeUpdated
	OutcomeUnchanged
)

// Reconcile upserts one article by id inside a single transaction:
// missing -> create, identical -> leave untouched, differing -> overwrite
// title/time/content. Concurrent imports of the same id serialize on the
// row transaction.
func (r *Repo) Reconcile(ctx context.Context, id uint64, title string, t time.Time, content string) (Outcome, error) {
	var outcome Outcome
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Article
		err := tx.First(&existing, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			outcome = OutcomeCreated
			return tx.Create(&Article{ID: id, Title: title, Time: t, Content: content}).Error
		}
		if err != nil {
			return err
		}

		if existing.Title == title && existing.Time.Equal(t) && existing.Content == content {
			outcome = OutcomeUnchanged
			return nil
		}

		outcome = OutcomeUpdated
		return tx.Model(&existing).Updates(map[string]any{
			"title":   title,
			"time":    t,
			"content": content,
		}).Error
	})
	return outcome, err
}

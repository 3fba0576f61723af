package chat

import (
	"context"
	"fmt"

	"github.com/scam165/anti-scam-platform/internal/answer"
)

// Dispatcher hands a conversation to the out-of-process worker pool and
// returns the opaque task handle recorded on the conversation.
type Dispatcher interface {
	PublishConversation(ctx context.Context, conversationID uint64) (taskID string, err error)
}

type Service struct {
	repo       *Repo
	dispatcher Dispatcher
}

func NewService(repo *Repo, dispatcher Dispatcher) *Service {
	return &Service{repo: repo, dispatcher: dispatcher}
}

// Create stores a pending conversation for the caller and dispatches it.
// When dispatch fails the record is marked failed instead of being left
// stuck in pending; the caller still sees the conversation and observes
// the failure by polling.
func (s *Service) Create(ctx context.Context, userID uint64, question string) (*Conversation, error) {
	conv := &Conversation{
		UserID:   userID,
		Question: question,
		Status:   StatusPending,
	}
	if err := s.repo.Create(ctx, conv); err != nil {
		return nil, err
	}

	taskID, err := s.dispatcher.PublishConversation(ctx, conv.ID)
	if err != nil {
		msg := fmt.Sprintf("dispatch failed: %v", err)
		if markErr := s.repo.MarkFailed(ctx, conv.ID, msg); markErr != nil {
			return nil, markErr
		}
		conv.Status = StatusFailed
		conv.Error = msg
		return conv, nil
	}

	if err := s.repo.SetTaskID(ctx, conv.ID, taskID); err != nil {
		return nil, err
	}
	conv.TaskID = taskID
	return conv, nil
}

// List returns the caller's conversations, or every conversation for
// admin callers, newest first.
func (s *Service) List(ctx context.Context, userID uint64, isAdmin bool) ([]Conversation, error) {
	if isAdmin {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByUser(ctx, userID)
}

// Get resolves one conversation. Non-admin callers only see their own;
// a foreign id comes back as gorm.ErrRecordNotFound so existence is not
// leaked.
func (s *Service) Get(ctx context.Context, userID uint64, isAdmin bool, id uint64) (*Conversation, error) {
	if isAdmin {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.GetOwnedByID(ctx, userID, id)
}

// Process runs the worker side of the lifecycle for one conversation:
// claim pending -> processing, ask the answering service, then mark the
// terminal state. A delivery for an already claimed or terminal
// conversation is a no-op.
func (s *Service) Process(ctx context.Context, id uint64, provider answer.Provider) error {
	claimed, err := s.repo.MarkProcessing(ctx, id)
	if err != nil {
		return err
	}
	if !claimed {
		// redelivery or concurrent claim; nothing left to do
		return nil
	}

	conv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	content, err := provider.Answer(ctx, conv.Question)
	if err != nil {
		if markErr := s.repo.MarkFailed(ctx, id, err.Error()); markErr != nil {
			return markErr
		}
		return err
	}

	return s.repo.MarkCompleted(ctx, id, content)
}

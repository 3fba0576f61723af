package answer

import "context"

// Provider answers a single user question. Implementations wrap the
// external answering service; callers treat the call as opaque and
// blocking.
type Provider interface {
	Answer(ctx context.Context, question string) (string, error)
}

// SystemPrompt frames every question for the answering service.
const SystemPrompt = "You are an anti-scam awareness assistant. " +
	"Answer the user's question about scams, fraud prevention and " +
	"suspicious situations clearly and concisely."

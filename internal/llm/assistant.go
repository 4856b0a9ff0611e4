package llm

import "context"

// Assistant is the capability the matching flow needs from an external
// language model: one prompt in, free text out. Transport, auth and retries
// belong to the implementation.
type Assistant interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

package ai

import "context"

// TextGenerator is the opaque text-completion collaborator behind the AI
// prompt feature: prompt in, text result out. Transport details stay behind
// this interface.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

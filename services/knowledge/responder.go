package knowledge

import (
	"context"
	"fmt"
	"strings"

	"scholaris/models"
	"scholaris/services/intelligence"

	"go.uber.org/zap"
)

const groundedPromptTemplate = `Answer the question based only on the following context:
%s

Question: %s`

const genericSystemInstruction = "You are a helpful assistant."

// QueryResponder answers QUERY-intent messages, grounded in retrieved
// passages when a knowledge base is loaded.
type QueryResponder interface {
	Answer(ctx context.Context, question string, history []models.ChatMessage) (string, error)
}

// DefaultQueryResponder is the production QueryResponder.
type DefaultQueryResponder struct {
	LLM       intelligence.Client
	Knowledge KnowledgeService
}

// Answer responds to a general question. With a loaded knowledge base the
// model is restricted to the retrieved passages; without one it sees the
// user's side of the conversation under a generic instruction.
func (r *DefaultQueryResponder) Answer(ctx context.Context, question string, history []models.ChatMessage) (string, error) {
	if r.Knowledge != nil && r.Knowledge.Loaded(ctx) {
		passages, err := r.Knowledge.Retrieve(ctx, question)
		if err != nil {
			// Retrieval trouble should not kill the turn; fall back to an
			// ungrounded answer.
			zap.L().Warn("passage retrieval failed", zap.Error(err))
		} else {
			var contextBlock strings.Builder
			for _, p := range passages {
				contextBlock.WriteString(p.Content)
				contextBlock.WriteString("\n\n")
			}
			return r.LLM.Generate(ctx,
				fmt.Sprintf(groundedPromptTemplate, contextBlock.String(), question))
		}
	}

	var prompt strings.Builder
	prompt.WriteString(genericSystemInstruction)
	prompt.WriteString("\n\n")
	for _, msg := range history {
		if msg.Role == models.RoleUser {
			fmt.Fprintf(&prompt, "user: %s\n", msg.Content)
		}
	}
	return r.LLM.Generate(ctx, prompt.String())
}

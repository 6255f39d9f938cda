package intelligence

import (
	"context"

	genai "github.com/google/generative-ai-go/genai"
)

// MockClient is a test double for Client.
type MockClient struct {
	GenerateFunc     func(ctx context.Context, prompt string) (string, error)
	GenerateJSONFunc func(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "mock response", nil
}

func (m *MockClient) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, schema)
	}
	return "{}", nil
}

// Package knowledge manages the document knowledge base: ingestion into the
// full-text index and passage retrieval for grounded answers.
package knowledge

import (
	"context"
	"fmt"

	"scholaris/database/repository"
	"scholaris/models"

	"go.uber.org/zap"
)

const (
	chunkSize     = 1000
	chunkOverlap  = 200
	retrievalTopK = 3
)

// KnowledgeService exposes the knowledge-base capability.
type KnowledgeService interface {
	// IngestDocument splits the text and (re)indexes it under the document id,
	// returning the number of chunks stored.
	IngestDocument(ctx context.Context, documentID, text string) (int, error)
	// Retrieve returns the most relevant passages for the query, capped at the
	// fixed top-k.
	Retrieve(ctx context.Context, query string) ([]models.Passage, error)
	// Loaded reports whether any document has been ingested.
	Loaded(ctx context.Context) bool
}

// DefaultKnowledgeService is the production KnowledgeService.
type DefaultKnowledgeService struct {
	Repo repository.KnowledgeRepository
}

func (s *DefaultKnowledgeService) IngestDocument(ctx context.Context, documentID, text string) (int, error) {
	chunks := SplitText(text, chunkSize, chunkOverlap)
	if len(chunks) == 0 {
		return 0, fmt.Errorf("document %q has no indexable content", documentID)
	}
	if err := s.Repo.ReplaceDocument(ctx, documentID, chunks); err != nil {
		return 0, fmt.Errorf("index document %q: %w", documentID, err)
	}
	zap.L().Info("document indexed",
		zap.String("documentID", documentID), zap.Int("chunks", len(chunks)))
	return len(chunks), nil
}

func (s *DefaultKnowledgeService) Retrieve(ctx context.Context, query string) ([]models.Passage, error) {
	return s.Repo.Search(ctx, query, retrievalTopK)
}

func (s *DefaultKnowledgeService) Loaded(ctx context.Context) bool {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		zap.L().Warn("knowledge count failed", zap.Error(err))
		return false
	}
	return count > 0
}

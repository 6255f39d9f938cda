package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledge_ReplaceAndSearch(t *testing.T) {
	repo := NewSQLiteKnowledgeRepo(testDB(t))
	ctx := context.Background()

	chunks := []string{
		"Week 1 covers Python fundamentals and data structures.",
		"Week 2 introduces statistics and probability theory.",
		"The mentors are industry data scientists with interview experience.",
	}
	require.NoError(t, repo.ReplaceDocument(ctx, "guide", chunks))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	passages, err := repo.Search(ctx, "what is covered in week 1?", 3)
	require.NoError(t, err)
	require.NotEmpty(t, passages)
	assert.Contains(t, passages[0].Content, "Week 1")
}

func TestKnowledge_ReplaceDocumentSwapsChunks(t *testing.T) {
	repo := NewSQLiteKnowledgeRepo(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceDocument(ctx, "guide", []string{"old syllabus content"}))
	require.NoError(t, repo.ReplaceDocument(ctx, "guide", []string{"new syllabus content"}))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	passages, err := repo.Search(ctx, "syllabus", 3)
	require.NoError(t, err)
	require.Len(t, passages, 1)
	assert.Contains(t, passages[0].Content, "new")
}

func TestKnowledge_SearchCapsAtLimit(t *testing.T) {
	repo := NewSQLiteKnowledgeRepo(testDB(t))
	ctx := context.Background()

	var chunks []string
	for i := 0; i < 10; i++ {
		chunks = append(chunks, fmt.Sprintf("mentorship session notes part %d", i))
	}
	require.NoError(t, repo.ReplaceDocument(ctx, "notes", chunks))

	passages, err := repo.Search(ctx, "mentorship", 3)
	require.NoError(t, err)
	assert.Len(t, passages, 3)
}

func TestKnowledge_PunctuationDoesNotBreakMatch(t *testing.T) {
	repo := NewSQLiteKnowledgeRepo(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceDocument(ctx, "guide", []string{"Refunds are handled within 14 days."}))

	// Quotes, operators and stray syntax must be stripped, not passed to FTS5.
	passages, err := repo.Search(ctx, `"refunds" AND (how? - what!)`, 3)
	require.NoError(t, err)
	require.NotEmpty(t, passages)
	assert.Contains(t, passages[0].Content, "Refunds")
}

func TestKnowledge_EmptyQueryReturnsNothing(t *testing.T) {
	repo := NewSQLiteKnowledgeRepo(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceDocument(ctx, "guide", []string{"anything"}))

	passages, err := repo.Search(ctx, "?!...", 3)
	require.NoError(t, err)
	assert.Empty(t, passages)
}

func TestKnowledge_NoMatchReturnsEmpty(t *testing.T) {
	repo := NewSQLiteKnowledgeRepo(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceDocument(ctx, "guide", []string{"statistics module outline"}))

	passages, err := repo.Search(ctx, "zebra migration patterns", 3)
	require.NoError(t, err)
	assert.Empty(t, passages)
}

package repository

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"scholaris/database"
	"scholaris/models"

	"github.com/google/uuid"
)

// KnowledgeRepository stores document chunks and serves full-text retrieval.
type KnowledgeRepository interface {
	// ReplaceDocument swaps out every chunk of the given document.
	ReplaceDocument(ctx context.Context, documentID string, chunks []string) error
	// Search returns up to limit passages ranked by relevance.
	Search(ctx context.Context, query string, limit int) ([]models.Passage, error)
	// Count reports how many chunks are indexed.
	Count(ctx context.Context) (int, error)
}

// SQLiteKnowledgeRepo backs retrieval with SQLite FTS5.
type SQLiteKnowledgeRepo struct {
	db *database.DB
}

// NewSQLiteKnowledgeRepo creates a knowledge repository using the given database.
func NewSQLiteKnowledgeRepo(db *database.DB) *SQLiteKnowledgeRepo {
	return &SQLiteKnowledgeRepo{db: db}
}

// ReplaceDocument deletes any prior chunks of the document and inserts the new
// ones in order, all within one transaction.
func (r *SQLiteKnowledgeRepo) ReplaceDocument(ctx context.Context, documentID string, chunks []string) error {
	tx, err := r.db.SQL().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin knowledge tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM knowledge_chunks WHERE document_id = ?`, documentID,
	); err != nil {
		return fmt.Errorf("delete document chunks: %w", err)
	}

	for i, chunk := range chunks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO knowledge_chunks (id, document_id, position, content) VALUES (?, ?, ?, ?)`,
			uuid.New().String(), documentID, i, chunk,
		); err != nil {
			return fmt.Errorf("insert chunk %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit knowledge: %w", err)
	}
	return nil
}

// Search runs a rank-ordered FTS5 match. Free-text questions are sanitized to
// bare terms first so punctuation cannot break the MATCH syntax.
func (r *SQLiteKnowledgeRepo) Search(ctx context.Context, query string, limit int) ([]models.Passage, error) {
	if limit <= 0 {
		limit = 3
	}
	match := sanitizeFTSQuery(query)
	if match == "" {
		return nil, nil
	}

	rows, err := r.db.SQL().QueryContext(ctx,
		`SELECT kc.content, rank
		 FROM knowledge_fts
		 JOIN knowledge_chunks kc ON kc.rowid = knowledge_fts.rowid
		 WHERE knowledge_fts MATCH ?
		 ORDER BY rank
		 LIMIT ?`,
		match, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("knowledge search: %w", err)
	}
	defer rows.Close()

	var passages []models.Passage
	for rows.Next() {
		var p models.Passage
		if err := rows.Scan(&p.Content, &p.Rank); err != nil {
			return nil, fmt.Errorf("scan passage: %w", err)
		}
		passages = append(passages, p)
	}
	return passages, rows.Err()
}

// Count reports the number of indexed chunks.
func (r *SQLiteKnowledgeRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.SQL().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM knowledge_chunks`,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("knowledge count: %w", err)
	}
	return count, nil
}

// sanitizeFTSQuery reduces free text to alphanumeric terms OR-ed together, so
// any surviving term can match. Returns "" when nothing searchable remains.
func sanitizeFTSQuery(query string) string {
	terms := strings.FieldsFunc(query, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(terms) == 0 {
		return ""
	}
	for i, t := range terms {
		terms[i] = `"` + t + `"`
	}
	return strings.Join(terms, " OR ")
}

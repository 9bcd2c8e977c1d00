package store

import (
	"context"
	"fmt"

	"github.com/01moynul/autoshop-golang/internal/models"
)

const commentColumns = "id, article_id, author_name, author_email, content, is_approved, created_at"

func scanComment(row rowScanner) (*models.Comment, error) {
	var c models.Comment
	if err := row.Scan(
		&c.ID,
		&c.ArticleID,
		&c.AuthorName,
		&c.AuthorEmail,
		&c.Content,
		&c.IsApproved,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) queryComments(ctx context.Context, op, query string, args ...interface{}) ([]*models.Comment, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.fail(op, err)
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, s.fail(op, err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail(op, err)
	}
	return comments, nil
}

// ListComments returns the approved comments of one article, oldest first.
// An unknown article simply has no comments.
func (s *Store) ListComments(ctx context.Context, articleID int64) ([]*models.Comment, error) {
	query := "SELECT " + commentColumns + ` FROM comments
		WHERE article_id = ? AND is_approved = ?
		ORDER BY created_at ASC, id ASC`
	return s.queryComments(ctx, "list comments", query, articleID, true)
}

// ListPendingComments returns comments still waiting for moderation, oldest first.
func (s *Store) ListPendingComments(ctx context.Context) ([]*models.Comment, error) {
	query := "SELECT " + commentColumns + ` FROM comments
		WHERE is_approved = ?
		ORDER BY created_at ASC, id ASC`
	return s.queryComments(ctx, "list pending comments", query, false)
}

// CreateComment stores an unapproved comment after checking that its article exists.
func (s *Store) CreateComment(ctx context.Context, input models.CreateCommentInput) (*models.Comment, error) {
	// 1. --- Validate Input ---
	if err := s.check(input); err != nil {
		return nil, err
	}

	// 2. --- Check Parent Article ---
	exists, err := s.articleExists(ctx, input.ArticleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("article %d: %w", input.ArticleID, ErrNotFound)
	}

	// 3. --- Build Record ---
	comment := &models.Comment{
		ArticleID:   input.ArticleID,
		AuthorName:  input.AuthorName,
		AuthorEmail: input.AuthorEmail,
		Content:     input.Content,
		IsApproved:  false,
		CreatedAt:   s.now(),
	}

	// 4. --- Insert Row ---
	query := `
		INSERT INTO comments
		(article_id, author_name, author_email, content, is_approved, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := s.DB.ExecContext(ctx, query,
		comment.ArticleID,
		comment.AuthorName,
		comment.AuthorEmail,
		comment.Content,
		comment.IsApproved,
		comment.CreatedAt,
	)
	if err != nil {
		return nil, s.fail("create comment", err)
	}

	// 5. --- Attach New ID ---
	id, err := result.LastInsertId()
	if err != nil {
		return nil, s.fail("create comment", fmt.Errorf("get new comment id: %w", err))
	}
	comment.ID = id
	return comment, nil
}

// ApproveComment makes a comment visible to readers.
func (s *Store) ApproveComment(ctx context.Context, id int64) (*models.Comment, error) {
	result, err := s.DB.ExecContext(ctx, "UPDATE comments SET is_approved = ? WHERE id = ?", true, id)
	if err != nil {
		return nil, s.fail("approve comment", err)
	}
	if err := s.expectRow(result, "approve comment"); err != nil {
		return nil, fmt.Errorf("comment %d: %w", id, err)
	}

	comments, err := s.queryComments(ctx, "get comment", "SELECT "+commentColumns+" FROM comments WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	return comments[0], nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/01moynul/autoshop-golang/internal/models"
)

const articleColumns = `id, title, content, excerpt, image_url, category, author,
	like_count, view_count, is_published, created_at, updated_at`

func scanArticle(row rowScanner) (*models.Article, error) {
	var a models.Article
	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Excerpt,
		&a.ImageURL,
		&a.Category,
		&a.Author,
		&a.LikeCount,
		&a.ViewCount,
		&a.IsPublished,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListArticles returns published articles, newest first.
func (s *Store) ListArticles(ctx context.Context) ([]*models.Article, error) {
	query := "SELECT " + articleColumns + " FROM articles WHERE is_published = ? ORDER BY created_at DESC, id DESC"

	rows, err := s.DB.QueryContext(ctx, query, true)
	if err != nil {
		return nil, s.fail("list articles", err)
	}
	defer rows.Close()

	articles := make([]*models.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, s.fail("scan article", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("iterate articles", err)
	}
	return articles, nil
}

// GetArticle counts a view and returns the article with that view included.
// The increment is a single UPDATE, so concurrent readers never lose a view.
func (s *Store) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	result, err := s.DB.ExecContext(ctx, "UPDATE articles SET view_count = view_count + 1 WHERE id = ?", id)
	if err != nil {
		return nil, s.fail("count article view", err)
	}
	if err := s.expectRow(result, "count article view"); err != nil {
		return nil, fmt.Errorf("article %d: %w", id, err)
	}
	return s.findArticle(ctx, id)
}

// LikeArticle adds one like and refreshes updated_at.
func (s *Store) LikeArticle(ctx context.Context, id int64) (*models.Article, error) {
	result, err := s.DB.ExecContext(ctx,
		"UPDATE articles SET like_count = like_count + 1, updated_at = ? WHERE id = ?",
		s.now(), id,
	)
	if err != nil {
		return nil, s.fail("like article", err)
	}
	if err := s.expectRow(result, "like article"); err != nil {
		return nil, fmt.Errorf("article %d: %w", id, err)
	}
	return s.findArticle(ctx, id)
}

// CreateArticle validates and stores a new article with zeroed counters.
func (s *Store) CreateArticle(ctx context.Context, input models.CreateArticleInput) (*models.Article, error) {
	// 1. --- Validate Input ---
	if err := s.check(input); err != nil {
		return nil, err
	}

	// 2. --- Build Record ---
	now := s.now()
	article := &models.Article{
		Title:       input.Title,
		Content:     input.Content,
		Excerpt:     input.Excerpt,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Author:      input.Author,
		LikeCount:   0,
		ViewCount:   0,
		IsPublished: boolOr(input.IsPublished, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 3. --- Insert Row ---
	query := `
		INSERT INTO articles
		(title, content, excerpt, image_url, category, author, like_count, view_count, is_published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, 0, ?, ?, ?)`

	result, err := s.DB.ExecContext(ctx, query,
		article.Title,
		article.Content,
		article.Excerpt,
		article.ImageURL,
		article.Category,
		article.Author,
		article.IsPublished,
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		return nil, s.fail("create article", err)
	}

	// 4. --- Attach New ID ---
	id, err := result.LastInsertId()
	if err != nil {
		return nil, s.fail("create article", fmt.Errorf("get new article id: %w", err))
	}
	article.ID = id
	return article, nil
}

func (s *Store) findArticle(ctx context.Context, id int64) (*models.Article, error) {
	query := "SELECT " + articleColumns + " FROM articles WHERE id = ?"

	article, err := scanArticle(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("article %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, s.fail("get article", err)
	}
	return article, nil
}

func (s *Store) articleExists(ctx context.Context, id int64) (bool, error) {
	var exists int
	err := s.DB.QueryRowContext(ctx, "SELECT 1 FROM articles WHERE id = ?", id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, s.fail("check article", err)
	}
	return true, nil
}

// expectRow turns an UPDATE that touched nothing into ErrNotFound.
func (s *Store) expectRow(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return s.fail(op, fmt.Errorf("check affected rows: %w", err))
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package store

import (
	"context"
	"sync"
	"testing"

	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articleInput(title string, published bool) models.CreateArticleInput {
	return models.CreateArticleInput{
		Title:       title,
		Content:     "How to check your tyre pressure.",
		Excerpt:     ptr("Tyre basics"),
		ImageURL:    nil,
		Category:    "Maintenance",
		Author:      "Workshop Team",
		IsPublished: ptr(published),
	}
}

func TestCreateArticleDefaults(t *testing.T) {
	s := newTestStore(t)

	input := articleInput("Tyres", true)
	input.IsPublished = nil

	article, err := s.CreateArticle(context.Background(), input)
	require.NoError(t, err)

	assert.NotZero(t, article.ID)
	assert.Equal(t, "Tyres", article.Title)
	assert.Equal(t, "Tyre basics", *article.Excerpt)
	assert.Nil(t, article.ImageURL)
	assert.Equal(t, 0, article.LikeCount)
	assert.Equal(t, 0, article.ViewCount)
	assert.True(t, article.IsPublished)
}

func TestListArticlesPublishedNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, err := s.CreateArticle(ctx, articleInput("A", true))
	require.NoError(t, err)
	_, err = s.CreateArticle(ctx, articleInput("B", false))
	require.NoError(t, err)

	articles, err := s.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, a.ID, articles[0].ID)

	c, err := s.CreateArticle(ctx, articleInput("C", true))
	require.NoError(t, err)

	articles, err = s.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, c.ID, articles[0].ID)
	assert.Equal(t, a.ID, articles[1].ID)
}

func TestGetArticleCountsEveryView(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	article, err := s.CreateArticle(ctx, articleInput("Views", true))
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		got, err := s.GetArticle(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, i, got.ViewCount)
		assert.Equal(t, 0, got.LikeCount)
	}
}

func TestGetArticleNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetArticle(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLikeArticleIncrementsByOne(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	article, err := s.CreateArticle(ctx, articleInput("Likes", true))
	require.NoError(t, err)

	var last *models.Article
	for i := 0; i < 3; i++ {
		last, err = s.LikeArticle(ctx, article.ID)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, last.LikeCount)
	assert.Equal(t, 0, last.ViewCount)
	assert.True(t, last.UpdatedAt.After(article.UpdatedAt))
	assert.WithinDuration(t, article.CreatedAt, last.CreatedAt, 0)
}

func TestLikeArticleConcurrent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	article, err := s.CreateArticle(ctx, articleInput("Popular", true))
	require.NoError(t, err)
	// The fake clock is not goroutine safe.
	s.now = defaultNow

	const likes = 20
	var wg sync.WaitGroup
	for i := 0; i < likes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.LikeArticle(ctx, article.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.findArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, likes, got.LikeCount)
}

func TestLikeArticleNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.LikeArticle(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateArticleValidation(t *testing.T) {
	s := newTestStore(t)

	input := articleInput("", true)
	input.ImageURL = ptr("nope")

	_, err := s.CreateArticle(context.Background(), input)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "image_url")
}

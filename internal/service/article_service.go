package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
)

// Domain errors for article flows. Validation always happens before the
// store is touched.
var (
	ErrMissingArticleFields = errors.New("title, content, and category are required")
	ErrMissingArticleID     = errors.New("article ID is required")
	ErrNoUpdatableFields    = errors.New("no fields to update")
	ErrArticleNotFound      = errors.New("article not found")
)

// ArticleService implements the CRUD rules over the article repository.
type ArticleService struct {
	articles repository.Articles
}

func NewArticleService(articles repository.Articles) *ArticleService {
	return &ArticleService{articles: articles}
}

// List returns articles matching the filter, newest first.
func (s *ArticleService) List(ctx context.Context, f models.ArticleFilter) ([]models.Article, error) {
	return s.articles.List(ctx, f)
}

// Create validates field presence (empty strings are accepted, matching the
// contract) and stores a new article authored by the session user.
func (s *ArticleService) Create(ctx context.Context, in CreateArticleInput) (models.Article, error) {
	if in.Title == nil || in.Content == nil || in.Category == nil {
		return models.Article{}, ErrMissingArticleFields
	}

	a := models.Article{
		Title:    *in.Title,
		Content:  *in.Content,
		Category: *in.Category,
		Author:   in.Author,
	}
	if in.Featured != nil {
		a.Featured = *in.Featured
	}

	id, err := s.articles.Insert(ctx, a)
	if err != nil {
		return models.Article{}, err
	}

	created, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return models.Article{}, err
	}
	if created == nil {
		return models.Article{}, fmt.Errorf("article %d missing after insert", id)
	}
	return *created, nil
}

// Update applies a partial update. Existence is decided by the mutation's
// affected-row count; the follow-up read only builds the response body.
func (s *ArticleService) Update(ctx context.Context, in UpdateArticleInput) (models.Article, error) {
	if in.ID == nil {
		return models.Article{}, ErrMissingArticleID
	}

	patch := models.ArticlePatch{
		ID:       *in.ID,
		Title:    in.Title,
		Content:  in.Content,
		Category: in.Category,
		Featured: in.Featured,
	}
	if !patch.HasFields() {
		return models.Article{}, ErrNoUpdatableFields
	}

	affected, err := s.articles.Update(ctx, patch)
	if err != nil {
		return models.Article{}, err
	}
	if affected == 0 {
		return models.Article{}, ErrArticleNotFound
	}

	updated, err := s.articles.GetByID(ctx, patch.ID)
	if err != nil {
		return models.Article{}, err
	}
	if updated == nil {
		// row deleted between the update and the read-back
		return models.Article{}, ErrArticleNotFound
	}
	return *updated, nil
}

// Delete removes one article; zero affected rows means it never existed.
func (s *ArticleService) Delete(ctx context.Context, id *int) error {
	if id == nil {
		return ErrMissingArticleID
	}
	affected, err := s.articles.Delete(ctx, *id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

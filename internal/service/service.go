package service

import (
	"context"
	"time"

	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repository"
)

// Authorization owns credential verification and the session lifecycle.
type Authorization interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Logout(ctx context.Context, token string) error
	Check(ctx context.Context, token string) (models.AuthStatus, error)
	EnsureAdmin(ctx context.Context, username, password string) error
}

// Articles exposes the CRUD surface over article rows.
type Articles interface {
	List(ctx context.Context, f models.ArticleFilter) ([]models.Article, error)
	Create(ctx context.Context, in CreateArticleInput) (models.Article, error)
	Update(ctx context.Context, in UpdateArticleInput) (models.Article, error)
	Delete(ctx context.Context, id *int) error
}

// Contact validates and persists contact-form submissions.
type Contact interface {
	Submit(ctx context.Context, in ContactInput) (string, error)
}

// SessionSweeper runs the background loop that drops expired sessions.
// Stop via context cancellation in main() for graceful shutdown.
type SessionSweeper interface {
	Run(ctx context.Context, tick time.Duration)
}

// CreateArticleInput carries the create payload. Pointer fields distinguish
// "absent" from "empty"; only presence is validated.
type CreateArticleInput struct {
	Title    *string
	Content  *string
	Category *string
	Featured *bool
	Author   string // from the session, never client-supplied
}

// UpdateArticleInput carries a partial update. Absent fields keep their
// stored values.
type UpdateArticleInput struct {
	ID       *int
	Title    *string
	Content  *string
	Category *string
	Featured *bool
}

// ContactInput is a raw contact submission before trimming/validation.
type ContactInput struct {
	FullName *string
	Email    *string
	Message  *string
}

// Service aggregates all sub-services.
type Service struct {
	Articles
	Contact
	SessionSweeper
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, sessionTTL time.Duration) *Service {
	return &Service{
		Articles:       NewArticleService(repos.Articles),
		Contact:        NewContactService(repos.Contact),
		SessionSweeper: NewSweeperService(repos.Sessions),
		Authorization:  NewAuthService(repos.Users, repos.Sessions, sessionTTL),
	}
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"portfolio_backend/internal/models"
)

type Articles interface {
	List(ctx context.Context, f models.ArticleFilter) ([]models.Article, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	Insert(ctx context.Context, a models.Article) (int, error)
	Update(ctx context.Context, p models.ArticlePatch) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type Users interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Sessions is the server-side session store: opaque token in, session
// state out. Destroy of an unknown token is a no-op.
type Sessions interface {
	Set(ctx context.Context, s models.Session) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Destroy(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type ContactMessages interface {
	Insert(ctx context.Context, m models.ContactMessage) (int, error)
}

type Repository struct {
	Articles Articles
	Users    Users
	Sessions Sessions
	Contact  ContactMessages
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Articles: NewArticleRepository(db),
		Users:    NewUserRepository(db),
		Sessions: NewSessionRepository(db),
		Contact:  NewContactRepository(db),
	}
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio_backend/internal/models"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Ensure implementation of Articles interface at compile time.
var _ Articles = (*ArticleRepository)(nil)

const (
	articleColumns = "id, title, content, category, author, featured, created_at"

	selectArticleByIDSQL = `SELECT id, title, content, category, author, featured, created_at FROM articles WHERE id = ?`
	insertArticleSQL     = `INSERT INTO articles (title, content, category, author, featured, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	deleteArticleSQL     = `DELETE FROM articles WHERE id = ?`

	// SQLite TIMESTAMP format "YYYY-MM-DD HH:MM:SS"
	sqliteTimestampLayout = "2006-01-02 15:04:05"
)

// List returns articles matching the optional equality filters, newest first.
func (r *ArticleRepository) List(ctx context.Context, f models.ArticleFilter) ([]models.Article, error) {
	var (
		conds []string
		args  []any
	)

	if f.Category != nil {
		conds = append(conds, "category = ?")
		args = append(args, *f.Category)
	}
	if f.Featured != nil {
		conds = append(conds, "featured = ?")
		args = append(args, *f.Featured)
	}

	q := `SELECT ` + articleColumns + ` FROM articles`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	// id DESC breaks ties between rows created within the same second
	q += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	out := make([]models.Article, 0, 16)
	for rows.Next() {
		var a models.Article
		if err := scanArticle(rows.Scan, &a); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return out, nil
}

// GetByID fetches one article. Returns (nil, nil) if no row exists.
func (r *ArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	var a models.Article
	row := r.db.QueryRowContext(ctx, selectArticleByIDSQL, id)
	if err := scanArticle(row.Scan, &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select article %d: %w", id, err)
	}
	return &a, nil
}

// Insert stores a new article and returns its generated id. CreatedAt is
// set here if the caller left it zero.
func (r *ArticleRepository) Insert(ctx context.Context, a models.Article) (int, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	} else {
		a.CreatedAt = a.CreatedAt.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertArticleSQL,
		a.Title,
		a.Content,
		a.Category,
		a.Author,
		a.Featured,
		a.CreatedAt.Format(sqliteTimestampLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("insert article: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for article: %w", err)
	}
	return int(lastID), nil
}

// Update applies only the fields present in the patch and returns the number
// of affected rows. Zero rows means the id does not exist; the caller owns
// that decision.
func (r *ArticleRepository) Update(ctx context.Context, p models.ArticlePatch) (int64, error) {
	var (
		sets []string
		args []any
	)

	if p.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *p.Title)
	}
	if p.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *p.Content)
	}
	if p.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *p.Category)
	}
	if p.Featured != nil {
		sets = append(sets, "featured = ?")
		args = append(args, *p.Featured)
	}
	if len(sets) == 0 {
		return 0, errors.New("article patch has no fields")
	}
	args = append(args, p.ID)

	q := "UPDATE articles SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("update article %d: %w", p.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for article %d: %w", p.ID, err)
	}
	return affected, nil
}

// Delete removes the article and returns the number of affected rows.
func (r *ArticleRepository) Delete(ctx context.Context, id int) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteArticleSQL, id)
	if err != nil {
		return 0, fmt.Errorf("delete article %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for article %d: %w", id, err)
	}
	return affected, nil
}

// scanArticle scans one row into a and normalizes derived fields.
func scanArticle(scan func(dest ...any) error, a *models.Article) error {
	if err := scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Category,
		&a.Author,
		&a.Featured,
		&a.CreatedAt,
	); err != nil {
		return err
	}
	a.CreatedAt = a.CreatedAt.UTC()
	a.FormatDate()
	return nil
}

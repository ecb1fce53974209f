package models

import "time"

// Article is a single portfolio article row.
// Author is fixed at creation (taken from the session) and CreatedAt never
// changes after insert; Date is the calendar-day view of CreatedAt that the
// API surfaces alongside the full timestamp.
type Article struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Author    string    `json:"author"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"created_at"`
	Date      string    `json:"date"` // YYYY-MM-DD, derived from CreatedAt
}

const dateLayout = "2006-01-02"

// FormatDate fills Date from CreatedAt.
func (a *Article) FormatDate() {
	a.Date = a.CreatedAt.Format(dateLayout)
}

// ArticleFilter holds the optional equality filters of a list query.
// Nil means "not filtered on".
type ArticleFilter struct {
	Category *string
	Featured *bool
}

// ArticlePatch is a partial update. Nil fields are left untouched; the
// repository writes only the fields that are present.
type ArticlePatch struct {
	ID       int
	Title    *string
	Content  *string
	Category *string
	Featured *bool
}

// HasFields reports whether the patch carries at least one updatable field.
func (p ArticlePatch) HasFields() bool {
	return p.Title != nil || p.Content != nil || p.Category != nil || p.Featured != nil
}

// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/acolhe/acolhe/internal/entities"
	"github.com/acolhe/acolhe/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run InTx in tx")

const (
	foreignKeyViolation       = "23503"
	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
)

type pg struct {
	ext sqlx.ExtContext
}

type postDTO struct {
	ID            string         `db:"id"`
	UserID        string         `db:"user_id"`
	Title         string         `db:"title"`
	Content       string         `db:"content"`
	Category      string         `db:"category"`
	IsAnonymous   bool           `db:"is_anonymous"`
	Tags          pq.StringArray `db:"tags"`
	LikesCount    uint32         `db:"likes_count"`
	CommentsCount uint32         `db:"comments_count"`
	CreatedAt     time.Time      `db:"created_at"`
}

type profileDTO struct {
	ID        string    `db:"id"`
	FullName  *string   `db:"full_name"`
	Username  *string   `db:"username"`
	AvatarURL *string   `db:"avatar_url"`
	Bio       *string   `db:"bio"`
	Pronouns  *string   `db:"pronouns"`
	Location  *string   `db:"location"`
	UpdatedAt time.Time `db:"updated_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) Ping(ctx context.Context) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return nil
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping: %w", err)
	}

	return nil
}

func (s pg) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
	query := `
			SELECT id, user_id, title, content, category, is_anonymous, tags, likes_count, comments_count, created_at
			FROM community_posts
		`
	var args []interface{}

	if p != nil && p.Category != nil {
		query += ` WHERE category = $1`
		args = append(args, string(*p.Category))
	}

	query += ` ORDER BY created_at DESC, id DESC`

	var pp []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &pp, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Post, len(pp))
	for i, v := range pp {
		out[i] = toPost(v)
	}

	return out, nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	var p postDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, user_id, title, content, category, is_anonymous, tags, likes_count, comments_count, created_at
			FROM community_posts
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) || isCode(err, invalidTextRepresentation) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toPost(&p), nil
}

func (s pg) CreatePost(ctx context.Context, p *entities.Post) error {
	post := postDTO{
		ID:          p.ID,
		UserID:      p.UserID,
		Title:       p.Title,
		Content:     p.Content,
		Category:    string(p.Category),
		IsAnonymous: p.IsAnonymous,
		Tags:        pq.StringArray(p.Tags),
		CreatedAt:   p.CreatedAt.UTC(),
	}

	if post.Tags == nil {
		post.Tags = pq.StringArray{}
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO community_posts(id, user_id, title, content, category, is_anonymous, tags, created_at)
			VALUES(:id, :user_id, :title, :content, :category, :is_anonymous, :tags, :created_at)
		`, post,
	); err != nil {
		if isCode(err, uniqueViolation) {
			return storage.ErrAlreadyExists
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) DeletePost(ctx context.Context, id, owner string) error {
	return s.deleteOwned(ctx, `DELETE FROM community_posts WHERE id=$1 AND user_id=$2`, id, owner)
}

func (s pg) IsLiked(ctx context.Context, postID, userID string) (bool, error) {
	var liked bool

	if err := sqlx.GetContext(ctx, s.ext, &liked,
		`SELECT EXISTS(SELECT 1 FROM post_likes WHERE post_id=$1 AND user_id=$2)`,
		postID, userID,
	); err != nil {
		if isCode(err, invalidTextRepresentation) {
			return false, storage.ErrNotFound
		}

		return false, fmt.Errorf("failed to query: %w", err)
	}

	return liked, nil
}

func (s pg) Like(ctx context.Context, postID, userID string) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO post_likes(post_id, user_id) VALUES($1, $2)
			ON CONFLICT(post_id, user_id) DO NOTHING`,
		postID, userID,
	); err != nil {
		if isCode(err, foreignKeyViolation) || isCode(err, invalidTextRepresentation) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) Unlike(ctx context.Context, postID, userID string) error {
	if _, err := s.ext.ExecContext(ctx,
		`DELETE FROM post_likes WHERE post_id=$1 AND user_id=$2`,
		postID, userID,
	); err != nil {
		if isCode(err, invalidTextRepresentation) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetLikes(ctx context.Context, userID string, postIDs ...string) (map[string]bool, error) {
	out := make(map[string]bool, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
			SELECT post_id FROM post_likes
			WHERE user_id = ? AND post_id IN (?)
		`, userID, stringsUnique(postIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var liked []string
	if err := sqlx.SelectContext(ctx, s.ext, &liked, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	for _, v := range liked {
		out[v] = true
	}

	return out, nil
}

func (s pg) GetProfiles(ctx context.Context, ids ...string) ([]*entities.Profile, error) {
	if len(ids) == 0 {
		return []*entities.Profile{}, nil
	}

	query, args, err := sqlx.In(`
			SELECT id, full_name, username, avatar_url, bio, pronouns, location, updated_at FROM profiles
			WHERE id IN (?)
		`, stringsUnique(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var p []*profileDTO
	if err := sqlx.SelectContext(ctx, s.ext, &p, s.ext.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Profile, len(p))
	for i, v := range p {
		out[i] = toProfile(v)
	}

	return out, nil
}

func (s pg) GetProfile(ctx context.Context, id string) (*entities.Profile, error) {
	var p profileDTO

	if err := sqlx.GetContext(ctx, s.ext, &p, `
			SELECT id, full_name, username, avatar_url, bio, pronouns, location, updated_at FROM profiles
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) || isCode(err, invalidTextRepresentation) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toProfile(&p), nil
}

func (s pg) SetProfile(ctx context.Context, p *entities.Profile) error {
	profile := profileDTO{
		ID:        p.ID,
		FullName:  p.FullName,
		Username:  p.Username,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
		Pronouns:  p.Pronouns,
		Location:  p.Location,
		UpdatedAt: p.UpdatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO profiles(id, full_name, username, avatar_url, bio, pronouns, location, updated_at)
			VALUES(:id, :full_name, :username, :avatar_url, :bio, :pronouns, :location, :updated_at)
			ON CONFLICT(id) DO UPDATE SET
			full_name=excluded.full_name, username=excluded.username, avatar_url=excluded.avatar_url,
			bio=excluded.bio, pronouns=excluded.pronouns, location=excluded.location, updated_at=excluded.updated_at
		`, profile,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) AddFeedback(ctx context.Context, f *entities.Feedback) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO user_feedback(user_id, feedback_type, rating, feedback_text, suggestions)
			VALUES($1, $2, $3, $4, $5)`,
		f.UserID, f.Type, f.Rating, f.Text, f.Suggestions,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

// DeleteUserData removes every row owned by the user.
// It should be called within InTx, statements are ordered by foreign keys.
func (s pg) DeleteUserData(ctx context.Context, userID string) error {
	for _, q := range []struct {
		table string
		query string
	}{
		{"event_registrations", `DELETE FROM event_registrations WHERE event_id IN (SELECT id FROM events WHERE organizer_id=$1)`},
		{"event_registrations", `DELETE FROM event_registrations WHERE user_id=$1`},
		{"events", `DELETE FROM events WHERE organizer_id=$1`},
		{"post_likes", `DELETE FROM post_likes WHERE user_id=$1`},
		{"community_posts", `DELETE FROM community_posts WHERE user_id=$1`},
		{"appointments", `DELETE FROM appointments WHERE user_id=$1`},
		{"medications", `DELETE FROM medications WHERE user_id=$1`},
		{"profiles", `DELETE FROM profiles WHERE id=$1`},
	} {
		if _, err := s.ext.ExecContext(ctx, q.query, userID); err != nil {
			return fmt.Errorf("failed to delete from %s: %w", q.table, err)
		}
	}

	return nil
}

// deleteOwned executes owner-scoped delete query, zero affected rows means not found.
func (s pg) deleteOwned(ctx context.Context, query string, args ...interface{}) error {
	res, err := s.ext.ExecContext(ctx, query, args...)
	if err != nil {
		if isCode(err, invalidTextRepresentation) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func isCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

func toPost(p *postDTO) *entities.Post {
	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entities.Post{
		ID:            p.ID,
		UserID:        p.UserID,
		Title:         p.Title,
		Content:       p.Content,
		Category:      entities.Category(p.Category),
		IsAnonymous:   p.IsAnonymous,
		Tags:          tags,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     p.CreatedAt,
	}
}

func toProfile(p *profileDTO) *entities.Profile {
	return &entities.Profile{
		ID:        p.ID,
		FullName:  p.FullName,
		Username:  p.Username,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
		Pronouns:  p.Pronouns,
		Location:  p.Location,
		UpdatedAt: p.UpdatedAt,
	}
}

func stringsUnique(s []string) []string {
	m := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))

	for _, v := range s {
		if _, ok := m[v]; !ok {
			m[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}

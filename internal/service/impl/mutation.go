package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/acolhe/acolhe/internal/entities"
	"github.com/acolhe/acolhe/internal/service"
	"github.com/acolhe/acolhe/internal/storage"
)

type mutation struct {
	s storage.Storage
	n service.Notifier
}

// NewPostMutation creates new instance of post mutation service.
func NewPostMutation(s storage.Storage, n service.Notifier) service.PostMutation {
	return mutation{
		s: s,
		n: n,
	}
}

func (m mutation) CreatePost(ctx context.Context, d service.PostDraft, authorID string) (*entities.Post, error) {
	if authorID == "" {
		return nil, service.ErrUnauthenticated
	}

	if msg := validateDraft(d); msg != "" {
		failure(ctx, m.n, msg)
		return nil, invalid(msg)
	}

	p := &entities.Post{
		ID:          newID(),
		UserID:      authorID,
		Title:       strings.TrimSpace(d.Title),
		Content:     strings.TrimSpace(d.Content),
		Category:    d.Category,
		IsAnonymous: d.IsAnonymous,
		Tags:        service.ParseTags(d.Tags),
		CreatedAt:   now(),
	}

	if err := m.s.CreatePost(ctx, p); err != nil {
		failure(ctx, m.n, "Failed to create post")
		return nil, fromStorage(err, "failed to create post on storage side")
	}

	success(ctx, m.n, "Post created successfully!")

	return p, nil
}

func (m mutation) ToggleLike(ctx context.Context, postID, userID string) (bool, error) {
	if userID == "" {
		return false, service.ErrUnauthenticated
	}

	if _, err := m.s.GetPost(ctx, postID); err != nil {
		failure(ctx, m.n, "Failed to like post")
		return false, fromStorage(err, "failed to get post on storage side")
	}

	liked, err := m.s.IsLiked(ctx, postID, userID)
	if err != nil {
		failure(ctx, m.n, "Failed to like post")
		return false, fromStorage(err, "failed to check like on storage side")
	}

	if liked {
		if err := m.s.Unlike(ctx, postID, userID); err != nil {
			failure(ctx, m.n, "Failed to like post")
			return true, fromStorage(err, "failed to unlike on storage side")
		}

		return false, nil
	}

	// a concurrent toggle may have inserted the like already, the storage keeps the pair unique
	if err := m.s.Like(ctx, postID, userID); err != nil {
		failure(ctx, m.n, "Failed to like post")
		return false, fromStorage(err, "failed to like on storage side")
	}

	return true, nil
}

func (m mutation) DeletePost(ctx context.Context, postID, requesterID string) error {
	if requesterID == "" {
		return service.ErrUnauthenticated
	}

	if err := m.s.DeletePost(ctx, postID, requesterID); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.WithError(err).WithField("post", postID).Error("failed to delete post")
		}

		failure(ctx, m.n, "Failed to delete post")
		return fromStorage(err, "failed to delete post on storage side")
	}

	success(ctx, m.n, "Post deleted successfully!")

	return nil
}

// validateDraft returns a user-facing message for the first invalid field or an empty string.
func validateDraft(d service.PostDraft) string {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return "title is required"
	case strings.TrimSpace(d.Content) == "":
		return "content is required"
	case d.Category == "":
		return "category is required"
	case !d.Category.Valid():
		return fmt.Sprintf("unknown category %q", d.Category)
	}

	return ""
}

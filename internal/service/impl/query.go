package impl

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/acolhe/acolhe/internal/entities"
	"github.com/acolhe/acolhe/internal/service"
	"github.com/acolhe/acolhe/internal/storage"
)

const listPostsFailedMessage = "Failed to load posts"

type query struct {
	s storage.Storage
	n service.Notifier
}

// NewPostQuery creates new instance of post query service.
func NewPostQuery(s storage.Storage, n service.Notifier) service.PostQuery {
	return query{
		s: s,
		n: n,
	}
}

// ListPosts returns posts with authors attached.
// An unrecognized category matches nothing, so the result is empty and the storage isn't queried.
func (q query) ListPosts(ctx context.Context, filter entities.Category, requestedBy string) ([]*entities.AuthoredPost, error) {
	params := storage.ListPostsParams{}

	switch {
	case filter == entities.CategoryAll:
	case filter.Valid():
		params.Category = &filter
	default:
		log.WithField("category", filter).Debug("unknown category requested")
		return []*entities.AuthoredPost{}, nil
	}

	if log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		log.WithField("params", spew.Sdump(params)).Debug("list posts")
	}

	posts, err := q.s.ListPosts(ctx, &params)
	if err != nil {
		failure(ctx, q.n, listPostsFailedMessage)
		return nil, fmt.Errorf("%w: failed to list posts on storage side: %s", service.ErrListUnavailable, err)
	}

	profiles := q.getAuthors(ctx, posts)

	out := make([]*entities.AuthoredPost, len(posts))
	for i, v := range posts {
		out[i] = &entities.AuthoredPost{Post: *v}

		switch p, ok := profiles[v.UserID]; {
		case v.IsAnonymous:
			out[i].State = entities.AuthorAnonymous
		case ok:
			out[i].Author = p
			out[i].State = entities.AuthorKnown
		default:
			out[i].State = entities.AuthorUnknown
		}
	}

	if requestedBy != "" && len(out) > 0 {
		q.markLiked(ctx, requestedBy, out)
	}

	return out, nil
}

// getAuthors fetches profiles of non-anonymous posts' authors by a single call.
// Posts are still listed if profiles can't be fetched, their authors become unknown.
func (q query) getAuthors(ctx context.Context, posts []*entities.Post) map[string]*entities.Profile {
	ids := extractAuthorIDs(posts)
	if len(ids) == 0 {
		return map[string]*entities.Profile{}
	}

	pp, err := q.s.GetProfiles(ctx, ids...)
	if err != nil {
		log.WithError(err).Warn("failed to get authors' profiles")
		return map[string]*entities.Profile{}
	}

	out := make(map[string]*entities.Profile, len(pp))
	for _, v := range pp {
		out[v.ID] = v
	}

	return out
}

func (q query) markLiked(ctx context.Context, userID string, posts []*entities.AuthoredPost) {
	ids := make([]string, len(posts))
	for i, v := range posts {
		ids[i] = v.ID
	}

	liked, err := q.s.GetLikes(ctx, userID, ids...)
	if err != nil {
		log.WithError(err).WithField("user", userID).Warn("failed to get likes")
		return
	}

	for _, v := range posts {
		v.Liked = liked[v.ID]
	}
}

// extractAuthorIDs returns distinct owners of non-anonymous posts keeping first-seen order.
func extractAuthorIDs(p []*entities.Post) []string {
	out := make([]string, 0, len(p))
	m := make(map[string]struct{}, len(p))

	for _, v := range p {
		if v.IsAnonymous {
			continue
		}

		if _, ok := m[v.UserID]; !ok {
			out = append(out, v.UserID)
			m[v.UserID] = struct{}{}
		}
	}

	return out
}

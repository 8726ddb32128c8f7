package impl

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acolhe/acolhe/internal/entities"
	"github.com/acolhe/acolhe/internal/service"
	"github.com/acolhe/acolhe/internal/storage"
	"github.com/acolhe/acolhe/internal/storage/mock"
)

func strPtr(s string) *string {
	return &s
}

func TestQuery_ListPosts_Filter(t *testing.T) {
	tt := []struct {
		name     string
		filter   entities.Category
		category *entities.Category
	}{
		{
			name:   "all",
			filter: entities.CategoryAll,
		},
		{
			name:     "question",
			filter:   entities.QuestionCategory,
			category: func() *entities.Category { c := entities.QuestionCategory; return &c }(),
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockStorage(ctrl)
			q := NewPostQuery(s, &notifications{})

			s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *storage.ListPostsParams) ([]*entities.Post, error) {
				assert.Equal(t, tc.category, p.Category)
				return []*entities.Post{}, nil
			})

			posts, err := q.ListPosts(context.Background(), tc.filter, "")
			require.NoError(t, err)
			require.Empty(t, posts)
		})
	}
}

func TestQuery_ListPosts_UnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no calls are expected
	q := NewPostQuery(mock.NewMockStorage(ctrl), &notifications{})

	posts, err := q.ListPosts(context.Background(), "memes", "")
	require.NoError(t, err)
	require.NotNil(t, posts)
	require.Empty(t, posts)
}

func TestQuery_ListPosts_Authors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockStorage(ctrl)
	q := NewPostQuery(s, &notifications{})

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return([]*entities.Post{
		{ID: "1", UserID: "alice", CreatedAt: timestamp.Add(3 * time.Hour)},
		{ID: "2", UserID: "alice", IsAnonymous: true, CreatedAt: timestamp.Add(2 * time.Hour)},
		{ID: "3", UserID: "bob", IsAnonymous: true, CreatedAt: timestamp.Add(time.Hour)},
		{ID: "4", UserID: "carol", CreatedAt: timestamp},
	}, nil)

	// bob is anonymous only, so his profile isn't requested even if it exists
	s.EXPECT().GetProfiles(gomock.Any(), "alice", "carol").Return([]*entities.Profile{
		{ID: "alice", FullName: strPtr("Alice"), Username: strPtr("alice")},
	}, nil)

	posts, err := q.ListPosts(context.Background(), entities.CategoryAll, "")
	require.NoError(t, err)
	require.Len(t, posts, 4)

	assert.Equal(t, []string{"1", "2", "3", "4"}, []string{posts[0].ID, posts[1].ID, posts[2].ID, posts[3].ID})

	assert.Equal(t, entities.AuthorKnown, posts[0].State)
	require.NotNil(t, posts[0].Author)
	assert.Equal(t, "alice", posts[0].Author.ID)

	assert.Equal(t, entities.AuthorAnonymous, posts[1].State)
	assert.Nil(t, posts[1].Author)
	assert.Equal(t, entities.AuthorAnonymous, posts[2].State)
	assert.Nil(t, posts[2].Author)

	assert.Equal(t, entities.AuthorUnknown, posts[3].State)
	assert.Nil(t, posts[3].Author)
}

func TestQuery_ListPosts_NoProfileLookupForAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockStorage(ctrl)
	q := NewPostQuery(s, &notifications{})

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return([]*entities.Post{
		{ID: "1", UserID: "alice", IsAnonymous: true},
		{ID: "2", UserID: "bob", IsAnonymous: true},
	}, nil)

	posts, err := q.ListPosts(context.Background(), entities.CategoryAll, "")
	require.NoError(t, err)
	require.Len(t, posts, 2)

	for _, v := range posts {
		assert.Nil(t, v.Author)
		assert.Equal(t, entities.AuthorAnonymous, v.State)
	}
}

func TestQuery_ListPosts_BatchedLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockStorage(ctrl)
	q := NewPostQuery(s, &notifications{})

	users := []string{"u1", "u2", "u3"}
	posts := make([]*entities.Post, 10)
	for i := range posts {
		posts[i] = &entities.Post{ID: fmt.Sprint(i), UserID: users[i%len(users)]}
	}

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return(posts, nil)
	s.EXPECT().GetProfiles(gomock.Any(), gomock.Any()).Times(1).DoAndReturn(func(_ context.Context, ids ...string) ([]*entities.Profile, error) {
		assert.ElementsMatch(t, users, ids)

		out := make([]*entities.Profile, len(ids))
		for i, v := range ids {
			out[i] = &entities.Profile{ID: v}
		}
		return out, nil
	})

	res, err := q.ListPosts(context.Background(), entities.CategoryAll, "")
	require.NoError(t, err)
	require.Len(t, res, 10)

	for _, v := range res {
		require.NotNil(t, v.Author)
		assert.Equal(t, v.UserID, v.Author.ID)
	}
}

func TestQuery_ListPosts_ProfilesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockStorage(ctrl)
	q := NewPostQuery(s, &notifications{})

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return([]*entities.Post{{ID: "1", UserID: "alice"}}, nil)
	s.EXPECT().GetProfiles(gomock.Any(), "alice").Return(nil, context.DeadlineExceeded)

	posts, err := q.ListPosts(context.Background(), entities.CategoryAll, "")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, entities.AuthorUnknown, posts[0].State)
	assert.Nil(t, posts[0].Author)
}

func TestQuery_ListPosts_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockStorage(ctrl)
	n := &notifications{}
	q := NewPostQuery(s, n)

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)

	posts, err := q.ListPosts(context.Background(), entities.SupportCategory, "")
	require.True(t, errors.Is(err, service.ErrListUnavailable))
	require.Nil(t, posts)
	require.Equal(t, service.ErrorLevel, n.last().Level)
}

func TestQuery_ListPosts_Liked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockStorage(ctrl)
	q := NewPostQuery(s, &notifications{})

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return([]*entities.Post{
		{ID: "1", UserID: "alice", IsAnonymous: true},
		{ID: "2", UserID: "alice", IsAnonymous: true},
	}, nil)
	s.EXPECT().GetLikes(gomock.Any(), "bob", "1", "2").Return(map[string]bool{"2": true}, nil)

	posts, err := q.ListPosts(context.Background(), entities.CategoryAll, "bob")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.False(t, posts[0].Liked)
	assert.True(t, posts[1].Liked)
}

func TestQuery_ListPosts_DumpsParamsOnDebugOnly(t *testing.T) {
	lvl := logrus.GetLevel()
	defer logrus.SetLevel(lvl)

	hook := test.NewGlobal()
	defer logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockStorage(ctrl)
	q := NewPostQuery(s, &notifications{})

	s.EXPECT().ListPosts(gomock.Any(), gomock.Any()).Return([]*entities.Post{}, nil).Times(2)

	listed := func() []*logrus.Entry {
		var out []*logrus.Entry
		for _, v := range hook.AllEntries() {
			if v.Message == "list posts" {
				out = append(out, v)
			}
		}
		return out
	}

	logrus.SetLevel(logrus.InfoLevel)
	_, err := q.ListPosts(context.Background(), entities.SupportCategory, "")
	require.NoError(t, err)
	assert.Empty(t, listed())

	logrus.SetLevel(logrus.DebugLevel)
	_, err = q.ListPosts(context.Background(), entities.SupportCategory, "")
	require.NoError(t, err)

	entries := listed()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Data["params"], "support")
}

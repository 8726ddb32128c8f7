package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acolhe/acolhe/internal/entities"
	"github.com/acolhe/acolhe/internal/service/mock"
)

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := mock.NewMockPostQuery(ctrl)

	var r http.Handler
	require.NotPanics(t, func() {
		r = NewRouter(Services{
			Query:    q,
			Mutation: mock.NewMockPostMutation(ctrl),
			Deleter:  mock.NewMockDeleter(ctrl),
			Records:  mock.NewMockRecords(ctrl),
		}, secret, time.Second, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	q.EXPECT().ListPosts(gomock.Any(), entities.CategoryAll, "").Return([]*entities.AuthoredPost{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
	req.Header.Set("Origin", "https://example.org")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"posts":[]}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

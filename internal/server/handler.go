package server

import (
	"net/http"

	"github.com/acolhe/acolhe/internal/api"
	"github.com/acolhe/acolhe/internal/entities"
	mm "github.com/acolhe/acolhe/internal/middleware"
	"github.com/acolhe/acolhe/internal/service"
)

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Community ListPosts
	//
	// Returns posts newest first with authors' display information.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: category
	//   description: filters posts by category
	//   in: query
	//   required: false
	//   default: all
	//   type: string
	//   enum: [all, discussion, question, experience, support]
	// responses:
	//   '200':
	//     description: Posts
	//     schema:
	//       "$ref": "#/definitions/ListPostsResponse"
	//   '503':
	//     description: posts are unavailable
	//     schema:
	//       "$ref": "#/definitions/Error"

	filter := entities.CategoryAll
	if c := r.URL.Query().Get("category"); c != "" {
		filter = entities.Category(c)
	}

	requestedBy := mm.UserID(r.Context())

	posts, err := s.q.ListPosts(r.Context(), filter, requestedBy)
	if err != nil {
		writeServiceError(w, r, err, "posts")
		return
	}

	out := ListPostsResponse{Posts: make([]Post, len(posts))}
	for i, v := range posts {
		out.Posts[i] = toAPIPost(v, requestedBy)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Community CreatePost
	//
	// Creates a post owned by the caller.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: post
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreatePostRequest"
	// responses:
	//   '201':
	//     description: Created
	//     schema:
	//       "$ref": "#/definitions/CreatedResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreatePostRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.m.CreatePost(r.Context(), service.PostDraft{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		Tags:        req.Tags,
		IsAnonymous: req.IsAnonymous,
	}, mm.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "post")
		return
	}

	api.WriteOK(w, http.StatusCreated, CreatedResponse{ID: p.ID, Message: message(r)})
}

func (s server) toggleLike(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/like Community ToggleLike
	//
	// Likes the post or removes caller's like.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Like state
	//     schema:
	//       "$ref": "#/definitions/LikeResponse"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	liked, err := s.m.ToggleLike(r.Context(), id, mm.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "post")
		return
	}

	api.WriteOK(w, http.StatusOK, LikeResponse{Liked: liked})
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /posts/{id} Community DeletePost
	//
	// Deletes caller's post. Posts of other users are reported as not found.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Deleted
	//     schema:
	//       "$ref": "#/definitions/MessageResponse"
	//   '404':
	//     description: post not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.m.DeletePost(r.Context(), id, mm.UserID(r.Context())); err != nil {
		writeServiceError(w, r, err, "post")
		return
	}

	api.WriteOK(w, http.StatusOK, MessageResponse{Message: message(r)})
}

func toAPIPost(p *entities.AuthoredPost, requestedBy string) Post {
	out := Post{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		Category:      p.Category,
		IsAnonymous:   p.IsAnonymous,
		Tags:          p.Tags,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     uint64(p.CreatedAt.Unix()),
		AuthorState:   p.State.String(),
		Liked:         p.Liked,
		Own:           requestedBy != "" && p.UserID == requestedBy,
	}

	if out.Tags == nil {
		out.Tags = []string{}
	}

	// owner's id would reveal the author of an anonymous post
	if p.IsAnonymous {
		out.AuthorState = entities.AuthorAnonymous.String()
		return out
	}

	out.UserID = p.UserID

	if p.State == entities.AuthorKnown && p.Author != nil {
		out.Author = &Author{
			ID:       p.Author.ID,
			FullName: p.Author.FullName,
			Username: p.Author.Username,
		}
	}

	return out
}

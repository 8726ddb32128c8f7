// Package storage contains a storage interface.
package storage

import (
	"context"
	"errors"

	"github.com/acolhe/acolhe/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound is returned when requested row doesn't exist or isn't owned by the requester.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when unique constraint is violated.
var ErrAlreadyExists = errors.New("already exists")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error
	Ping(ctx context.Context) error

	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	CreatePost(ctx context.Context, p *entities.Post) error
	DeletePost(ctx context.Context, id, owner string) error

	IsLiked(ctx context.Context, postID, userID string) (bool, error)
	Like(ctx context.Context, postID, userID string) error
	Unlike(ctx context.Context, postID, userID string) error
	GetLikes(ctx context.Context, userID string, postIDs ...string) (map[string]bool, error)

	GetProfiles(ctx context.Context, ids ...string) ([]*entities.Profile, error)
	GetProfile(ctx context.Context, id string) (*entities.Profile, error)
	SetProfile(ctx context.Context, p *entities.Profile) error

	ListAppointments(ctx context.Context, owner string) ([]*entities.Appointment, error)
	CreateAppointment(ctx context.Context, a *entities.Appointment) error
	DeleteAppointment(ctx context.Context, id, owner string) error

	ListMedications(ctx context.Context, owner string) ([]*entities.Medication, error)
	CreateMedication(ctx context.Context, med *entities.Medication) error
	DeleteMedication(ctx context.Context, id, owner string) error

	ListEvents(ctx context.Context) ([]*entities.Event, error)
	CreateEvent(ctx context.Context, e *entities.Event) error
	Register(ctx context.Context, r *entities.EventRegistration) error
	DeleteEventRegistrations(ctx context.Context, eventID, organizer string) error
	DeleteEvent(ctx context.Context, id, organizer string) error

	AddFeedback(ctx context.Context, f *entities.Feedback) error
	DeleteUserData(ctx context.Context, userID string) error
}

// ListPostsParams ...
type ListPostsParams struct {
	// Category filters posts when set.
	Category *entities.Category
}

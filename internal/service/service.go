// Package service contains interfaces for service business-logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/acolhe/acolhe/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

var (
	// ErrValidation is returned when input is rejected before reaching the storage.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthenticated is returned when an operation requires caller's identity but it is empty.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound is returned when the entity doesn't exist or isn't owned by the requester.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists ...
	ErrAlreadyExists = errors.New("already exists")
	// ErrListUnavailable is returned when a list can not be fetched, callers keep their previous state.
	ErrListUnavailable = errors.New("list is unavailable")
	// ErrPartialDelete is returned when dependents were deleted but the entity itself wasn't.
	ErrPartialDelete = errors.New("entity was partially deleted")
)

// CascadeError describes a cascade which stopped after its dependents were removed.
// Only the final step should be retried.
type CascadeError struct {
	Kind entities.Kind
	ID   string
	Err  error
}

// Error ...
func (e *CascadeError) Error() string {
	return fmt.Sprintf("%s %s: dependents removed, failed to delete entity: %s", e.Kind, e.ID, e.Err)
}

// Unwrap ...
func (e *CascadeError) Unwrap() error {
	return e.Err
}

// Is makes CascadeError match ErrPartialDelete.
func (e *CascadeError) Is(target error) bool {
	return target == ErrPartialDelete
}

// Level ...
type Level uint8

const (
	// SuccessLevel ...
	SuccessLevel Level = iota
	// ErrorLevel ...
	ErrorLevel
)

// String ...
func (l Level) String() string {
	if l == SuccessLevel {
		return "success"
	}
	return "error"
}

// Notification is a user-facing outcome of an operation.
type Notification struct {
	Level   Level
	Message string
}

// Notifier delivers notifications to the user.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// PostDraft is a post as it is submitted by the user.
type PostDraft struct {
	Title       string
	Content     string
	Category    entities.Category
	Tags        string // comma-separated
	IsAnonymous bool
}

// PostQuery lists community posts.
type PostQuery interface {
	// ListPosts returns posts filtered by category (or CategoryAll), newest first.
	// When requestedBy isn't empty posts liked by requestedBy are flagged.
	ListPosts(ctx context.Context, filter entities.Category, requestedBy string) ([]*entities.AuthoredPost, error)
}

// PostMutation changes community posts. Callers list posts again after success.
type PostMutation interface {
	CreatePost(ctx context.Context, d PostDraft, authorID string) (*entities.Post, error)
	// ToggleLike removes user's like if it exists and adds it otherwise, it returns whether the post is liked now.
	ToggleLike(ctx context.Context, postID, userID string) (bool, error)
	DeletePost(ctx context.Context, postID, requesterID string) error
}

// Deleter deletes user-owned entities together with their dependents.
type Deleter interface {
	DeleteOwned(ctx context.Context, kind entities.Kind, id, requesterID string) error
	// FinishEventDeletion deletes the event row only, it is used to retry a partially deleted event.
	FinishEventDeletion(ctx context.Context, id, requesterID string) error
}

// Records manages user's personal records, events and account.
type Records interface {
	ListAppointments(ctx context.Context, userID string) ([]*entities.Appointment, error)
	CreateAppointment(ctx context.Context, a *entities.Appointment) error

	ListMedications(ctx context.Context, userID string) ([]*entities.Medication, error)
	CreateMedication(ctx context.Context, med *entities.Medication) error

	ListEvents(ctx context.Context) ([]*entities.Event, error)
	CreateEvent(ctx context.Context, e *entities.Event) error
	Register(ctx context.Context, eventID, userID string) error

	GetProfile(ctx context.Context, userID string) (*entities.Profile, error)
	SetProfile(ctx context.Context, p *entities.Profile) error

	DeleteAccount(ctx context.Context, f *entities.Feedback) error
}

// ParseTags splits comma-separated tags, trims them and drops empty ones.
// Order and duplicates are kept.
func ParseTags(s string) []string {
	out := make([]string, 0)

	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}

// Package entities contains main entities of service.
package entities

import (
	"time"
)

// Category is a community post category.
type Category string

const (
	// CategoryAll is a listing sentinel, it is never stored.
	CategoryAll Category = "all"
	// DiscussionCategory ...
	DiscussionCategory Category = "discussion"
	// QuestionCategory ...
	QuestionCategory Category = "question"
	// ExperienceCategory ...
	ExperienceCategory Category = "experience"
	// SupportCategory ...
	SupportCategory Category = "support"
)

// Valid returns true if c can be stored as a post category.
func (c Category) Valid() bool {
	switch c {
	case DiscussionCategory, QuestionCategory, ExperienceCategory, SupportCategory:
		return true
	default:
		return false
	}
}

// Kind is a kind of user-owned entity.
type Kind string

const (
	// PostKind ...
	PostKind Kind = "post"
	// AppointmentKind ...
	AppointmentKind Kind = "appointment"
	// MedicationKind ...
	MedicationKind Kind = "medication"
	// EventKind ...
	EventKind Kind = "event"
)

// Post ...
type Post struct {
	ID            string
	UserID        string
	Title         string
	Content       string
	Category      Category
	IsAnonymous   bool
	Tags          []string
	LikesCount    uint32
	CommentsCount uint32
	CreatedAt     time.Time
}

// AuthorState describes what is known about post's author.
type AuthorState uint8

const (
	// AuthorKnown means that author's profile is attached.
	AuthorKnown AuthorState = iota
	// AuthorUnknown means that the post is public but the profile wasn't found.
	AuthorUnknown
	// AuthorAnonymous means that the post is anonymous and author must not be shown.
	AuthorAnonymous
)

// String ...
func (s AuthorState) String() string {
	switch s {
	case AuthorKnown:
		return "known"
	case AuthorAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// AuthoredPost is a post enriched with author's display information.
// Author is nil unless State is AuthorKnown.
type AuthoredPost struct {
	Post
	Author *Profile
	State  AuthorState
	Liked  bool
}

// Profile ...
type Profile struct {
	ID        string
	FullName  *string
	Username  *string
	AvatarURL *string
	Bio       *string
	Pronouns  *string
	Location  *string
	UpdatedAt time.Time
}

// Appointment ...
type Appointment struct {
	ID              string
	UserID          string
	Title           string
	Description     string
	AppointmentDate time.Time
	AppointmentType string
	Status          string
	DoctorName      string
	Location        string
	CreatedAt       time.Time
}

// Medication ...
type Medication struct {
	ID            string
	UserID        string
	Name          string
	Dosage        string
	Frequency     string
	ScheduleTimes []string
	StartDate     time.Time
	EndDate       *time.Time
	Notes         *string
	IsActive      bool
	CreatedAt     time.Time
}

// Event ...
type Event struct {
	ID          string
	OrganizerID string
	Title       string
	Description string
	EventDate   time.Time
	Location    string
	CreatedAt   time.Time
}

// EventRegistration ...
type EventRegistration struct {
	ID        string
	EventID   string
	UserID    string
	CreatedAt time.Time
}

// Feedback is left by a user before the account deletion.
type Feedback struct {
	UserID      string
	Type        string
	Rating      uint8
	Text        string
	Suggestions *string
}

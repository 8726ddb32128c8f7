package server

import (
	"time"

	"github.com/acolhe/acolhe/internal/entities"
)

const maxBodySize = 64 << 10

// MessageResponse ...
// swagger:model
type MessageResponse struct {
	// Message is a user-facing notification.
	Message string `json:"message,omitempty"`
}

// ListPostsResponse ...
// swagger:model
type ListPostsResponse struct {
	Posts []Post `json:"posts"`
}

// Post ...
type Post struct {
	ID            string            `json:"id"`
	UserID        string            `json:"userId,omitempty"`
	Title         string            `json:"title"`
	Content       string            `json:"content"`
	Category      entities.Category `json:"category"`
	IsAnonymous   bool              `json:"isAnonymous"`
	Tags          []string          `json:"tags"`
	LikesCount    uint32            `json:"likesCount"`
	CommentsCount uint32            `json:"commentsCount"`
	CreatedAt     uint64            `json:"createdAt"`
	// Author is null for anonymous posts and for unknown authors.
	Author      *Author `json:"author"`
	AuthorState string  `json:"authorState"`
	Liked       bool    `json:"liked"`
	Own         bool    `json:"own"`
}

// Author ...
type Author struct {
	ID       string  `json:"id"`
	FullName *string `json:"fullName"`
	Username *string `json:"username"`
}

// CreatePostRequest ...
// swagger:model
type CreatePostRequest struct {
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	Category entities.Category `json:"category"`
	// Tags are comma-separated.
	Tags        string `json:"tags"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// CreatedResponse ...
// swagger:model
type CreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message,omitempty"`
}

// LikeResponse ...
// swagger:model
type LikeResponse struct {
	Liked bool `json:"liked"`
}

// Appointment ...
type Appointment struct {
	ID              string    `json:"id,omitempty"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	AppointmentDate time.Time `json:"appointmentDate"`
	AppointmentType string    `json:"appointmentType"`
	Status          string    `json:"status,omitempty"`
	DoctorName      string    `json:"doctorName"`
	Location        string    `json:"location"`
}

// Medication ...
type Medication struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name"`
	Dosage        string   `json:"dosage"`
	Frequency     string   `json:"frequency"`
	ScheduleTimes []string `json:"scheduleTimes"`
	// StartDate and EndDate are in YYYY-MM-DD format.
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Notes     *string `json:"notes"`
	IsActive  *bool   `json:"isActive"`
}

// Event ...
type Event struct {
	ID          string    `json:"id,omitempty"`
	OrganizerID string    `json:"organizerId,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"eventDate"`
	Location    string    `json:"location"`
}

// Profile ...
type Profile struct {
	ID        string  `json:"id,omitempty"`
	FullName  *string `json:"fullName"`
	Username  *string `json:"username"`
	AvatarURL *string `json:"avatarUrl"`
	Bio       *string `json:"bio"`
	Pronouns  *string `json:"pronouns"`
	Location  *string `json:"location"`
}

// DeleteAccountRequest ...
// swagger:model
type DeleteAccountRequest struct {
	Rating      uint8   `json:"rating"`
	Feedback    string  `json:"feedback"`
	Suggestions *string `json:"suggestions"`
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/acolhe/acolhe/internal/entities"
	"github.com/acolhe/acolhe/internal/storage"
)

type appointmentDTO struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	AppointmentDate time.Time `db:"appointment_date"`
	AppointmentType string    `db:"appointment_type"`
	Status          string    `db:"status"`
	DoctorName      string    `db:"doctor_name"`
	Location        string    `db:"location"`
	CreatedAt       time.Time `db:"created_at"`
}

type medicationDTO struct {
	ID            string         `db:"id"`
	UserID        string         `db:"user_id"`
	Name          string         `db:"name"`
	Dosage        string         `db:"dosage"`
	Frequency     string         `db:"frequency"`
	ScheduleTimes pq.StringArray `db:"schedule_times"`
	StartDate     time.Time      `db:"start_date"`
	EndDate       *time.Time     `db:"end_date"`
	Notes         *string        `db:"notes"`
	IsActive      bool           `db:"is_active"`
	CreatedAt     time.Time      `db:"created_at"`
}

type eventDTO struct {
	ID          string    `db:"id"`
	OrganizerID string    `db:"organizer_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	EventDate   time.Time `db:"event_date"`
	Location    string    `db:"location"`
	CreatedAt   time.Time `db:"created_at"`
}

func (s pg) ListAppointments(ctx context.Context, owner string) ([]*entities.Appointment, error) {
	var aa []*appointmentDTO

	if err := sqlx.SelectContext(ctx, s.ext, &aa, `
			SELECT id, user_id, title, description, appointment_date, appointment_type, status, doctor_name, location, created_at
			FROM appointments
			WHERE user_id = $1
			ORDER BY appointment_date ASC
		`, owner,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Appointment, len(aa))
	for i, v := range aa {
		out[i] = &entities.Appointment{
			ID:              v.ID,
			UserID:          v.UserID,
			Title:           v.Title,
			Description:     v.Description,
			AppointmentDate: v.AppointmentDate,
			AppointmentType: v.AppointmentType,
			Status:          v.Status,
			DoctorName:      v.DoctorName,
			Location:        v.Location,
			CreatedAt:       v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) CreateAppointment(ctx context.Context, a *entities.Appointment) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO appointments(id, user_id, title, description, appointment_date, appointment_type, status, doctor_name, location, created_at)
			VALUES(:id, :user_id, :title, :description, :appointment_date, :appointment_type, :status, :doctor_name, :location, :created_at)
		`, appointmentDTO{
			ID:              a.ID,
			UserID:          a.UserID,
			Title:           a.Title,
			Description:     a.Description,
			AppointmentDate: a.AppointmentDate.UTC(),
			AppointmentType: a.AppointmentType,
			Status:          a.Status,
			DoctorName:      a.DoctorName,
			Location:        a.Location,
			CreatedAt:       a.CreatedAt.UTC(),
		},
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) DeleteAppointment(ctx context.Context, id, owner string) error {
	return s.deleteOwned(ctx, `DELETE FROM appointments WHERE id=$1 AND user_id=$2`, id, owner)
}

func (s pg) ListMedications(ctx context.Context, owner string) ([]*entities.Medication, error) {
	var mm []*medicationDTO

	if err := sqlx.SelectContext(ctx, s.ext, &mm, `
			SELECT id, user_id, name, dosage, frequency, schedule_times, start_date, end_date, notes, is_active, created_at
			FROM medications
			WHERE user_id = $1
			ORDER BY created_at DESC
		`, owner,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Medication, len(mm))
	for i, v := range mm {
		out[i] = &entities.Medication{
			ID:            v.ID,
			UserID:        v.UserID,
			Name:          v.Name,
			Dosage:        v.Dosage,
			Frequency:     v.Frequency,
			ScheduleTimes: []string(v.ScheduleTimes),
			StartDate:     v.StartDate,
			EndDate:       v.EndDate,
			Notes:         v.Notes,
			IsActive:      v.IsActive,
			CreatedAt:     v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) CreateMedication(ctx context.Context, m *entities.Medication) error {
	schedule := pq.StringArray(m.ScheduleTimes)
	if schedule == nil {
		schedule = pq.StringArray{}
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO medications(id, user_id, name, dosage, frequency, schedule_times, start_date, end_date, notes, is_active, created_at)
			VALUES(:id, :user_id, :name, :dosage, :frequency, :schedule_times, :start_date, :end_date, :notes, :is_active, :created_at)
		`, medicationDTO{
			ID:            m.ID,
			UserID:        m.UserID,
			Name:          m.Name,
			Dosage:        m.Dosage,
			Frequency:     m.Frequency,
			ScheduleTimes: schedule,
			StartDate:     m.StartDate,
			EndDate:       m.EndDate,
			Notes:         m.Notes,
			IsActive:      m.IsActive,
			CreatedAt:     m.CreatedAt.UTC(),
		},
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) DeleteMedication(ctx context.Context, id, owner string) error {
	return s.deleteOwned(ctx, `DELETE FROM medications WHERE id=$1 AND user_id=$2`, id, owner)
}

func (s pg) ListEvents(ctx context.Context) ([]*entities.Event, error) {
	var ee []*eventDTO

	if err := sqlx.SelectContext(ctx, s.ext, &ee, `
			SELECT id, organizer_id, title, description, event_date, location, created_at
			FROM events
			ORDER BY event_date ASC
		`,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Event, len(ee))
	for i, v := range ee {
		out[i] = &entities.Event{
			ID:          v.ID,
			OrganizerID: v.OrganizerID,
			Title:       v.Title,
			Description: v.Description,
			EventDate:   v.EventDate,
			Location:    v.Location,
			CreatedAt:   v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) CreateEvent(ctx context.Context, e *entities.Event) error {
	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO events(id, organizer_id, title, description, event_date, location, created_at)
			VALUES(:id, :organizer_id, :title, :description, :event_date, :location, :created_at)
		`, eventDTO{
			ID:          e.ID,
			OrganizerID: e.OrganizerID,
			Title:       e.Title,
			Description: e.Description,
			EventDate:   e.EventDate.UTC(),
			Location:    e.Location,
			CreatedAt:   e.CreatedAt.UTC(),
		},
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) Register(ctx context.Context, r *entities.EventRegistration) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO event_registrations(id, event_id, user_id, created_at) VALUES($1, $2, $3, $4)`,
		r.ID, r.EventID, r.UserID, r.CreatedAt.UTC(),
	); err != nil {
		switch {
		case isCode(err, uniqueViolation):
			return storage.ErrAlreadyExists
		case isCode(err, foreignKeyViolation), isCode(err, invalidTextRepresentation):
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

// DeleteEventRegistrations removes every registration of the event.
// It returns ErrNotFound when the event isn't organized by organizer, an event without registrations is fine.
func (s pg) DeleteEventRegistrations(ctx context.Context, eventID, organizer string) error {
	var owned bool

	if err := sqlx.GetContext(ctx, s.ext, &owned,
		`SELECT EXISTS(SELECT 1 FROM events WHERE id=$1 AND organizer_id=$2)`,
		eventID, organizer,
	); err != nil {
		if isCode(err, invalidTextRepresentation) {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to query: %w", err)
	}

	if !owned {
		return storage.ErrNotFound
	}

	if _, err := s.ext.ExecContext(ctx, `DELETE FROM event_registrations WHERE event_id=$1`, eventID); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) DeleteEvent(ctx context.Context, id, organizer string) error {
	if err := s.deleteOwned(ctx, `DELETE FROM events WHERE id=$1 AND organizer_id=$2`, id, organizer); err != nil {
		if isCode(err, foreignKeyViolation) {
			return fmt.Errorf("event still has registrations: %w", err)
		}

		return err
	}

	return nil
}

package impl

import (
	"context"
	"fmt"
	"strings"

	"github.com/acolhe/acolhe/internal/entities"
	"github.com/acolhe/acolhe/internal/service"
	"github.com/acolhe/acolhe/internal/storage"
)

const (
	defaultAppointmentStatus = "scheduled"
	accountDeletionFeedback  = "account_deletion"
)

type records struct {
	s storage.Storage
	n service.Notifier
}

// NewRecords creates new instance of personal records service.
func NewRecords(s storage.Storage, n service.Notifier) service.Records {
	return records{
		s: s,
		n: n,
	}
}

func (r records) ListAppointments(ctx context.Context, userID string) ([]*entities.Appointment, error) {
	if userID == "" {
		return nil, service.ErrUnauthenticated
	}

	aa, err := r.s.ListAppointments(ctx, userID)
	if err != nil {
		failure(ctx, r.n, "Failed to load appointments")
		return nil, fmt.Errorf("%w: failed to list appointments on storage side: %s", service.ErrListUnavailable, err)
	}

	return aa, nil
}

func (r records) CreateAppointment(ctx context.Context, a *entities.Appointment) error {
	if a.UserID == "" {
		return service.ErrUnauthenticated
	}

	var msg string
	switch {
	case strings.TrimSpace(a.Title) == "":
		msg = "title is required"
	case a.AppointmentDate.IsZero():
		msg = "appointment date is required"
	}

	if msg != "" {
		failure(ctx, r.n, msg)
		return invalid(msg)
	}

	a.ID = newID()
	a.CreatedAt = now()
	if a.Status == "" {
		a.Status = defaultAppointmentStatus
	}

	if err := r.s.CreateAppointment(ctx, a); err != nil {
		failure(ctx, r.n, "Failed to create appointment")
		return fromStorage(err, "failed to create appointment on storage side")
	}

	success(ctx, r.n, "Appointment created successfully!")

	return nil
}

func (r records) ListMedications(ctx context.Context, userID string) ([]*entities.Medication, error) {
	if userID == "" {
		return nil, service.ErrUnauthenticated
	}

	mm, err := r.s.ListMedications(ctx, userID)
	if err != nil {
		failure(ctx, r.n, "Failed to load medications")
		return nil, fmt.Errorf("%w: failed to list medications on storage side: %s", service.ErrListUnavailable, err)
	}

	return mm, nil
}

func (r records) CreateMedication(ctx context.Context, med *entities.Medication) error {
	if med.UserID == "" {
		return service.ErrUnauthenticated
	}

	var msg string
	switch {
	case strings.TrimSpace(med.Name) == "":
		msg = "name is required"
	case strings.TrimSpace(med.Dosage) == "":
		msg = "dosage is required"
	case strings.TrimSpace(med.Frequency) == "":
		msg = "frequency is required"
	case med.StartDate.IsZero():
		msg = "start date is required"
	case med.EndDate != nil && med.EndDate.Before(med.StartDate):
		msg = "end date is before start date"
	}

	if msg != "" {
		failure(ctx, r.n, msg)
		return invalid(msg)
	}

	schedule := make([]string, 0, len(med.ScheduleTimes))
	for _, v := range med.ScheduleTimes {
		if v = strings.TrimSpace(v); v != "" {
			schedule = append(schedule, v)
		}
	}

	med.ID = newID()
	med.ScheduleTimes = schedule
	med.CreatedAt = now()

	if err := r.s.CreateMedication(ctx, med); err != nil {
		failure(ctx, r.n, "Failed to create medication")
		return fromStorage(err, "failed to create medication on storage side")
	}

	success(ctx, r.n, "Medication created successfully!")

	return nil
}

func (r records) ListEvents(ctx context.Context) ([]*entities.Event, error) {
	ee, err := r.s.ListEvents(ctx)
	if err != nil {
		failure(ctx, r.n, "Failed to load events")
		return nil, fmt.Errorf("%w: failed to list events on storage side: %s", service.ErrListUnavailable, err)
	}

	return ee, nil
}

func (r records) CreateEvent(ctx context.Context, e *entities.Event) error {
	if e.OrganizerID == "" {
		return service.ErrUnauthenticated
	}

	var msg string
	switch {
	case strings.TrimSpace(e.Title) == "":
		msg = "title is required"
	case e.EventDate.IsZero():
		msg = "event date is required"
	}

	if msg != "" {
		failure(ctx, r.n, msg)
		return invalid(msg)
	}

	e.ID = newID()
	e.CreatedAt = now()

	if err := r.s.CreateEvent(ctx, e); err != nil {
		failure(ctx, r.n, "Failed to create event")
		return fromStorage(err, "failed to create event on storage side")
	}

	success(ctx, r.n, "Event created successfully!")

	return nil
}

func (r records) Register(ctx context.Context, eventID, userID string) error {
	if userID == "" {
		return service.ErrUnauthenticated
	}

	if err := r.s.Register(ctx, &entities.EventRegistration{
		ID:        newID(),
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: now(),
	}); err != nil {
		failure(ctx, r.n, "Failed to register for event")
		return fromStorage(err, "failed to register on storage side")
	}

	success(ctx, r.n, "Registered successfully!")

	return nil
}

func (r records) GetProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	if userID == "" {
		return nil, service.ErrUnauthenticated
	}

	p, err := r.s.GetProfile(ctx, userID)
	if err != nil {
		return nil, fromStorage(err, "failed to get profile on storage side")
	}

	return p, nil
}

func (r records) SetProfile(ctx context.Context, p *entities.Profile) error {
	if p.ID == "" {
		return service.ErrUnauthenticated
	}

	p.UpdatedAt = now()

	if err := r.s.SetProfile(ctx, p); err != nil {
		failure(ctx, r.n, "Failed to update profile")
		return fromStorage(err, "failed to set profile on storage side")
	}

	success(ctx, r.n, "Profile updated successfully!")

	return nil
}

// DeleteAccount records user's feedback and removes all user's data in one transaction.
func (r records) DeleteAccount(ctx context.Context, f *entities.Feedback) error {
	if f.UserID == "" {
		return service.ErrUnauthenticated
	}

	var msg string
	switch {
	case f.Rating < 1 || f.Rating > 5:
		msg = "rating must be between 1 and 5"
	case strings.TrimSpace(f.Text) == "":
		msg = "feedback is required"
	}

	if msg != "" {
		failure(ctx, r.n, msg)
		return invalid(msg)
	}

	f.Type = accountDeletionFeedback

	if err := r.s.InTx(ctx, func(s storage.Storage) error {
		if err := s.AddFeedback(ctx, f); err != nil {
			return fmt.Errorf("failed to add feedback: %w", err)
		}

		if err := s.DeleteUserData(ctx, f.UserID); err != nil {
			return fmt.Errorf("failed to delete user data: %w", err)
		}

		return nil
	}); err != nil {
		log.WithError(err).WithField("user", f.UserID).Error("failed to delete account")
		failure(ctx, r.n, "Failed to delete account")
		return fromStorage(err, "failed to delete account on storage side")
	}

	success(ctx, r.n, "Account deleted")

	return nil
}

package impl

import (
	"context"
	"errors"
	"fmt"

	"github.com/acolhe/acolhe/internal/entities"
	"github.com/acolhe/acolhe/internal/service"
	"github.com/acolhe/acolhe/internal/storage"
)

// nolint:gochecknoglobals
var deleteMessages = map[entities.Kind]struct{ ok, fail string }{
	entities.PostKind:        {"Post deleted successfully!", "Failed to delete post"},
	entities.AppointmentKind: {"Appointment deleted successfully!", "Failed to delete appointment"},
	entities.MedicationKind:  {"Medication deleted successfully!", "Failed to delete medication"},
	entities.EventKind:       {"Event deleted successfully!", "Failed to delete event"},
}

const partialEventDeleteMessage = "Event registrations were removed but the event wasn't deleted, please retry"

type deleter struct {
	s storage.Storage
	n service.Notifier
}

// NewDeleter creates new instance of cascading deletion service.
func NewDeleter(s storage.Storage, n service.Notifier) service.Deleter {
	return deleter{
		s: s,
		n: n,
	}
}

// DeleteOwned deletes requester's entity. Every kind is scoped by the owner.
func (d deleter) DeleteOwned(ctx context.Context, kind entities.Kind, id, requesterID string) error {
	msg, ok := deleteMessages[kind]
	if !ok {
		return invalid(fmt.Sprintf("unknown kind %q", kind))
	}

	if requesterID == "" {
		return service.ErrUnauthenticated
	}

	var err error
	switch kind {
	case entities.PostKind:
		err = d.s.DeletePost(ctx, id, requesterID)
	case entities.AppointmentKind:
		err = d.s.DeleteAppointment(ctx, id, requesterID)
	case entities.MedicationKind:
		err = d.s.DeleteMedication(ctx, id, requesterID)
	case entities.EventKind:
		return d.deleteEvent(ctx, id, requesterID)
	}

	if err != nil {
		d.logFailure(err, kind, id)
		failure(ctx, d.n, msg.fail)
		return fromStorage(err, fmt.Sprintf("failed to delete %s on storage side", kind))
	}

	success(ctx, d.n, msg.ok)

	return nil
}

// deleteEvent removes registrations first, the event is deleted only if they are gone.
func (d deleter) deleteEvent(ctx context.Context, id, organizer string) error {
	msg := deleteMessages[entities.EventKind]

	if err := d.s.DeleteEventRegistrations(ctx, id, organizer); err != nil {
		d.logFailure(err, entities.EventKind, id)
		failure(ctx, d.n, msg.fail)
		return fromStorage(err, "failed to delete event registrations on storage side")
	}

	if err := d.s.DeleteEvent(ctx, id, organizer); err != nil {
		log.WithError(err).WithField("event", id).Error("event registrations deleted but event wasn't")
		failure(ctx, d.n, partialEventDeleteMessage)
		return &service.CascadeError{
			Kind: entities.EventKind,
			ID:   id,
			Err:  fromStorage(err, "failed to delete event on storage side"),
		}
	}

	success(ctx, d.n, msg.ok)

	return nil
}

func (d deleter) FinishEventDeletion(ctx context.Context, id, requesterID string) error {
	if requesterID == "" {
		return service.ErrUnauthenticated
	}

	msg := deleteMessages[entities.EventKind]

	if err := d.s.DeleteEvent(ctx, id, requesterID); err != nil {
		d.logFailure(err, entities.EventKind, id)
		failure(ctx, d.n, msg.fail)
		return fromStorage(err, "failed to delete event on storage side")
	}

	success(ctx, d.n, msg.ok)

	return nil
}

func (d deleter) logFailure(err error, kind entities.Kind, id string) {
	l := log.WithError(err).WithField("kind", kind).WithField("id", id)

	if errors.Is(err, storage.ErrNotFound) {
		l.Debug("nothing to delete")
		return
	}

	l.Error("failed to delete")
}

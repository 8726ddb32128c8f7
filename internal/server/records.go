package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/acolhe/acolhe/internal/api"
	"github.com/acolhe/acolhe/internal/entities"
	mm "github.com/acolhe/acolhe/internal/middleware"
)

const dateLayout = "2006-01-02"

func (s server) listAppointments(w http.ResponseWriter, r *http.Request) {
	aa, err := s.r.ListAppointments(r.Context(), mm.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "appointments")
		return
	}

	out := make([]Appointment, len(aa))
	for i, v := range aa {
		out[i] = Appointment{
			ID:              v.ID,
			Title:           v.Title,
			Description:     v.Description,
			AppointmentDate: v.AppointmentDate,
			AppointmentType: v.AppointmentType,
			Status:          v.Status,
			DoctorName:      v.DoctorName,
			Location:        v.Location,
		}
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) createAppointment(w http.ResponseWriter, r *http.Request) {
	var req Appointment
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	a := &entities.Appointment{
		UserID:          mm.UserID(r.Context()),
		Title:           req.Title,
		Description:     req.Description,
		AppointmentDate: req.AppointmentDate,
		AppointmentType: req.AppointmentType,
		DoctorName:      req.DoctorName,
		Location:        req.Location,
	}

	if err := s.r.CreateAppointment(r.Context(), a); err != nil {
		writeServiceError(w, r, err, "appointment")
		return
	}

	api.WriteOK(w, http.StatusCreated, CreatedResponse{ID: a.ID, Message: message(r)})
}

func (s server) listMedications(w http.ResponseWriter, r *http.Request) {
	meds, err := s.r.ListMedications(r.Context(), mm.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "medications")
		return
	}

	out := make([]Medication, len(meds))
	for i, v := range meds {
		active := v.IsActive
		out[i] = Medication{
			ID:            v.ID,
			Name:          v.Name,
			Dosage:        v.Dosage,
			Frequency:     v.Frequency,
			ScheduleTimes: v.ScheduleTimes,
			StartDate:     v.StartDate.Format(dateLayout),
			Notes:         v.Notes,
			IsActive:      &active,
		}

		if v.EndDate != nil {
			end := v.EndDate.Format(dateLayout)
			out[i].EndDate = &end
		}
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) createMedication(w http.ResponseWriter, r *http.Request) {
	var req Medication
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	m := &entities.Medication{
		UserID:        mm.UserID(r.Context()),
		Name:          req.Name,
		Dosage:        req.Dosage,
		Frequency:     req.Frequency,
		ScheduleTimes: req.ScheduleTimes,
		Notes:         req.Notes,
		IsActive:      req.IsActive == nil || *req.IsActive,
	}

	if req.StartDate != "" {
		v, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("%s: invalid startDate", errInvalidRequest))
			return
		}
		m.StartDate = v
	}

	if req.EndDate != nil && *req.EndDate != "" {
		v, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("%s: invalid endDate", errInvalidRequest))
			return
		}
		m.EndDate = &v
	}

	if err := s.r.CreateMedication(r.Context(), m); err != nil {
		writeServiceError(w, r, err, "medication")
		return
	}

	api.WriteOK(w, http.StatusCreated, CreatedResponse{ID: m.ID, Message: message(r)})
}

func (s server) listEvents(w http.ResponseWriter, r *http.Request) {
	ee, err := s.r.ListEvents(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "events")
		return
	}

	out := make([]Event, len(ee))
	for i, v := range ee {
		out[i] = Event{
			ID:          v.ID,
			OrganizerID: v.OrganizerID,
			Title:       v.Title,
			Description: v.Description,
			EventDate:   v.EventDate,
			Location:    v.Location,
		}
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) createEvent(w http.ResponseWriter, r *http.Request) {
	var req Event
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	e := &entities.Event{
		OrganizerID: mm.UserID(r.Context()),
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
	}

	if err := s.r.CreateEvent(r.Context(), e); err != nil {
		writeServiceError(w, r, err, "event")
		return
	}

	api.WriteOK(w, http.StatusCreated, CreatedResponse{ID: e.ID, Message: message(r)})
}

func (s server) register(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.r.Register(r.Context(), id, mm.UserID(r.Context())); err != nil {
		writeServiceError(w, r, err, "registration")
		return
	}

	api.WriteOK(w, http.StatusCreated, MessageResponse{Message: message(r)})
}

func (s server) deleteOwned(kind entities.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}

		if err := s.d.DeleteOwned(r.Context(), kind, id, mm.UserID(r.Context())); err != nil {
			writeServiceError(w, r, err, string(kind))
			return
		}

		api.WriteOK(w, http.StatusOK, MessageResponse{Message: message(r)})
	}
}

func (s server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /events/{id} Events DeleteEvent
	//
	// Deletes caller's event with its registrations.
	// When the response says that the event was partially deleted the request should be repeated with finish=true.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: finish
	//   in: query
	//   description: deletes the event row only
	//   required: false
	//   type: boolean
	// responses:
	//   '200':
	//     description: Deleted
	//     schema:
	//       "$ref": "#/definitions/MessageResponse"
	//   '404':
	//     description: event not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: event partially deleted
	//     schema:
	//       "$ref": "#/definitions/Error"

	if r.URL.Query().Get("finish") != "true" {
		s.deleteOwned(entities.EventKind)(w, r)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.d.FinishEventDeletion(r.Context(), id, mm.UserID(r.Context())); err != nil {
		writeServiceError(w, r, err, "event")
		return
	}

	api.WriteOK(w, http.StatusOK, MessageResponse{Message: message(r)})
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.r.GetProfile(r.Context(), mm.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "profile")
		return
	}

	api.WriteOK(w, http.StatusOK, Profile{
		ID:        p.ID,
		FullName:  p.FullName,
		Username:  p.Username,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
		Pronouns:  p.Pronouns,
		Location:  p.Location,
	})
}

func (s server) setProfile(w http.ResponseWriter, r *http.Request) {
	var req Profile
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.r.SetProfile(r.Context(), &entities.Profile{
		ID:        mm.UserID(r.Context()),
		FullName:  req.FullName,
		Username:  req.Username,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
		Pronouns:  req.Pronouns,
		Location:  req.Location,
	}); err != nil {
		writeServiceError(w, r, err, "profile")
		return
	}

	api.WriteOK(w, http.StatusOK, MessageResponse{Message: message(r)})
}

func (s server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	var req DeleteAccountRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.r.DeleteAccount(r.Context(), &entities.Feedback{
		UserID:      mm.UserID(r.Context()),
		Rating:      req.Rating,
		Text:        req.Feedback,
		Suggestions: req.Suggestions,
	}); err != nil {
		writeServiceError(w, r, err, "account")
		return
	}

	api.WriteOK(w, http.StatusOK, MessageResponse{Message: message(r)})
}

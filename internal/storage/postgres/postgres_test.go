// +build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/acolhe/acolhe/internal/entities"
	"github.com/acolhe/acolhe/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	for _, table := range []string{
		"post_likes", "community_posts", "event_registrations", "events",
		"appointments", "medications", "profiles", "user_feedback",
	} {
		_, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table))
		require.NoError(t, err)
	}
}

func newID() string {
	return uuid.New().String()
}

func createPost(t *testing.T, owner string, c entities.Category, createdAt time.Time) *entities.Post {
	p := &entities.Post{
		ID:        newID(),
		UserID:    owner,
		Title:     "title",
		Content:   "content",
		Category:  c,
		Tags:      []string{"a", "a", "b"},
		CreatedAt: createdAt,
	}
	require.NoError(t, s.CreatePost(ctx, p))

	return p
}

func createEvent(t *testing.T, organizer string) *entities.Event {
	e := &entities.Event{
		ID:          newID(),
		OrganizerID: organizer,
		Title:       "meetup",
		EventDate:   time.Now().Add(24 * time.Hour),
		CreatedAt:   time.Now(),
	}
	require.NoError(t, s.CreateEvent(ctx, e))

	return e
}

func ids(pp []*entities.Post) []string {
	out := make([]string, len(pp))
	for i, v := range pp {
		out[i] = v.ID
	}
	return out
}

func TestPg_Ping(t *testing.T) {
	require.NoError(t, s.Ping(ctx))
}

func TestPg_ListPosts(t *testing.T) {
	defer cleanup(t)

	owner := newID()
	base := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)

	p1 := createPost(t, owner, entities.QuestionCategory, base)
	p2 := createPost(t, owner, entities.SupportCategory, base.Add(time.Minute))
	p3 := createPost(t, owner, entities.QuestionCategory, base.Add(2*time.Minute))

	all, err := s.ListPosts(ctx, &storage.ListPostsParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{p3.ID, p2.ID, p1.ID}, ids(all))
	assert.Equal(t, []string{"a", "a", "b"}, all[0].Tags)
	assert.True(t, base.Add(2*time.Minute).Equal(all[0].CreatedAt))

	c := entities.QuestionCategory
	filtered, err := s.ListPosts(ctx, &storage.ListPostsParams{Category: &c})
	require.NoError(t, err)
	assert.Equal(t, []string{p3.ID, p1.ID}, ids(filtered))

	c = entities.DiscussionCategory
	empty, err := s.ListPosts(ctx, &storage.ListPostsParams{Category: &c})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPg_GetPost(t *testing.T) {
	defer cleanup(t)

	p := createPost(t, newID(), entities.DiscussionCategory, time.Now())

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Title, got.Title)
	assert.Equal(t, p.UserID, got.UserID)

	_, err = s.GetPost(ctx, newID())
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	_, err = s.GetPost(ctx, "not-uuid")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_CreatePost_Duplicate(t *testing.T) {
	defer cleanup(t)

	p := createPost(t, newID(), entities.DiscussionCategory, time.Now())
	assert.True(t, errors.Is(s.CreatePost(ctx, p), storage.ErrAlreadyExists))
}

func TestPg_DeletePost(t *testing.T) {
	defer cleanup(t)

	owner := newID()
	p := createPost(t, owner, entities.DiscussionCategory, time.Now())
	require.NoError(t, s.Like(ctx, p.ID, newID()))

	assert.True(t, errors.Is(s.DeletePost(ctx, p.ID, newID()), storage.ErrNotFound))

	_, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeletePost(ctx, p.ID, owner))
	assert.True(t, errors.Is(s.DeletePost(ctx, p.ID, owner), storage.ErrNotFound))

	var likes int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM post_likes WHERE post_id=$1`, p.ID).Scan(&likes))
	assert.Zero(t, likes)
}

func TestPg_Like(t *testing.T) {
	defer cleanup(t)

	p := createPost(t, newID(), entities.DiscussionCategory, time.Now())
	u1, u2 := newID(), newID()

	liked, err := s.IsLiked(ctx, p.ID, u1)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, s.Like(ctx, p.ID, u1))
	require.NoError(t, s.Like(ctx, p.ID, u1))
	require.NoError(t, s.Like(ctx, p.ID, u2))

	liked, err = s.IsLiked(ctx, p.ID, u1)
	require.NoError(t, err)
	assert.True(t, liked)

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.LikesCount)

	require.NoError(t, s.Unlike(ctx, p.ID, u1))
	require.NoError(t, s.Unlike(ctx, p.ID, u1))

	got, err = s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.LikesCount)

	assert.True(t, errors.Is(s.Like(ctx, newID(), u1), storage.ErrNotFound))

	_, err = s.IsLiked(ctx, "not-uuid", u1)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	assert.True(t, errors.Is(s.Like(ctx, "not-uuid", u1), storage.ErrNotFound))
	assert.True(t, errors.Is(s.Unlike(ctx, "not-uuid", u1), storage.ErrNotFound))
}

func TestPg_GetLikes(t *testing.T) {
	defer cleanup(t)

	owner, u := newID(), newID()
	p1 := createPost(t, owner, entities.DiscussionCategory, time.Now())
	p2 := createPost(t, owner, entities.DiscussionCategory, time.Now())

	require.NoError(t, s.Like(ctx, p1.ID, u))
	require.NoError(t, s.Like(ctx, p2.ID, owner))

	likes, err := s.GetLikes(ctx, u, p1.ID, p2.ID, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{p1.ID: true}, likes)

	likes, err = s.GetLikes(ctx, u)
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestPg_Profiles(t *testing.T) {
	defer cleanup(t)

	name := "Ana"
	p1 := &entities.Profile{ID: newID(), FullName: &name, UpdatedAt: time.Now()}
	p2 := &entities.Profile{ID: newID(), UpdatedAt: time.Now()}

	require.NoError(t, s.SetProfile(ctx, p1))
	require.NoError(t, s.SetProfile(ctx, p2))

	username := "ana"
	p1.Username = &username
	require.NoError(t, s.SetProfile(ctx, p1))

	got, err := s.GetProfile(ctx, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, &name, got.FullName)
	assert.Equal(t, &username, got.Username)
	assert.Nil(t, got.Bio)

	pp, err := s.GetProfiles(ctx, p1.ID, p2.ID, p1.ID, newID())
	require.NoError(t, err)
	assert.Len(t, pp, 2)

	pp, err = s.GetProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, pp)

	_, err = s.GetProfile(ctx, newID())
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestPg_Appointments(t *testing.T) {
	defer cleanup(t)

	owner := newID()
	base := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)

	late := &entities.Appointment{ID: newID(), UserID: owner, Title: "late", AppointmentDate: base.Add(time.Hour), Status: "scheduled", CreatedAt: base}
	early := &entities.Appointment{ID: newID(), UserID: owner, Title: "early", AppointmentDate: base, Status: "scheduled", CreatedAt: base}
	foreign := &entities.Appointment{ID: newID(), UserID: newID(), Title: "foreign", AppointmentDate: base, Status: "scheduled", CreatedAt: base}

	for _, v := range []*entities.Appointment{late, early, foreign} {
		require.NoError(t, s.CreateAppointment(ctx, v))
	}

	aa, err := s.ListAppointments(ctx, owner)
	require.NoError(t, err)
	require.Len(t, aa, 2)
	assert.Equal(t, early.ID, aa[0].ID)
	assert.Equal(t, late.ID, aa[1].ID)

	assert.True(t, errors.Is(s.DeleteAppointment(ctx, foreign.ID, owner), storage.ErrNotFound))
	require.NoError(t, s.DeleteAppointment(ctx, early.ID, owner))

	aa, err = s.ListAppointments(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, aa, 1)
}

func TestPg_Medications(t *testing.T) {
	defer cleanup(t)

	owner := newID()
	start := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	med := &entities.Medication{
		ID:            newID(),
		UserID:        owner,
		Name:          "aspirin",
		Dosage:        "100mg",
		Frequency:     "daily",
		ScheduleTimes: []string{"08:00", "20:00"},
		StartDate:     start,
		EndDate:       &end,
		IsActive:      true,
		CreatedAt:     start,
	}
	require.NoError(t, s.CreateMedication(ctx, med))

	meds, err := s.ListMedications(ctx, owner)
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, []string{"08:00", "20:00"}, meds[0].ScheduleTimes)
	assert.Equal(t, "2021-03-01", meds[0].StartDate.Format("2006-01-02"))
	require.NotNil(t, meds[0].EndDate)
	assert.Equal(t, "2021-04-01", meds[0].EndDate.Format("2006-01-02"))

	assert.True(t, errors.Is(s.DeleteMedication(ctx, med.ID, newID()), storage.ErrNotFound))
	require.NoError(t, s.DeleteMedication(ctx, med.ID, owner))
}

func TestPg_Register(t *testing.T) {
	defer cleanup(t)

	e := createEvent(t, newID())
	u := newID()

	r := &entities.EventRegistration{ID: newID(), EventID: e.ID, UserID: u, CreatedAt: time.Now()}
	require.NoError(t, s.Register(ctx, r))

	r.ID = newID()
	assert.True(t, errors.Is(s.Register(ctx, r), storage.ErrAlreadyExists))

	r.ID, r.EventID = newID(), newID()
	assert.True(t, errors.Is(s.Register(ctx, r), storage.ErrNotFound))
}

func TestPg_DeleteEvent(t *testing.T) {
	defer cleanup(t)

	organizer := newID()
	e := createEvent(t, organizer)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Register(ctx, &entities.EventRegistration{
			ID: newID(), EventID: e.ID, UserID: newID(), CreatedAt: time.Now(),
		}))
	}

	// registrations block the event row
	assert.Error(t, s.DeleteEvent(ctx, e.ID, organizer))

	assert.True(t, errors.Is(s.DeleteEventRegistrations(ctx, e.ID, newID()), storage.ErrNotFound))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM event_registrations WHERE event_id=$1`, e.ID).Scan(&count))
	assert.Equal(t, 3, count)

	require.NoError(t, s.DeleteEventRegistrations(ctx, e.ID, organizer))
	require.NoError(t, s.DeleteEventRegistrations(ctx, e.ID, organizer))

	assert.True(t, errors.Is(s.DeleteEvent(ctx, e.ID, newID()), storage.ErrNotFound))
	require.NoError(t, s.DeleteEvent(ctx, e.ID, organizer))

	ee, err := s.ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, ee)
}

func TestPg_InTx(t *testing.T) {
	defer cleanup(t)

	owner := newID()
	p := &entities.Post{ID: newID(), UserID: owner, Title: "t", Content: "c", Category: entities.SupportCategory, CreatedAt: time.Now()}

	err := s.InTx(ctx, func(s storage.Storage) error {
		require.NoError(t, s.CreatePost(ctx, p))
		return assert.AnError
	})
	assert.True(t, errors.Is(err, assert.AnError))

	_, err = s.GetPost(ctx, p.ID)
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	require.NoError(t, s.InTx(ctx, func(s storage.Storage) error {
		return s.CreatePost(ctx, p)
	}))

	_, err = s.GetPost(ctx, p.ID)
	require.NoError(t, err)

	assert.True(t, errors.Is(s.InTx(ctx, func(tx storage.Storage) error {
		return tx.InTx(ctx, func(storage.Storage) error { return nil })
	}), errBeginCalledWithinTx))
}

func TestPg_DeleteUserData(t *testing.T) {
	defer cleanup(t)

	u, other := newID(), newID()

	own := createPost(t, u, entities.SupportCategory, time.Now())
	foreign := createPost(t, other, entities.SupportCategory, time.Now())
	require.NoError(t, s.Like(ctx, foreign.ID, u))
	require.NoError(t, s.Like(ctx, own.ID, other))

	organized := createEvent(t, u)
	require.NoError(t, s.Register(ctx, &entities.EventRegistration{ID: newID(), EventID: organized.ID, UserID: other, CreatedAt: time.Now()}))
	attended := createEvent(t, other)
	require.NoError(t, s.Register(ctx, &entities.EventRegistration{ID: newID(), EventID: attended.ID, UserID: u, CreatedAt: time.Now()}))

	require.NoError(t, s.SetProfile(ctx, &entities.Profile{ID: u, UpdatedAt: time.Now()}))

	require.NoError(t, s.InTx(ctx, func(s storage.Storage) error {
		if err := s.AddFeedback(ctx, &entities.Feedback{UserID: u, Type: "account_deletion", Rating: 3, Text: "bye"}); err != nil {
			return err
		}
		return s.DeleteUserData(ctx, u)
	}))

	pp, err := s.ListPosts(ctx, nil)
	require.NoError(t, err)
	require.Len(t, pp, 1)
	assert.Equal(t, foreign.ID, pp[0].ID)
	assert.Zero(t, pp[0].LikesCount)

	ee, err := s.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, ee, 1)
	assert.Equal(t, attended.ID, ee[0].ID)

	_, err = s.GetProfile(ctx, u)
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	var feedback int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_feedback WHERE user_id=$1`, u).Scan(&feedback))
	assert.Equal(t, 1, feedback)
}

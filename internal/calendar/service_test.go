package calendar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/calendar"
	"github.com/rafaelpontes/focushub/internal/user"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&user.User{}, &calendar.Event{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func googleEvent(userID uuid.UUID, externalID, title string, start time.Time) *calendar.Event {
	return &calendar.Event{
		UserID:        userID,
		Title:         title,
		StartTime:     start,
		EndTime:       start.Add(time.Hour),
		Source:        calendar.SourceGoogle,
		GoogleEventID: &externalID,
	}
}

func TestUpsertGoogleEventDeduplicates(t *testing.T) {
	db := newTestDB(t)
	service := calendar.NewService(calendar.NewRepository(db))
	userID := uuid.New()
	ctx := t.Context()
	start := time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)

	first, err := service.UpsertGoogleEvent(ctx, googleEvent(userID, "ext-1", "standup", start))
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	// A re-sync returns the same external id with changed fields.
	second, err := service.UpsertGoogleEvent(ctx, googleEvent(userID, "ext-1", "standup (moved)", start.Add(time.Hour)))
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if first.ID != second.ID {
		t.Error("re-sync must update the existing row, not create a new one")
	}

	var count int64
	db.Model(&calendar.Event{}).Where("user_id = ?", userID).Count(&count)
	if count != 1 {
		t.Errorf("expected one row after re-sync, got %d", count)
	}

	fetched, err := service.GetByID(ctx, first.ID, userID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched.Title != "standup (moved)" {
		t.Errorf("upsert should refresh fields, got title %q", fetched.Title)
	}
}

func TestUpsertScopedPerUser(t *testing.T) {
	db := newTestDB(t)
	service := calendar.NewService(calendar.NewRepository(db))
	ctx := t.Context()
	start := time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)

	userA, userB := uuid.New(), uuid.New()
	if _, err := service.UpsertGoogleEvent(ctx, googleEvent(userA, "shared-id", "a", start)); err != nil {
		t.Fatalf("upsert for user A failed: %v", err)
	}
	if _, err := service.UpsertGoogleEvent(ctx, googleEvent(userB, "shared-id", "b", start)); err != nil {
		t.Fatalf("the same external id for another user must insert, got: %v", err)
	}

	var count int64
	db.Model(&calendar.Event{}).Count(&count)
	if count != 2 {
		t.Errorf("expected one row per user, got %d", count)
	}
}

func TestGoogleEventsRejectLocalEdits(t *testing.T) {
	db := newTestDB(t)
	service := calendar.NewService(calendar.NewRepository(db))
	userID := uuid.New()
	ctx := t.Context()

	e, err := service.UpsertGoogleEvent(ctx, googleEvent(userID, "ext-2", "1:1", time.Now()))
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	title := "renamed"
	if _, err := service.Update(ctx, e.ID, userID, calendar.UpdateEventDTO{Title: &title}); !errors.Is(err, calendar.ErrGoogleReadOnly) {
		t.Errorf("expected ErrGoogleReadOnly, got: %v", err)
	}

	color := "#ff8800"
	if _, err := service.Update(ctx, e.ID, userID, calendar.UpdateEventDTO{Color: &color}); err != nil {
		t.Errorf("color stays locally editable on synced events: %v", err)
	}

	// Synced rows may still be deleted locally.
	if err := service.Delete(ctx, e.ID, userID); err != nil {
		t.Errorf("deleting a synced event should work: %v", err)
	}
}

func TestListRangeOverlap(t *testing.T) {
	db := newTestDB(t)
	service := calendar.NewService(calendar.NewRepository(db))
	userID := uuid.New()
	ctx := t.Context()

	day := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	mk := func(title string, start, end time.Time) {
		t.Helper()
		if _, err := service.Create(ctx, userID, calendar.CreateEventDTO{Title: title, StartTime: start, EndTime: end}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	mk("inside", day.Add(10*time.Hour), day.Add(11*time.Hour))
	mk("straddles start", day.Add(-time.Hour), day.Add(time.Hour))
	mk("before", day.Add(-3*time.Hour), day.Add(-2*time.Hour))
	mk("after", day.AddDate(0, 0, 1).Add(time.Hour), day.AddDate(0, 0, 1).Add(2*time.Hour))

	events, err := service.ListDay(ctx, userID, day.Add(12*time.Hour))
	if err != nil {
		t.Fatalf("ListDay failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 overlapping events, got %d", len(events))
	}
}

func TestCreateValidation(t *testing.T) {
	db := newTestDB(t)
	service := calendar.NewService(calendar.NewRepository(db))
	userID := uuid.New()
	ctx := t.Context()
	at := time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)

	if _, err := service.Create(ctx, userID, calendar.CreateEventDTO{Title: "", StartTime: at, EndTime: at.Add(time.Hour)}); !errors.Is(err, calendar.ErrInvalidTitle) {
		t.Errorf("expected ErrInvalidTitle, got: %v", err)
	}
	if _, err := service.Create(ctx, userID, calendar.CreateEventDTO{Title: "x", StartTime: at, EndTime: at.Add(-time.Hour)}); !errors.Is(err, calendar.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got: %v", err)
	}

	// Zero-length is fine for all-day markers.
	if _, err := service.Create(ctx, userID, calendar.CreateEventDTO{Title: "holiday", StartTime: at, EndTime: at, AllDay: true}); err != nil {
		t.Errorf("all-day event with equal bounds should be accepted: %v", err)
	}
}

func TestRemoveGoogleEvent(t *testing.T) {
	db := newTestDB(t)
	service := calendar.NewService(calendar.NewRepository(db))
	ctx := t.Context()
	start := time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)

	userA, userB := uuid.New(), uuid.New()
	if _, err := service.UpsertGoogleEvent(ctx, googleEvent(userA, "gone", "cancelled upstream", start)); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, err := service.UpsertGoogleEvent(ctx, googleEvent(userA, "kept", "still on", start)); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, err := service.UpsertGoogleEvent(ctx, googleEvent(userB, "gone", "other user's copy", start)); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if err := service.RemoveGoogleEvent(ctx, userA, "gone"); err != nil {
		t.Fatalf("RemoveGoogleEvent failed: %v", err)
	}

	var count int64
	db.Model(&calendar.Event{}).Where("user_id = ? AND google_event_id = ?", userA, "gone").Count(&count)
	if count != 0 {
		t.Error("cancelled event should be removed")
	}
	db.Model(&calendar.Event{}).Where("user_id = ? AND google_event_id = ?", userA, "kept").Count(&count)
	if count != 1 {
		t.Error("other synced events must survive")
	}
	db.Model(&calendar.Event{}).Where("user_id = ?", userB).Count(&count)
	if count != 1 {
		t.Error("the same external id under another user must survive")
	}
}

func TestRemoveAllGoogleEventsKeepsLocal(t *testing.T) {
	db := newTestDB(t)
	service := calendar.NewService(calendar.NewRepository(db))
	userID := uuid.New()
	ctx := t.Context()
	start := time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)

	for _, id := range []string{"g1", "g2"} {
		if _, err := service.UpsertGoogleEvent(ctx, googleEvent(userID, id, "synced", start)); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}
	local, err := service.Create(ctx, userID, calendar.CreateEventDTO{Title: "dentist", StartTime: start, EndTime: start.Add(time.Hour)})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := service.RemoveAllGoogleEvents(ctx, userID); err != nil {
		t.Fatalf("RemoveAllGoogleEvents failed: %v", err)
	}

	remaining, err := service.ListRange(ctx, userID, start.Add(-time.Hour), start.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("ListRange failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != local.ID {
		t.Fatalf("only the local event should remain, got %d events", len(remaining))
	}
}

package task_test

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/project"
	"github.com/rafaelpontes/focushub/internal/task"
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
	if err := db.AutoMigrate(&user.User{}, &project.Project{}, &task.Task{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newService(db *gorm.DB) task.TaskService {
	projectService := project.NewService(project.NewRepository(db))
	return task.NewService(task.NewRepository(db), projectService)
}

func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	u := user.User{ID: uuid.New(), Email: uuid.NewString() + "@test.local", PasswordHash: "x"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return u.ID
}

func TestCompletionStampsTimestamp(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	service := newService(db)
	ctx := t.Context()

	created, err := service.Create(ctx, userID, task.CreateTaskDTO{Title: "write report"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Completed || created.CompletedAt != nil {
		t.Fatal("new task must start incomplete")
	}

	completed := true
	updated, err := service.Update(ctx, created.ID, userID, task.UpdateTaskDTO{Completed: &completed})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated.Completed {
		t.Error("task should be completed")
	}
	if updated.CompletedAt == nil {
		t.Fatal("completing without a timestamp must stamp completed_at")
	}
	if time.Since(*updated.CompletedAt) > time.Minute {
		t.Errorf("completed_at should be roughly now, got %v", updated.CompletedAt)
	}

	// Un-completing clears the timestamp again.
	incomplete := false
	updated, err = service.Update(ctx, created.ID, userID, task.UpdateTaskDTO{Completed: &incomplete})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Completed || updated.CompletedAt != nil {
		t.Error("un-completing must clear completed_at")
	}
}

func TestCompletionWithExplicitTimestamp(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	service := newService(db)
	ctx := t.Context()

	created, err := service.Create(ctx, userID, task.CreateTaskDTO{Title: "review notes"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	completed := true
	at := time.Date(2025, 3, 11, 17, 30, 0, 0, time.UTC)
	updated, err := service.Update(ctx, created.ID, userID, task.UpdateTaskDTO{Completed: &completed, CompletedAt: &at})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.CompletedAt == nil || !updated.CompletedAt.Equal(at) {
		t.Errorf("explicit completed_at should be kept, got %v", updated.CompletedAt)
	}
}

func TestCreateValidatesProjectOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db)
	intruder := seedUser(t, db)
	service := newService(db)
	ctx := t.Context()

	p := project.Project{ID: uuid.New(), UserID: owner, Name: "secret", Status: project.StatusOnTrack}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	pid := p.ID
	if _, err := service.Create(ctx, owner, task.CreateTaskDTO{Title: "ok", ProjectID: &pid}); err != nil {
		t.Fatalf("owner should be able to attach the project: %v", err)
	}

	_, err := service.Create(ctx, intruder, task.CreateTaskDTO{Title: "nope", ProjectID: &pid})
	if !errors.Is(err, task.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound for a foreign project, got: %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	service := newService(db)
	ctx := t.Context()

	if _, err := service.Create(ctx, userID, task.CreateTaskDTO{Title: "   "}); !errors.Is(err, task.ErrInvalidTitle) {
		t.Errorf("expected ErrInvalidTitle, got: %v", err)
	}
	if _, err := service.Create(ctx, userID, task.CreateTaskDTO{Title: "x", Priority: "urgent"}); !errors.Is(err, task.ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got: %v", err)
	}

	created, err := service.Create(ctx, userID, task.CreateTaskDTO{Title: "defaults"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Priority != task.PriorityMedium {
		t.Errorf("priority should default to medium, got %s", created.Priority)
	}
}

func TestListTodayIncludesOverdue(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	service := newService(db)
	ctx := t.Context()

	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	nextWeek := now.Add(7 * 24 * time.Hour)

	overdue, err := service.Create(ctx, userID, task.CreateTaskDTO{Title: "overdue", DueAt: &yesterday})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := service.Create(ctx, userID, task.CreateTaskDTO{Title: "future", DueAt: &nextWeek}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := service.Create(ctx, userID, task.CreateTaskDTO{Title: "undated"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	today, err := service.ListToday(ctx, userID, now)
	if err != nil {
		t.Fatalf("ListToday failed: %v", err)
	}
	if len(today) != 1 || today[0].ID != overdue.ID {
		t.Errorf("expected only the overdue task, got %d tasks", len(today))
	}
}

func TestReorder(t *testing.T) {
	db := newTestDB(t)
	userID := seedUser(t, db)
	service := newService(db)
	ctx := t.Context()

	a, _ := service.Create(ctx, userID, task.CreateTaskDTO{Title: "a"})
	b, _ := service.Create(ctx, userID, task.CreateTaskDTO{Title: "b"})
	c, _ := service.Create(ctx, userID, task.CreateTaskDTO{Title: "c"})

	if err := service.Reorder(ctx, userID, []uuid.UUID{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	tasks, err := service.List(ctx, userID, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(tasks) != 3 || tasks[0].ID != c.ID || tasks[1].ID != a.ID || tasks[2].ID != b.ID {
		t.Error("tasks should come back in the reordered sequence")
	}

	err = service.Reorder(ctx, userID, []uuid.UUID{uuid.New()})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("reordering an unknown id should fail, got: %v", err)
	}
}

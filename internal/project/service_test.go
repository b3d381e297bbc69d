package project_test

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rafaelpontes/focushub/internal/project"
	"github.com/rafaelpontes/focushub/internal/task"
	"github.com/rafaelpontes/focushub/internal/timeentry"
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
	if err := db.AutoMigrate(&user.User{}, &project.Project{}, &task.Task{}, &timeentry.TimeEntry{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestCreateProjectDefaults(t *testing.T) {
	db := newTestDB(t)
	service := project.NewService(project.NewRepository(db))
	userID := uuid.New()
	ctx := t.Context()

	first, err := service.Create(ctx, userID, project.CreateProjectDTO{Name: "  thesis  "})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if first.Name != "thesis" {
		t.Errorf("name should be trimmed, got %q", first.Name)
	}
	if first.Status != project.StatusOnTrack {
		t.Errorf("new projects start on_track, got %q", first.Status)
	}
	if first.HoursPerWeek != nil {
		t.Error("weekly target defaults to unset")
	}
	if first.Position != 0 {
		t.Errorf("first project gets position 0, got %d", first.Position)
	}

	second, err := service.Create(ctx, userID, project.CreateProjectDTO{Name: "reading"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if second.Position != 1 {
		t.Errorf("positions append, got %d", second.Position)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	db := newTestDB(t)
	service := project.NewService(project.NewRepository(db))
	userID := uuid.New()
	ctx := t.Context()

	if _, err := service.Create(ctx, userID, project.CreateProjectDTO{Name: "   "}); !errors.Is(err, project.ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got: %v", err)
	}
	for _, color := range []string{"red", "#12345", "#12345g", "123456"} {
		if _, err := service.Create(ctx, userID, project.CreateProjectDTO{Name: "x", Color: color}); !errors.Is(err, project.ErrInvalidColor) {
			t.Errorf("Create(color=%q): expected ErrInvalidColor, got: %v", color, err)
		}
	}
	if _, err := service.Create(ctx, userID, project.CreateProjectDTO{Name: "x", Color: "#1A2b3C"}); err != nil {
		t.Errorf("valid hex color rejected: %v", err)
	}

	negative := -2.0
	if _, err := service.Create(ctx, userID, project.CreateProjectDTO{Name: "x", HoursPerWeek: &negative}); !errors.Is(err, project.ErrInvalidTarget) {
		t.Errorf("expected ErrInvalidTarget, got: %v", err)
	}
}

func TestUpdateTargetSetAndClear(t *testing.T) {
	db := newTestDB(t)
	service := project.NewService(project.NewRepository(db))
	userID := uuid.New()
	ctx := t.Context()

	p, err := service.Create(ctx, userID, project.CreateProjectDTO{Name: "thesis"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	target := 15.0
	p, err = service.Update(ctx, p.ID, userID, project.UpdateProjectDTO{HoursPerWeek: &target})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if p.HoursPerWeek == nil || *p.HoursPerWeek != 15 {
		t.Fatalf("target not set, got %v", p.HoursPerWeek)
	}

	// Zero clears the target back to unset instead of storing 0.
	zero := 0.0
	p, err = service.Update(ctx, p.ID, userID, project.UpdateProjectDTO{HoursPerWeek: &zero})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if p.HoursPerWeek != nil {
		t.Errorf("zero should clear the target, got %v", *p.HoursPerWeek)
	}

	status := project.StatusNeedsAttention
	p, err = service.Update(ctx, p.ID, userID, project.UpdateProjectDTO{Status: &status})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if p.Status != project.StatusNeedsAttention {
		t.Errorf("status not applied, got %q", p.Status)
	}

	bad := project.ProjectStatus("paused")
	if _, err := service.Update(ctx, p.ID, userID, project.UpdateProjectDTO{Status: &bad}); !errors.Is(err, project.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got: %v", err)
	}
}

func TestReorderProjects(t *testing.T) {
	db := newTestDB(t)
	service := project.NewService(project.NewRepository(db))
	userID := uuid.New()
	ctx := t.Context()

	var ids []uuid.UUID
	for _, name := range []string{"a", "b", "c"} {
		p, err := service.Create(ctx, userID, project.CreateProjectDTO{Name: name})
		if err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
		ids = append(ids, p.ID)
	}

	if err := service.Reorder(ctx, userID, []uuid.UUID{ids[2], ids[0], ids[1]}); err != nil {
		t.Fatalf("Reorder failed: %v", err)
	}

	listed, err := service.List(ctx, userID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(listed))
	}
	want := []string{"c", "a", "b"}
	for i, p := range listed {
		if p.Name != want[i] {
			t.Errorf("position %d: want %q got %q", i, want[i], p.Name)
		}
	}

	// An id the user does not own fails the whole reorder.
	if err := service.Reorder(ctx, userID, []uuid.UUID{ids[0], uuid.New()}); !errors.Is(err, project.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got: %v", err)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	db := newTestDB(t)
	service := project.NewService(project.NewRepository(db))
	userID := uuid.New()
	ctx := t.Context()

	p, err := service.Create(ctx, userID, project.CreateProjectDTO{Name: "thesis"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	keep, err := service.Create(ctx, userID, project.CreateProjectDTO{Name: "reading"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	now := time.Now().UTC()
	end := now
	if err := db.Create(&task.Task{ID: uuid.New(), UserID: userID, ProjectID: &p.ID, Title: "draft"}).Error; err != nil {
		t.Fatalf("seed task: %v", err)
	}
	if err := db.Create(&timeentry.TimeEntry{ID: uuid.New(), UserID: userID, ProjectID: p.ID, StartTime: now.Add(-time.Hour), EndTime: &end}).Error; err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	if err := db.Create(&task.Task{ID: uuid.New(), UserID: userID, ProjectID: &keep.ID, Title: "chapter 2"}).Error; err != nil {
		t.Fatalf("seed task: %v", err)
	}

	if err := service.Delete(ctx, p.ID, userID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var taskCount, entryCount int64
	db.Model(&task.Task{}).Where("project_id = ?", p.ID).Count(&taskCount)
	db.Model(&timeentry.TimeEntry{}).Where("project_id = ?", p.ID).Count(&entryCount)
	if taskCount != 0 || entryCount != 0 {
		t.Errorf("project children survived: %d tasks, %d entries", taskCount, entryCount)
	}

	var keptTasks int64
	db.Model(&task.Task{}).Where("project_id = ?", keep.ID).Count(&keptTasks)
	if keptTasks != 1 {
		t.Errorf("another project's tasks were affected, want 1 got %d", keptTasks)
	}

	if _, err := service.GetByID(ctx, p.ID, userID); !errors.Is(err, project.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound after delete, got: %v", err)
	}

	// Deleting somebody else's project is a not-found, not a silent no-op.
	if err := service.Delete(ctx, keep.ID, uuid.New()); !errors.Is(err, project.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got: %v", err)
	}
}

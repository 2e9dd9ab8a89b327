package service

import (
	"testing"
	"time"

	"github.com/devfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupProjectServiceTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Project{}); err != nil {
		t.Fatalf("failed to migrate projects: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func createProjectAt(t *testing.T, title string, featured bool, createdAt time.Time) {
	t.Helper()
	project := db.Project{
		Title:        title,
		Description:  "desc",
		Technologies: db.StringList{"Go"},
		Status:       db.ProjectStatusCompleted,
		IsFeatured:   featured,
	}
	project.CreatedAt = createdAt
	if err := db.DB.Create(&project).Error; err != nil {
		t.Fatalf("failed to create project %q: %v", title, err)
	}
}

func TestProjectServiceListFeaturedFilter(t *testing.T) {
	cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	createProjectAt(t, "Oldest Featured", true, base)
	createProjectAt(t, "Plain", false, base.Add(24*time.Hour))
	createProjectAt(t, "Newest Featured", true, base.Add(48*time.Hour))

	svc := NewProjectService(db.DB)

	all, err := svc.List(false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(all))
	}
	if all[0].Title != "Newest Featured" {
		t.Fatalf("expected newest project first, got %q", all[0].Title)
	}

	featured, err := svc.List(true)
	if err != nil {
		t.Fatalf("featured list failed: %v", err)
	}
	if len(featured) != 2 {
		t.Fatalf("expected 2 featured projects, got %d", len(featured))
	}
	for _, project := range featured {
		if !project.IsFeatured {
			t.Fatalf("non-featured project %q leaked into featured listing", project.Title)
		}
	}
	if featured[0].Title != "Newest Featured" || featured[1].Title != "Oldest Featured" {
		t.Fatalf("expected creation-time descending order, got %q then %q", featured[0].Title, featured[1].Title)
	}
}

func TestProjectServiceFeaturedLimit(t *testing.T) {
	cleanup := setupProjectServiceTestDB(t)
	defer cleanup()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		createProjectAt(t, "Project", true, base.Add(time.Duration(i)*time.Hour))
	}

	svc := NewProjectService(db.DB)
	featured, err := svc.Featured(6)
	if err != nil {
		t.Fatalf("featured failed: %v", err)
	}
	if len(featured) != 6 {
		t.Fatalf("expected featured list capped at 6, got %d", len(featured))
	}

	count, err := svc.Count()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 8 {
		t.Fatalf("expected 8 projects counted, got %d", count)
	}
}

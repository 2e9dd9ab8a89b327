package service

import (
	"errors"
	"testing"

	"github.com/devfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupContentServiceTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.PersonalInfo{}, &db.About{}, &db.SocialLink{}); err != nil {
		t.Fatalf("failed to migrate content models: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestContentServiceActivePersonalInfoMissing(t *testing.T) {
	cleanup := setupContentServiceTestDB(t)
	defer cleanup()

	svc := NewContentService(db.DB)
	if _, err := svc.ActivePersonalInfo(); !errors.Is(err, ErrPersonalInfoNotFound) {
		t.Fatalf("expected ErrPersonalInfoNotFound, got %v", err)
	}

	// 存在记录但未激活时同样视为缺失
	if err := db.DB.Create(&db.PersonalInfo{Name: "Inactive", IsActive: false}).Error; err != nil {
		t.Fatalf("failed to seed inactive record: %v", err)
	}
	if _, err := svc.ActivePersonalInfo(); !errors.Is(err, ErrPersonalInfoNotFound) {
		t.Fatalf("expected ErrPersonalInfoNotFound for inactive-only store, got %v", err)
	}
}

func TestContentServiceFirstActiveWins(t *testing.T) {
	cleanup := setupContentServiceTestDB(t)
	defer cleanup()

	// 约定单例：出现多条激活记录时取 id 最小者
	if err := db.DB.Create(&db.PersonalInfo{Name: "First", IsActive: true}).Error; err != nil {
		t.Fatalf("failed to seed record: %v", err)
	}
	if err := db.DB.Create(&db.PersonalInfo{Name: "Second", IsActive: true}).Error; err != nil {
		t.Fatalf("failed to seed record: %v", err)
	}

	svc := NewContentService(db.DB)
	info, err := svc.ActivePersonalInfo()
	if err != nil {
		t.Fatalf("expected active record, got %v", err)
	}
	if info.Name != "First" {
		t.Fatalf("expected first active record to win, got %q", info.Name)
	}
}

func TestContentServiceActiveAbout(t *testing.T) {
	cleanup := setupContentServiceTestDB(t)
	defer cleanup()

	svc := NewContentService(db.DB)
	if _, err := svc.ActiveAbout(); !errors.Is(err, ErrAboutNotFound) {
		t.Fatalf("expected ErrAboutNotFound, got %v", err)
	}

	about := db.About{
		Summary:    "summary",
		Vision:     "vision",
		Highlights: db.StringList{"one", "two"},
		IsActive:   true,
	}
	if err := db.DB.Create(&about).Error; err != nil {
		t.Fatalf("failed to seed about: %v", err)
	}

	got, err := svc.ActiveAbout()
	if err != nil {
		t.Fatalf("expected about record, got %v", err)
	}
	if len(got.Highlights) != 2 || got.Highlights[0] != "one" {
		t.Fatalf("expected highlights round-trip, got %v", got.Highlights)
	}
}

func TestContentServiceSocialLinkOrdering(t *testing.T) {
	cleanup := setupContentServiceTestDB(t)
	defer cleanup()

	links := []db.SocialLink{
		{Name: "Twitter", URL: "https://twitter.com/x", Order: 4, IsActive: true},
		{Name: "GitHub", URL: "https://github.com/x", Order: 1, IsActive: true},
		{Name: "Hidden", URL: "https://example.com", Order: 2, IsActive: false},
		{Name: "LinkedIn", URL: "https://linkedin.com/x", Order: 2, IsActive: true},
	}
	for i := range links {
		if err := db.DB.Create(&links[i]).Error; err != nil {
			t.Fatalf("failed to seed link: %v", err)
		}
	}

	svc := NewContentService(db.DB)
	visible, err := svc.ListSocialLinks()
	if err != nil {
		t.Fatalf("list social links failed: %v", err)
	}
	if len(visible) != 3 {
		t.Fatalf("expected 3 active links, got %d", len(visible))
	}
	if visible[0].Name != "GitHub" || visible[1].Name != "LinkedIn" || visible[2].Name != "Twitter" {
		t.Fatalf("expected order-ascending listing, got %q, %q, %q", visible[0].Name, visible[1].Name, visible[2].Name)
	}
}

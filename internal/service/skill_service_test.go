package service

import (
	"testing"

	"github.com/devfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSkillServiceTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Skill{}); err != nil {
		t.Fatalf("failed to migrate skills: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSkillServiceListGroupedPartition(t *testing.T) {
	cleanup := setupSkillServiceTestDB(t)
	defer cleanup()

	skills := []db.Skill{
		{Name: "Python", Category: db.SkillCategoryProgramming, Level: 90},
		{Name: "SQL", Category: db.SkillCategoryProgramming, Level: 80},
		{Name: "TensorFlow", Category: db.SkillCategoryMLAI, Level: 85},
		{Name: "Pandas", Category: db.SkillCategoryDataScience, Level: 95},
		{Name: "Git", Category: db.SkillCategoryTools, Level: 85},
	}
	for i := range skills {
		if err := db.DB.Create(&skills[i]).Error; err != nil {
			t.Fatalf("failed to seed skill: %v", err)
		}
	}

	svc := NewSkillService(db.DB)
	grouped, err := svc.ListGrouped()
	if err != nil {
		t.Fatalf("grouped listing failed: %v", err)
	}

	total := 0
	seen := map[uint]bool{}
	for _, bucket := range grouped {
		for _, skill := range bucket {
			if seen[skill.ID] {
				t.Fatalf("skill %q appeared in more than one bucket", skill.Name)
			}
			seen[skill.ID] = true
			total++
		}
	}
	if total != len(skills) {
		t.Fatalf("expected every skill bucketed exactly once, got %d of %d", total, len(skills))
	}

	programming, ok := grouped["Programming Languages"]
	if !ok {
		t.Fatalf("expected display label bucket for programming, got keys %v", groupedKeys(grouped))
	}
	if len(programming) != 2 {
		t.Fatalf("expected 2 programming skills, got %d", len(programming))
	}
	if programming[0].Level < programming[1].Level {
		t.Fatalf("expected level-descending order within bucket")
	}
}

func TestSkillServiceUnknownCategoryFallsBack(t *testing.T) {
	cleanup := setupSkillServiceTestDB(t)
	defer cleanup()

	if err := db.DB.Create(&db.Skill{Name: "Mystery", Category: "other", Level: 50}).Error; err != nil {
		t.Fatalf("failed to seed skill: %v", err)
	}

	svc := NewSkillService(db.DB)
	grouped, err := svc.ListGrouped()
	if err != nil {
		t.Fatalf("grouped listing failed: %v", err)
	}
	if len(grouped["other"]) != 1 {
		t.Fatalf("expected unknown category to keep its raw key, got %v", groupedKeys(grouped))
	}
}

func groupedKeys(grouped map[string][]db.Skill) []string {
	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	return keys
}

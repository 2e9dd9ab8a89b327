package service

import (
	"fmt"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// skillCategoryLabels maps the stored category keys to their public
// display names. Unknown categories fall back to the raw key so no
// skill ever drops out of the grouped listing.
var skillCategoryLabels = map[string]string{
	db.SkillCategoryProgramming: "Programming Languages",
	db.SkillCategoryMLAI:        "Machine Learning & AI",
	db.SkillCategoryWebDev:      "Web Development",
	db.SkillCategoryDataScience: "Data Science & Analytics",
	db.SkillCategoryTools:       "Tools & Technologies",
}

// SkillCategoryLabel returns the display name for a stored category key.
func SkillCategoryLabel(category string) string {
	if label, ok := skillCategoryLabels[category]; ok {
		return label
	}
	return category
}

// SkillService handles skill queries.
type SkillService struct {
	db *gorm.DB
}

// NewSkillService constructs a SkillService.
func NewSkillService(gdb *gorm.DB) *SkillService {
	return &SkillService{db: gdb}
}

// List returns every skill ordered by category, then level descending.
func (s *SkillService) List() ([]db.Skill, error) {
	var skills []db.Skill
	if err := s.db.Order("category ASC, level DESC").Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

// ListGrouped buckets every stored skill into exactly one category,
// keyed by the category display name. Within a bucket the level-descending
// order from List is preserved.
func (s *SkillService) ListGrouped() (map[string][]db.Skill, error) {
	skills, err := s.List()
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]db.Skill)
	for _, skill := range skills {
		label := SkillCategoryLabel(skill.Category)
		grouped[label] = append(grouped[label], skill)
	}
	return grouped, nil
}

// Count returns the number of stored skills.
func (s *SkillService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&db.Skill{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count skills: %w", err)
	}
	return count, nil
}

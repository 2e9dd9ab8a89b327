package service

import (
	"fmt"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// ProjectService handles portfolio project queries.
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService constructs a ProjectService.
func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb}
}

// List returns projects newest first. When featuredOnly is set, only
// records with the featured flag are included; no other client-supplied
// filter is honored.
func (s *ProjectService) List(featuredOnly bool) ([]db.Project, error) {
	query := s.db.Model(&db.Project{})
	if featuredOnly {
		query = query.Where("is_featured = ?", true)
	}

	var projects []db.Project
	if err := query.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Featured returns up to limit featured projects, newest first.
func (s *ProjectService) Featured(limit int) ([]db.Project, error) {
	var projects []db.Project
	query := s.db.Where("is_featured = ?", true).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list featured projects: %w", err)
	}
	return projects, nil
}

// Count returns the number of stored projects.
func (s *ProjectService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&db.Project{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}

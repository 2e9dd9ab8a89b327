package service

import (
	"errors"
	"fmt"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// ResumeService handles work experience, certification and education queries.
type ResumeService struct {
	db *gorm.DB
}

// NewResumeService constructs a ResumeService.
func NewResumeService(gdb *gorm.DB) *ResumeService {
	return &ResumeService{db: gdb}
}

// ListExperience returns work experience newest first.
func (s *ResumeService) ListExperience() ([]db.Experience, error) {
	var items []db.Experience
	if err := s.db.Order("start_date DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list experience: %w", err)
	}
	return items, nil
}

// ListCertifications returns certifications by issue date descending.
func (s *ResumeService) ListCertifications() ([]db.Certification, error) {
	var items []db.Certification
	if err := s.db.Order("date_issued DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list certifications: %w", err)
	}
	return items, nil
}

// ListEducation returns education records newest first.
func (s *ResumeService) ListEducation() ([]db.Education, error) {
	var items []db.Education
	if err := s.db.Order("start_date DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list education: %w", err)
	}
	return items, nil
}

// LatestExperience returns the most recent experience record, or nil when
// none is stored.
func (s *ResumeService) LatestExperience() (*db.Experience, error) {
	var item db.Experience
	err := s.db.Order("start_date DESC").First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest experience: %w", err)
	}
	return &item, nil
}

// FirstEducation returns the most recent education record, or nil when
// none is stored.
func (s *ResumeService) FirstEducation() (*db.Education, error) {
	var item db.Education
	err := s.db.Order("start_date DESC").First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get first education: %w", err)
	}
	return &item, nil
}

// CountExperience returns the number of stored experience records.
func (s *ResumeService) CountExperience() (int64, error) {
	var count int64
	if err := s.db.Model(&db.Experience{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count experience: %w", err)
	}
	return count, nil
}

// CountCertifications returns the number of stored certifications.
func (s *ResumeService) CountCertifications() (int64, error) {
	var count int64
	if err := s.db.Model(&db.Certification{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count certifications: %w", err)
	}
	return count, nil
}

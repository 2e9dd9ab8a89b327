package service

import (
	"errors"
	"fmt"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrPersonalInfoNotFound 在没有激活的个人信息记录时返回
	ErrPersonalInfoNotFound = errors.New("personal info not found")
	// ErrAboutNotFound 在没有激活的关于记录时返回
	ErrAboutNotFound = errors.New("about info not found")
)

// ContentService serves the singleton-by-convention content sections and
// the ordered social link list. Singleton kinds keep no uniqueness
// constraint in the schema; the first active row (lowest id) wins.
type ContentService struct {
	db *gorm.DB
}

// NewContentService constructs a ContentService.
func NewContentService(gdb *gorm.DB) *ContentService {
	return &ContentService{db: gdb}
}

// ActivePersonalInfo returns the first active personal info record.
func (s *ContentService) ActivePersonalInfo() (*db.PersonalInfo, error) {
	var info db.PersonalInfo
	err := s.db.Where("is_active = ?", true).Order("id ASC").First(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonalInfoNotFound
		}
		return nil, fmt.Errorf("get personal info: %w", err)
	}
	return &info, nil
}

// ActiveAbout returns the first active about record.
func (s *ContentService) ActiveAbout() (*db.About, error) {
	var about db.About
	err := s.db.Where("is_active = ?", true).Order("id ASC").First(&about).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAboutNotFound
		}
		return nil, fmt.Errorf("get about info: %w", err)
	}
	return &about, nil
}

// ListSocialLinks returns active social links ordered by their sort value.
// Sort values need not be unique or contiguous; id breaks ties.
func (s *ContentService) ListSocialLinks() ([]db.SocialLink, error) {
	var links []db.SocialLink
	if err := s.db.Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	return links, nil
}

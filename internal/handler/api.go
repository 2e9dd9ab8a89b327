package handler

import (
	"github.com/devfolio/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	content   *service.ContentService
	projects  *service.ProjectService
	skills    *service.SkillService
	resume    *service.ResumeService
	contacts  *service.ContactService
	uploadDir string
	uploadURL string
}

// NewAPI constructs a handler set with shared services. The notifier may
// be nil to disable contact notifications entirely.
func NewAPI(db *gorm.DB, notifier service.ContactNotifier, uploadDir, uploadURL string) *API {
	return &API{
		db:        db,
		content:   service.NewContentService(db),
		projects:  service.NewProjectService(db),
		skills:    service.NewSkillService(db),
		resume:    service.NewResumeService(db),
		contacts:  service.NewContactService(db, notifier),
		uploadDir: uploadDir,
		uploadURL: uploadURL,
	}
}

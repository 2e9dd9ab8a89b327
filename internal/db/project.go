package db

import "gorm.io/gorm"

// 项目状态枚举
const (
	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusPlanned    = "planned"
)

// Project 保存作品集中的单个项目
// UpdatedAt 由 GORM 在每次写入时自动刷新
type Project struct {
	gorm.Model
	Title           string     `gorm:"size:200;not null"`
	Description     string     `gorm:"type:text"`
	LongDescription string     `gorm:"type:text"`
	Image           string     `gorm:"size:255"`
	Technologies    StringList `gorm:"type:text"`
	Features        StringList `gorm:"type:text"`
	GithubURL       string     `gorm:"size:255"`
	LiveURL         string     `gorm:"size:255"`
	Status          string     `gorm:"size:20;default:'completed'"`
	IsFeatured      bool       `gorm:"default:false;index"`
}

// TableName 返回自定义表名
func (Project) TableName() string {
	return "projects"
}

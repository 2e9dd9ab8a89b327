package db

import (
	"time"

	"gorm.io/gorm"
)

// Experience 保存一段工作经历
// Description 为要点列表，EndDate 在 IsCurrent=true 时可为空
type Experience struct {
	gorm.Model
	Title        string     `gorm:"size:200;not null"`
	Company      string     `gorm:"size:200;not null"`
	Location     string     `gorm:"size:100"`
	StartDate    time.Time  `gorm:"not null;index"`
	EndDate      *time.Time `gorm:""`
	IsCurrent    bool       `gorm:"default:false"`
	Description  StringList `gorm:"type:text"`
	Technologies StringList `gorm:"type:text"`
}

// TableName 返回自定义表名
func (Experience) TableName() string {
	return "experiences"
}

package db

import (
	"time"

	"gorm.io/gorm"
)

// Education 保存一段教育经历
// Coursework 为课程名称列表，GPA 以原样字符串保存
type Education struct {
	gorm.Model
	Degree      string     `gorm:"size:200;not null"`
	Institution string     `gorm:"size:200;not null"`
	Location    string     `gorm:"size:100"`
	StartDate   time.Time  `gorm:"not null;index"`
	EndDate     *time.Time `gorm:""`
	IsCurrent   bool       `gorm:"default:false"`
	GPA         string     `gorm:"size:20"`
	Description string     `gorm:"type:text"`
	Coursework  StringList `gorm:"type:text"`
}

// TableName 返回自定义表名
func (Education) TableName() string {
	return "educations"
}

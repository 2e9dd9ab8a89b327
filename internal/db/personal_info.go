package db

import "gorm.io/gorm"

// PersonalInfo 保存站点主人公的基础信息
// 约定同一时间只应有一条 IsActive=true 的记录，存储层不做唯一性约束
// 查询时取 id 最小的激活记录
type PersonalInfo struct {
	gorm.Model
	Name         string `gorm:"size:100;not null"`
	Title        string `gorm:"size:200"`
	Subtitle     string `gorm:"size:200"`
	Location     string `gorm:"size:100"`
	Email        string `gorm:"size:255"`
	Phone        string `gorm:"size:20"`
	LinkedIn     string `gorm:"size:255"`
	GitHub       string `gorm:"size:255"`
	Resume       string `gorm:"size:255"`
	ProfileImage string `gorm:"size:255"`
	IsActive     bool   `gorm:"default:true;index"`
}

// TableName 返回自定义表名
func (PersonalInfo) TableName() string {
	return "personal_infos"
}

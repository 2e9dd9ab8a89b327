package db

import "gorm.io/gorm"

// About 保存关于页的简介、愿景与亮点列表
// 与 PersonalInfo 一样是"约定单例"：取第一条激活记录
type About struct {
	gorm.Model
	Summary    string     `gorm:"type:text;not null"`
	Vision     string     `gorm:"type:text"`
	Highlights StringList `gorm:"type:text"`
	IsActive   bool       `gorm:"default:true;index"`
}

// TableName 返回自定义表名
func (About) TableName() string {
	return "abouts"
}

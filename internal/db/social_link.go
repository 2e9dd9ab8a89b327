package db

import "gorm.io/gorm"

// SocialLink 保存前台展示的社交链接
// Order 值越小越靠前，允许重复或不连续
type SocialLink struct {
	gorm.Model
	Name     string `gorm:"size:50;not null"`
	URL      string `gorm:"size:255;not null"`
	Icon     string `gorm:"size:50"`
	Color    string `gorm:"size:20;default:'#ffffff'"`
	Order    int    `gorm:"column:sort_order;default:0"`
	IsActive bool   `gorm:"default:true"`
}

// TableName 返回自定义表名
func (SocialLink) TableName() string {
	return "social_links"
}

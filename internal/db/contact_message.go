package db

import "gorm.io/gorm"

// ContactMessage 保存联系表单提交的留言
// CreatedAt 在插入时由服务端生成，公开 API 永不修改已有记录
// IsRead 仅能通过后台的批量已读操作翻转
type ContactMessage struct {
	gorm.Model
	Name    string `gorm:"size:100;not null"`
	Email   string `gorm:"size:255;not null"`
	Subject string `gorm:"size:200;not null"`
	Message string `gorm:"type:text;not null"`
	IsRead  bool   `gorm:"default:false;index"`
}

// TableName 返回自定义表名
func (ContactMessage) TableName() string {
	return "contact_messages"
}

package db

import (
	"time"

	"gorm.io/gorm"
)

// Certification 保存一项证书，按颁发日期倒序展示
type Certification struct {
	gorm.Model
	Title           string    `gorm:"size:200;not null"`
	Issuer          string    `gorm:"size:100;not null"`
	DateIssued      time.Time `gorm:"not null;index"`
	CredentialID    string    `gorm:"size:100"`
	Description     string    `gorm:"type:text"`
	VerificationURL string    `gorm:"size:255"`
	Logo            string    `gorm:"size:255"`
}

// TableName 返回自定义表名
func (Certification) TableName() string {
	return "certifications"
}

package db

import "gorm.io/gorm"

// 技能分类枚举，展示名称见 handler 层的映射
const (
	SkillCategoryProgramming = "programming"
	SkillCategoryMLAI        = "ml_ai"
	SkillCategoryWebDev      = "web_dev"
	SkillCategoryDataScience = "data_science"
	SkillCategoryTools       = "tools"
)

// Skill 保存单项技能，Level 取值 0-100
type Skill struct {
	gorm.Model
	Name     string `gorm:"size:100;not null"`
	Category string `gorm:"size:20;not null;index"`
	Level    int    `gorm:"default:0"`
	Icon     string `gorm:"size:50;default:'💻'"`
}

// TableName 返回自定义表名
func (Skill) TableName() string {
	return "skills"
}

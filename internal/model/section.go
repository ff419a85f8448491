package model

import (
	"time"

	"gorm.io/gorm"
)

type Section struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Name         string         `json:"name" gorm:"not null;uniqueIndex"` // "Quantitative Aptitude"
	Description  string         `json:"description,omitempty"`
	DisplayOrder int            `json:"display_order" gorm:"not null;index"`
	Questions    []Question     `json:"questions,omitempty" gorm:"foreignKey:SectionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

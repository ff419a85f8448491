package model

import (
	"time"

	"gorm.io/gorm"
)

// Question is one multiple-choice item. CorrectAnswer is the answer key and is
// never serialized from the model; it leaves the server only through the
// post-completion results payload.
type Question struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	SectionID        uint           `json:"section_id" gorm:"not null;index"`
	Section          Section        `json:"-" gorm:"foreignKey:SectionID"`
	QuestionText     string         `json:"question_text" gorm:"type:text;not null"`
	OptionA          string         `json:"option_a" gorm:"not null"`
	OptionB          string         `json:"option_b" gorm:"not null"`
	OptionC          string         `json:"option_c" gorm:"not null"`
	OptionD          string         `json:"option_d" gorm:"not null"`
	CorrectAnswer    string         `json:"-" gorm:"not null"` // "A".."D"
	TimeLimitSeconds int            `json:"time_limit_seconds" gorm:"not null"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsAnswerLetter reports whether s is a valid option letter.
func IsAnswerLetter(s string) bool {
	switch s {
	case "A", "B", "C", "D":
		return true
	}
	return false
}

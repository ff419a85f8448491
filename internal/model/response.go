package model

import (
	"time"

	"gorm.io/gorm"
)

// Response is one recorded answer (or non-answer) to one question within one
// attempt. SelectedAnswer is nil when the client-side timer expired before a
// choice was made. IsCorrect is always derived server-side against the stored
// answer key, never taken from the caller.
type Response struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	AttemptID        uint           `json:"attempt_id" gorm:"not null;uniqueIndex:idx_responses_attempt_question"`
	QuestionID       uint           `json:"question_id" gorm:"not null;uniqueIndex:idx_responses_attempt_question;index"`
	Question         Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	SelectedAnswer   *string        `json:"selected_answer,omitempty"`
	IsCorrect        bool           `json:"is_correct"`
	TimeTakenSeconds int            `json:"time_taken_seconds"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// Attempt is one candidate's single, lifetime-bound pass through the test.
// The unique index on CandidateID backstops the single-attempt invariant at
// the database, in addition to the conditional status flip at creation.
type Attempt struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	CandidateID      uint           `json:"candidate_id" gorm:"not null;uniqueIndex"`
	Candidate        Candidate      `json:"candidate,omitempty" gorm:"foreignKey:CandidateID"`
	StartedAt        time.Time      `json:"started_at"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	TotalQuestions   int            `json:"total_questions"`
	CorrectAnswers   int            `json:"correct_answers"`
	IncorrectAnswers int            `json:"incorrect_answers"`
	TotalScore       int            `json:"total_score"` // integer percentage
	Responses        []Response     `json:"responses,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// Completed reports whether the attempt has been finalized. A completed
// attempt accepts no further responses and is immutable.
func (a *Attempt) Completed() bool {
	return a.CompletedAt != nil
}

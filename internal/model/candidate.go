package model

import (
	"time"

	"gorm.io/gorm"
)

type CandidateStatus string

const (
	CandidateNotAttempted CandidateStatus = "not_attempted"
	CandidateAttempted    CandidateStatus = "attempted"
)

// Candidate is one pre-registered test taker. The (email, phone) pair
// identifies at most one candidate.
type Candidate struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	FullName  string          `json:"full_name" gorm:"not null"`
	Email     string          `json:"email" gorm:"not null;uniqueIndex:idx_candidates_contact"`
	Phone     string          `json:"phone" gorm:"not null;uniqueIndex:idx_candidates_contact"`
	Status    CandidateStatus `json:"status" gorm:"not null;default:'not_attempted'"`
	Attempt   *Attempt        `json:"attempt,omitempty" gorm:"foreignKey:CandidateID"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

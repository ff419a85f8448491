package dto

import "time"

type CreateSectionRequest struct {
	Name         string `json:"name" binding:"required,max=120"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"display_order" binding:"required,min=1"`
}

type SectionResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateQuestionRequest struct {
	SectionID        uint   `json:"section_id" binding:"required"`
	QuestionText     string `json:"question_text" binding:"required"`
	OptionA          string `json:"option_a" binding:"required"`
	OptionB          string `json:"option_b" binding:"required"`
	OptionC          string `json:"option_c" binding:"required"`
	OptionD          string `json:"option_d" binding:"required"`
	CorrectAnswer    string `json:"correct_answer" binding:"required,oneof=A B C D"`
	TimeLimitSeconds int    `json:"time_limit_seconds" binding:"required,min=5,max=600"`
}

// QuestionAdminResponse is the management view of a question; unlike the
// public DTO it includes the answer key, and is only ever served behind the
// admin gate.
type QuestionAdminResponse struct {
	ID               uint      `json:"id"`
	SectionID        uint      `json:"section_id"`
	QuestionText     string    `json:"question_text"`
	OptionA          string    `json:"option_a"`
	OptionB          string    `json:"option_b"`
	OptionC          string    `json:"option_c"`
	OptionD          string    `json:"option_d"`
	CorrectAnswer    string    `json:"correct_answer"`
	TimeLimitSeconds int       `json:"time_limit_seconds"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreateCandidateRequest struct {
	FullName string `json:"full_name" binding:"required,max=120"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Phone    string `json:"phone" binding:"required,numeric,min=7,max=15"`
}

type CandidateResponse struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AttemptReviewDTO is the admin review listing row.
type AttemptReviewDTO struct {
	ID               uint       `json:"id"`
	CandidateID      uint       `json:"candidate_id"`
	CandidateName    string     `json:"candidate_name"`
	CandidateEmail   string     `json:"candidate_email"`
	StartedAt        time.Time  `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	TotalQuestions   int        `json:"total_questions"`
	CorrectAnswers   int        `json:"correct_answers"`
	IncorrectAnswers int        `json:"incorrect_answers"`
	TotalScore       int        `json:"total_score"`
}

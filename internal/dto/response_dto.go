package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type VerifyCandidateResponse struct {
	Found       bool   `json:"found"`
	CandidateID uint   `json:"candidate_id"`
	FullName    string `json:"full_name"`
	Status      string `json:"status"`
}

// AttemptDTO is the attempt record returned on creation and completion. It
// never embeds question content.
type AttemptDTO struct {
	ID               uint       `json:"id"`
	CandidateID      uint       `json:"candidate_id"`
	StartedAt        time.Time  `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	TotalQuestions   int        `json:"total_questions"`
	CorrectAnswers   int        `json:"correct_answers"`
	IncorrectAnswers int        `json:"incorrect_answers"`
	TotalScore       int        `json:"total_score"`
}

type RecordResponseResponse struct {
	Recorded  bool `json:"recorded"`
	IsCorrect bool `json:"is_correct"`
}

// QuestionPublicDTO is the pre-completion view of a question: the answer key
// is deliberately absent and must stay absent.
type QuestionPublicDTO struct {
	ID               uint   `json:"id"`
	SectionID        uint   `json:"section_id"`
	SectionName      string `json:"section_name"`
	QuestionText     string `json:"question_text"`
	OptionA          string `json:"option_a"`
	OptionB          string `json:"option_b"`
	OptionC          string `json:"option_c"`
	OptionD          string `json:"option_d"`
	TimeLimitSeconds int    `json:"time_limit_seconds"`
}

type SectionSummaryDTO struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	DisplayOrder  int    `json:"display_order"`
	QuestionCount int    `json:"question_count"`
}

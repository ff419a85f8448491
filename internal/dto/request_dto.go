package dto

// VerifyCandidateRequest carries the roster match key. Name and email match
// case-insensitively, phone exactly.
type VerifyCandidateRequest struct {
	FullName string `json:"full_name" binding:"required,max=120"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Phone    string `json:"phone" binding:"required,numeric,min=7,max=15"`
}

// StartAttemptRequest opens the candidate's single attempt. TotalQuestions is
// the count the client was shown; the server fixes the authoritative value
// from the question bank and only logs a mismatch.
type StartAttemptRequest struct {
	CandidateID    uint `json:"candidate_id" binding:"required"`
	TotalQuestions int  `json:"total_questions" binding:"omitempty,min=0"`
}

// RecordResponseRequest records one answer. SelectedAnswer is omitted when
// the per-question timer expired before a choice was made.
type RecordResponseRequest struct {
	QuestionID       uint    `json:"question_id" binding:"required"`
	SelectedAnswer   *string `json:"selected_answer" binding:"omitempty,oneof=A B C D"`
	TimeTakenSeconds int     `json:"time_taken_seconds" binding:"min=0"`
}

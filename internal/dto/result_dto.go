package dto

// ResultDetailDTO is the post-completion review row for one answered
// question. This is the only payload in the system that carries
// CorrectAnswer.
type ResultDetailDTO struct {
	QuestionID       uint    `json:"question_id"`
	SectionID        uint    `json:"section_id"`
	SectionName      string  `json:"section_name"`
	QuestionText     string  `json:"question_text"`
	OptionA          string  `json:"option_a"`
	OptionB          string  `json:"option_b"`
	OptionC          string  `json:"option_c"`
	OptionD          string  `json:"option_d"`
	CorrectAnswer    string  `json:"correct_answer"`
	SelectedAnswer   *string `json:"selected_answer,omitempty"`
	IsCorrect        bool    `json:"is_correct"`
	TimeTakenSeconds int     `json:"time_taken_seconds"`
}

type SectionScoreDTO struct {
	SectionID      uint   `json:"section_id"`
	SectionName    string `json:"section_name"`
	TotalQuestions int    `json:"total_questions"`
	CorrectAnswers int    `json:"correct_answers"`
}

type ResultsResponse struct {
	Attempt           AttemptDTO        `json:"attempt"`
	DetailedQuestions []ResultDetailDTO `json:"detailed_questions"`
	SectionScores     []SectionScoreDTO `json:"section_scores"`
}

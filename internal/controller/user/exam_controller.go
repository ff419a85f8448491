package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Admitra/internal/controller"
	"github.com/lshigami/Admitra/internal/dto"
	"github.com/lshigami/Admitra/internal/service"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	candidateService service.CandidateService
	attemptService   service.AttemptService
	resultService    service.ResultService
	examService      service.ExamService
}

func NewExamController(
	candidateService service.CandidateService,
	attemptService service.AttemptService,
	resultService service.ResultService,
	examService service.ExamService,
) *ExamController {
	return &ExamController{
		candidateService: candidateService,
		attemptService:   attemptService,
		resultService:    resultService,
		examService:      examService,
	}
}

// VerifyCandidate godoc
// @Summary Verify a candidate against the roster
// @Description Match full name (case-insensitive), email (case-insensitive) and phone (exact) against pre-registered candidates. Failures never disclose which field mismatched.
// @Tags candidates
// @Accept json
// @Produce json
// @Param candidate body dto.VerifyCandidateRequest true "Identity to verify"
// @Success 200 {object} dto.VerifyCandidateResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed input"
// @Failure 404 {object} dto.ErrorResponse "No matching candidate"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Router /candidates/verify [post]
func (ctrl *ExamController) VerifyCandidate(c *gin.Context) {
	var req dto.VerifyCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind VerifyCandidateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.candidateService.Verify(req.FullName, req.Email, req.Phone)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StartAttempt godoc
// @Summary Start the candidate's single test attempt
// @Description Creates the one attempt a candidate is ever allowed. A second call for the same candidate fails with 409, including under concurrency.
// @Tags attempts
// @Accept json
// @Produce json
// @Param attempt body dto.StartAttemptRequest true "Candidate starting the test"
// @Success 201 {object} dto.AttemptDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed input"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Failure 409 {object} dto.ErrorResponse "Candidate has already attempted"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Router /attempts [post]
func (ctrl *ExamController) StartAttempt(c *gin.Context) {
	var req dto.StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind StartAttemptRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	attempt, err := ctrl.attemptService.CreateAttempt(req.CandidateID, req.TotalQuestions)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attempt)
}

// RecordResponse godoc
// @Summary Record an answer for one question
// @Description Grades the submitted letter server-side and returns only the correctness flag. Omit selected_answer when the question timed out.
// @Tags attempts
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param response body dto.RecordResponseRequest true "Answer to record"
// @Success 201 {object} dto.RecordResponseResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed input"
// @Failure 404 {object} dto.ErrorResponse "Attempt or question not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt completed or question already answered"
// @Router /attempts/{attempt_id}/responses [post]
func (ctrl *ExamController) RecordResponse(c *gin.Context) {
	attemptID, ok := controller.ParseIDParam(c, "attempt_id")
	if !ok {
		return
	}

	var req dto.RecordResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind RecordResponseRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.attemptService.RecordResponse(attemptID, req.QuestionID, req.SelectedAnswer, req.TimeTakenSeconds)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// CompleteAttempt godoc
// @Summary Finalize an attempt and compute the score
// @Description Re-derives correct/incorrect counts from the stored responses and stamps completion. A repeated call fails with 409.
// @Tags attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already completed"
// @Router /attempts/{attempt_id}/complete [post]
func (ctrl *ExamController) CompleteAttempt(c *gin.Context) {
	attemptID, ok := controller.ParseIDParam(c, "attempt_id")
	if !ok {
		return
	}

	attempt, err := ctrl.attemptService.CompleteAttempt(attemptID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attempt)
}

// GetResults godoc
// @Summary Detailed review of a completed attempt
// @Description Per-question review including the correct answer (revealed only here, post-completion) plus per-section aggregates in display order.
// @Tags attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.ResultsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt not yet completed"
// @Router /attempts/{attempt_id}/results [get]
func (ctrl *ExamController) GetResults(c *gin.Context) {
	attemptID, ok := controller.ParseIDParam(c, "attempt_id")
	if !ok {
		return
	}

	results, err := ctrl.resultService.GetResults(attemptID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// ListQuestions godoc
// @Summary List the test questions in canonical order
// @Description Ordered question sequence grouped by section. Correct answers are never included in this payload.
// @Tags questions
// @Produce json
// @Success 200 {array} dto.QuestionPublicDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [get]
func (ctrl *ExamController) ListQuestions(c *gin.Context) {
	questions, err := ctrl.examService.ListQuestions()
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// ListSections godoc
// @Summary List test sections in display order
// @Tags sections
// @Produce json
// @Success 200 {array} dto.SectionSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sections [get]
func (ctrl *ExamController) ListSections(c *gin.Context) {
	sections, err := ctrl.examService.ListSections()
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

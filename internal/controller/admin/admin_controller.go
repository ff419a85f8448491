package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Admitra/internal/controller"
	"github.com/lshigami/Admitra/internal/dto"
	"github.com/lshigami/Admitra/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	sectionService   service.AdminSectionService
	questionService  service.AdminQuestionService
	candidateService service.AdminCandidateService
}

func NewAdminController(
	sectionService service.AdminSectionService,
	questionService service.AdminQuestionService,
	candidateService service.AdminCandidateService,
) *AdminController {
	return &AdminController{
		sectionService:   sectionService,
		questionService:  questionService,
		candidateService: candidateService,
	}
}

// CreateSection godoc
// @Summary (Admin) Create a section
// @Tags admin
// @Accept json
// @Produce json
// @Param section body dto.CreateSectionRequest true "Section data"
// @Success 201 {object} dto.SectionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Section name already exists"
// @Router /admin/sections [post]
func (ctrl *AdminController) CreateSection(c *gin.Context) {
	var req dto.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateSectionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.sectionService.CreateSection(req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateSection godoc
// @Summary (Admin) Update a section
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Section ID"
// @Param section body dto.CreateSectionRequest true "Section data"
// @Success 200 {object} dto.SectionResponse
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /admin/sections/{id} [put]
func (ctrl *AdminController) UpdateSection(c *gin.Context) {
	id, ok := controller.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.sectionService.UpdateSection(id, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteSection godoc
// @Summary (Admin) Delete a section with its questions and responses
// @Tags admin
// @Param id path int true "Section ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /admin/sections/{id} [delete]
func (ctrl *AdminController) DeleteSection(c *gin.Context) {
	id, ok := controller.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.sectionService.DeleteSection(id); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Tags admin
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data including the answer key"
// @Success 201 {object} dto.QuestionAdminResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /admin/questions [post]
func (ctrl *AdminController) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.questionService.CreateQuestion(req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListQuestions godoc
// @Summary (Admin) List all questions with answer keys
// @Tags admin
// @Produce json
// @Success 200 {array} dto.QuestionAdminResponse
// @Router /admin/questions [get]
func (ctrl *AdminController) ListQuestions(c *gin.Context) {
	resp, err := ctrl.questionService.ListQuestions()
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 200 {object} dto.QuestionAdminResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [put]
func (ctrl *AdminController) UpdateQuestion(c *gin.Context) {
	id, ok := controller.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.questionService.UpdateQuestion(id, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question and its recorded responses
// @Tags admin
// @Param id path int true "Question ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [delete]
func (ctrl *AdminController) DeleteQuestion(c *gin.Context) {
	id, ok := controller.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.questionService.DeleteQuestion(id); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateCandidate godoc
// @Summary (Admin) Register a candidate
// @Tags admin
// @Accept json
// @Produce json
// @Param candidate body dto.CreateCandidateRequest true "Candidate data"
// @Success 201 {object} dto.CandidateResponse
// @Failure 409 {object} dto.ErrorResponse "Candidate already registered"
// @Router /admin/candidates [post]
func (ctrl *AdminController) CreateCandidate(c *gin.Context) {
	var req dto.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateCandidateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.candidateService.CreateCandidate(req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListCandidates godoc
// @Summary (Admin) List registered candidates
// @Tags admin
// @Produce json
// @Success 200 {array} dto.CandidateResponse
// @Router /admin/candidates [get]
func (ctrl *AdminController) ListCandidates(c *gin.Context) {
	resp, err := ctrl.candidateService.ListCandidates()
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteCandidate godoc
// @Summary (Admin) Delete a candidate with their attempt and responses
// @Tags admin
// @Param id path int true "Candidate ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Candidate not found"
// @Router /admin/candidates/{id} [delete]
func (ctrl *AdminController) DeleteCandidate(c *gin.Context) {
	id, ok := controller.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.candidateService.DeleteCandidate(id); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAttempts godoc
// @Summary (Admin) Review completed attempts
// @Tags admin
// @Produce json
// @Success 200 {array} dto.AttemptReviewDTO
// @Router /admin/attempts [get]
func (ctrl *AdminController) ListAttempts(c *gin.Context) {
	resp, err := ctrl.candidateService.ListCompletedAttempts()
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

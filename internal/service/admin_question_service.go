package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Admitra/internal/apperr"
	"github.com/lshigami/Admitra/internal/dto"
	"github.com/lshigami/Admitra/internal/model"
	"github.com/lshigami/Admitra/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AdminQuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionAdminResponse, error)
	UpdateQuestion(id uint, req dto.CreateQuestionRequest) (*dto.QuestionAdminResponse, error)
	DeleteQuestion(id uint) error
	ListQuestions() ([]dto.QuestionAdminResponse, error)
}

type adminQuestionService struct {
	sectionRepo  repository.SectionRepository
	questionRepo repository.QuestionRepository
	responseRepo repository.ResponseRepository
	db           *gorm.DB
}

func NewAdminQuestionService(
	sectionRepo repository.SectionRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
	db *gorm.DB,
) AdminQuestionService {
	return &adminQuestionService{
		sectionRepo:  sectionRepo,
		questionRepo: questionRepo,
		responseRepo: responseRepo,
		db:           db,
	}
}

func (s *adminQuestionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionAdminResponse, error) {
	if !model.IsAnswerLetter(req.CorrectAnswer) {
		return nil, apperr.NewValidation("correct_answer must be one of A, B, C, D")
	}
	if _, err := s.sectionRepo.FindByID(req.SectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("section not found")
		}
		log.Error().Err(err).Uint("sectionID", req.SectionID).Msg("CreateQuestion: section lookup failed")
		return nil, apperr.NewInternal("failed to create question")
	}

	question := model.Question{
		SectionID:        req.SectionID,
		QuestionText:     req.QuestionText,
		OptionA:          req.OptionA,
		OptionB:          req.OptionB,
		OptionC:          req.OptionC,
		OptionD:          req.OptionD,
		CorrectAnswer:    req.CorrectAnswer,
		TimeLimitSeconds: req.TimeLimitSeconds,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("CreateQuestion: insert failed")
		return nil, apperr.NewInternal("failed to create question")
	}

	return questionAdminDTO(&question), nil
}

func (s *adminQuestionService) UpdateQuestion(id uint, req dto.CreateQuestionRequest) (*dto.QuestionAdminResponse, error) {
	if !model.IsAnswerLetter(req.CorrectAnswer) {
		return nil, apperr.NewValidation("correct_answer must be one of A, B, C, D")
	}
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("question not found")
		}
		log.Error().Err(err).Uint("id", id).Msg("UpdateQuestion: lookup failed")
		return nil, apperr.NewInternal("failed to update question")
	}

	question.SectionID = req.SectionID
	question.QuestionText = req.QuestionText
	question.OptionA = req.OptionA
	question.OptionB = req.OptionB
	question.OptionC = req.OptionC
	question.OptionD = req.OptionD
	question.CorrectAnswer = req.CorrectAnswer
	question.TimeLimitSeconds = req.TimeLimitSeconds
	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("id", id).Msg("UpdateQuestion: save failed")
		return nil, apperr.NewInternal("failed to update question")
	}

	return questionAdminDTO(question), nil
}

// DeleteQuestion removes the question and any responses referencing it.
func (s *adminQuestionService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("question not found")
		}
		log.Error().Err(err).Uint("id", id).Msg("DeleteQuestion: lookup failed")
		return apperr.NewInternal("failed to delete question")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.responseRepo.WithTx(tx).DeleteByQuestionID(id); err != nil {
			return err
		}
		return s.questionRepo.WithTx(tx).Delete(id)
	})
	if err != nil {
		log.Error().Err(err).Uint("id", id).Msg("DeleteQuestion: transaction failed")
		return apperr.NewInternal("failed to delete question")
	}
	return nil
}

func (s *adminQuestionService) ListQuestions() ([]dto.QuestionAdminResponse, error) {
	questions, err := s.questionRepo.FindAllOrdered()
	if err != nil {
		log.Error().Err(err).Msg("ListQuestions: load failed")
		return nil, apperr.NewInternal("failed to load questions")
	}

	out := make([]dto.QuestionAdminResponse, 0, len(questions))
	for i := range questions {
		out = append(out, *questionAdminDTO(&questions[i]))
	}
	return out, nil
}

// questionAdminDTO maps explicitly because CorrectAnswer is excluded from the
// model's JSON tags and copier honors field names, not tags, so keeping the
// mapping in one place makes the admin-only exposure easy to audit.
func questionAdminDTO(q *model.Question) *dto.QuestionAdminResponse {
	var resp dto.QuestionAdminResponse
	copier.Copy(&resp, q)
	resp.CorrectAnswer = q.CorrectAnswer
	return &resp
}

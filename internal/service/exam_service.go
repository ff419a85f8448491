package service

import (
	"github.com/lshigami/Admitra/internal/apperr"
	"github.com/lshigami/Admitra/internal/dto"
	"github.com/lshigami/Admitra/internal/repository"
	"github.com/rs/zerolog/log"
)

// ExamService is the public, pre-completion view of the test content.
type ExamService interface {
	ListQuestions() ([]dto.QuestionPublicDTO, error)
	ListSections() ([]dto.SectionSummaryDTO, error)
}

type examService struct {
	questionRepo repository.QuestionRepository
	sectionRepo  repository.SectionRepository
}

func NewExamService(questionRepo repository.QuestionRepository, sectionRepo repository.SectionRepository) ExamService {
	return &examService{questionRepo: questionRepo, sectionRepo: sectionRepo}
}

// ListQuestions returns the canonical ordered question sequence. The DTO is
// built field by field on purpose: the answer key must never ride along.
func (s *examService) ListQuestions() ([]dto.QuestionPublicDTO, error) {
	questions, err := s.questionRepo.FindAllOrdered()
	if err != nil {
		log.Error().Err(err).Msg("ListQuestions: failed to load questions")
		return nil, apperr.NewInternal("failed to load questions")
	}

	out := make([]dto.QuestionPublicDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.QuestionPublicDTO{
			ID:               q.ID,
			SectionID:        q.SectionID,
			SectionName:      q.Section.Name,
			QuestionText:     q.QuestionText,
			OptionA:          q.OptionA,
			OptionB:          q.OptionB,
			OptionC:          q.OptionC,
			OptionD:          q.OptionD,
			TimeLimitSeconds: q.TimeLimitSeconds,
		})
	}
	return out, nil
}

func (s *examService) ListSections() ([]dto.SectionSummaryDTO, error) {
	sections, err := s.sectionRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("ListSections: failed to load sections")
		return nil, apperr.NewInternal("failed to load sections")
	}

	out := make([]dto.SectionSummaryDTO, 0, len(sections))
	for _, sec := range sections {
		out = append(out, dto.SectionSummaryDTO{
			ID:            sec.ID,
			Name:          sec.Name,
			Description:   sec.Description,
			DisplayOrder:  sec.DisplayOrder,
			QuestionCount: sec.QuestionCount,
		})
	}
	return out, nil
}

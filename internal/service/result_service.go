package service

import (
	"errors"
	"sort"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Admitra/internal/apperr"
	"github.com/lshigami/Admitra/internal/dto"
	"github.com/lshigami/Admitra/internal/model"
	"github.com/lshigami/Admitra/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ResultService assembles the post-completion review. This is the only
// surface that reveals correct answers, and only for completed attempts.
type ResultService interface {
	GetResults(attemptID uint) (*dto.ResultsResponse, error)
}

type resultService struct {
	attemptRepo repository.AttemptRepository
	sectionRepo repository.SectionRepository
}

func NewResultService(attemptRepo repository.AttemptRepository, sectionRepo repository.SectionRepository) ResultService {
	return &resultService{attemptRepo: attemptRepo, sectionRepo: sectionRepo}
}

func (s *resultService) GetResults(attemptID uint) (*dto.ResultsResponse, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("attempt not found")
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetResults: failed to load attempt")
		return nil, apperr.NewInternal("failed to load results")
	}
	if !attempt.Completed() {
		return nil, apperr.NewConflict("results not ready: attempt is not completed")
	}

	sections, err := s.sectionRepo.FindAllOrdered()
	if err != nil {
		log.Error().Err(err).Msg("GetResults: failed to load sections")
		return nil, apperr.NewInternal("failed to load results")
	}

	// Canonical position of each section; unknown sections sort last.
	orderIndex := make(map[uint]int, len(sections))
	sectionByID := make(map[uint]model.Section, len(sections))
	for i, sec := range sections {
		orderIndex[sec.ID] = i
		sectionByID[sec.ID] = sec
	}
	rankOf := func(sectionID uint) int {
		if idx, ok := orderIndex[sectionID]; ok {
			return idx
		}
		return len(sections)
	}

	responses := make([]model.Response, len(attempt.Responses))
	copy(responses, attempt.Responses)
	sort.SliceStable(responses, func(i, j int) bool {
		ri, rj := rankOf(responses[i].Question.SectionID), rankOf(responses[j].Question.SectionID)
		if ri != rj {
			return ri < rj
		}
		return responses[i].QuestionID < responses[j].QuestionID
	})

	details := make([]dto.ResultDetailDTO, 0, len(responses))
	type sectionTally struct {
		total   int
		correct int
	}
	tallies := make(map[uint]*sectionTally)
	for _, resp := range responses {
		q := resp.Question
		sectionName := ""
		if sec, ok := sectionByID[q.SectionID]; ok {
			sectionName = sec.Name
		}
		details = append(details, dto.ResultDetailDTO{
			QuestionID:       q.ID,
			SectionID:        q.SectionID,
			SectionName:      sectionName,
			QuestionText:     q.QuestionText,
			OptionA:          q.OptionA,
			OptionB:          q.OptionB,
			OptionC:          q.OptionC,
			OptionD:          q.OptionD,
			CorrectAnswer:    q.CorrectAnswer,
			SelectedAnswer:   resp.SelectedAnswer,
			IsCorrect:        resp.IsCorrect,
			TimeTakenSeconds: resp.TimeTakenSeconds,
		})

		tally, ok := tallies[q.SectionID]
		if !ok {
			tally = &sectionTally{}
			tallies[q.SectionID] = tally
		}
		tally.total++
		if resp.IsCorrect {
			tally.correct++
		}
	}

	sectionScores := make([]dto.SectionScoreDTO, 0, len(tallies))
	for _, sec := range sections {
		tally, ok := tallies[sec.ID]
		if !ok {
			continue
		}
		sectionScores = append(sectionScores, dto.SectionScoreDTO{
			SectionID:      sec.ID,
			SectionName:    sec.Name,
			TotalQuestions: tally.total,
			CorrectAnswers: tally.correct,
		})
	}

	var attemptDTO dto.AttemptDTO
	if err := copier.Copy(&attemptDTO, attempt); err != nil {
		log.Error().Err(err).Msg("GetResults: failed to copy attempt to DTO")
		return nil, apperr.NewInternal("failed to prepare results")
	}

	return &dto.ResultsResponse{
		Attempt:           attemptDTO,
		DetailedQuestions: details,
		SectionScores:     sectionScores,
	}, nil
}

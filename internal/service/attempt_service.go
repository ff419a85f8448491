package service

import (
	"errors"
	"math"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Admitra/internal/apperr"
	"github.com/lshigami/Admitra/internal/dto"
	"github.com/lshigami/Admitra/internal/model"
	"github.com/lshigami/Admitra/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService is the attempt lifecycle engine: it creates the one attempt
// a candidate is ever allowed, grades responses against the stored answer key
// and finalizes the attempt with server-derived counts.
type AttemptService interface {
	CreateAttempt(candidateID uint, requestedTotal int) (*dto.AttemptDTO, error)
	RecordResponse(attemptID, questionID uint, selectedAnswer *string, timeTakenSeconds int) (*dto.RecordResponseResponse, error)
	CompleteAttempt(attemptID uint) (*dto.AttemptDTO, error)
}

type attemptService struct {
	candidateRepo repository.CandidateRepository
	questionRepo  repository.QuestionRepository
	attemptRepo   repository.AttemptRepository
	responseRepo  repository.ResponseRepository
	db            *gorm.DB
}

func NewAttemptService(
	candidateRepo repository.CandidateRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	responseRepo repository.ResponseRepository,
	db *gorm.DB,
) AttemptService {
	return &attemptService{
		candidateRepo: candidateRepo,
		questionRepo:  questionRepo,
		attemptRepo:   attemptRepo,
		responseRepo:  responseRepo,
		db:            db,
	}
}

// CreateAttempt opens the candidate's single attempt. The status flip and the
// attempt insert run in one transaction; the conditional update on candidate
// status is the critical section that makes two concurrent calls resolve to
// exactly one winner. The loser observes zero affected rows and gets Conflict.
func (s *attemptService) CreateAttempt(candidateID uint, requestedTotal int) (*dto.AttemptDTO, error) {
	total, err := s.questionRepo.Count()
	if err != nil {
		log.Error().Err(err).Msg("CreateAttempt: failed to count questions")
		return nil, apperr.NewInternal("failed to start attempt")
	}
	if requestedTotal != 0 && requestedTotal != int(total) {
		log.Warn().
			Uint("candidateID", candidateID).
			Int("requested", requestedTotal).
			Int64("authoritative", total).
			Msg("CreateAttempt: client question count disagrees with question bank, using authoritative count")
	}

	var attempt model.Attempt
	err = s.db.Transaction(func(tx *gorm.DB) error {
		flipped, err := s.candidateRepo.WithTx(tx).MarkAttempted(candidateID)
		if err != nil {
			return err
		}
		if !flipped {
			if _, err := s.candidateRepo.WithTx(tx).FindByID(candidateID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NewNotFound("candidate not found")
				}
				return err
			}
			return apperr.NewConflict("candidate has already attempted the test")
		}

		attempt = model.Attempt{
			CandidateID:    candidateID,
			StartedAt:      time.Now(),
			TotalQuestions: int(total),
		}
		if err := s.attemptRepo.WithTx(tx).Create(&attempt); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Status flip raced an existing attempt row; the unique
				// index on candidate_id holds the line.
				return apperr.NewConflict("candidate has already attempted the test")
			}
			return err
		}
		return nil
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		log.Error().Err(err).Uint("candidateID", candidateID).Msg("CreateAttempt: transaction failed")
		return nil, apperr.NewInternal("failed to start attempt")
	}

	log.Info().Uint("attemptID", attempt.ID).Uint("candidateID", candidateID).Int64("totalQuestions", total).Msg("Attempt created")

	var resp dto.AttemptDTO
	if err := copier.Copy(&resp, &attempt); err != nil {
		log.Error().Err(err).Msg("CreateAttempt: failed to copy attempt to DTO")
		return nil, apperr.NewInternal("failed to prepare response")
	}
	return &resp, nil
}

// RecordResponse grades one submitted answer server-side and persists it.
// Only the correctness boolean is returned; the answer key itself never
// leaves this method.
func (s *attemptService) RecordResponse(attemptID, questionID uint, selectedAnswer *string, timeTakenSeconds int) (*dto.RecordResponseResponse, error) {
	if selectedAnswer != nil && !model.IsAnswerLetter(*selectedAnswer) {
		return nil, apperr.NewValidation("selected_answer must be one of A, B, C, D or omitted")
	}
	if timeTakenSeconds < 0 {
		return nil, apperr.NewValidation("time_taken_seconds must not be negative")
	}

	var isCorrect bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		attempt, err := s.attemptRepo.WithTx(tx).FindByID(attemptID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NewNotFound("attempt not found")
			}
			return err
		}
		if attempt.Completed() {
			return apperr.NewConflict("attempt already completed")
		}

		question, err := s.questionRepo.WithTx(tx).FindByID(questionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NewNotFound("question not found")
			}
			return err
		}

		exists, err := s.responseRepo.WithTx(tx).ExistsForQuestion(attemptID, questionID)
		if err != nil {
			return err
		}
		if exists {
			return apperr.NewConflict("response already recorded for this question")
		}

		isCorrect = selectedAnswer != nil && *selectedAnswer == question.CorrectAnswer

		response := model.Response{
			AttemptID:        attemptID,
			QuestionID:       questionID,
			SelectedAnswer:   selectedAnswer,
			IsCorrect:        isCorrect,
			TimeTakenSeconds: timeTakenSeconds,
		}
		if err := s.responseRepo.WithTx(tx).Create(&response); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.NewConflict("response already recorded for this question")
			}
			return err
		}
		return nil
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Uint("questionID", questionID).Msg("RecordResponse: transaction failed")
		return nil, apperr.NewInternal("failed to record response")
	}

	return &dto.RecordResponseResponse{Recorded: true, IsCorrect: isCorrect}, nil
}

// CompleteAttempt finalizes the attempt. Counts are re-derived from the
// stored responses inside the transaction, so the computation is naturally
// idempotent; the completed_at guard then rejects any second finalization.
func (s *attemptService) CompleteAttempt(attemptID uint) (*dto.AttemptDTO, error) {
	var finalized *model.Attempt
	err := s.db.Transaction(func(tx *gorm.DB) error {
		attempt, err := s.attemptRepo.WithTx(tx).FindByID(attemptID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NewNotFound("attempt not found")
			}
			return err
		}
		if attempt.Completed() {
			return apperr.NewConflict("attempt already completed")
		}

		answered, correct, err := s.responseRepo.WithTx(tx).CountByAttemptID(attemptID)
		if err != nil {
			return err
		}
		incorrect := int(answered - correct)
		score := scorePercent(int(correct), attempt.TotalQuestions)

		ok, err := s.attemptRepo.WithTx(tx).MarkCompleted(attemptID, int(correct), incorrect, score, time.Now())
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NewConflict("attempt already completed")
		}

		// Redundant safety net; the flip happened at creation.
		if err := s.candidateRepo.WithTx(tx).EnsureAttempted(attempt.CandidateID); err != nil {
			return err
		}

		finalized, err = s.attemptRepo.WithTx(tx).FindByID(attemptID)
		return err
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return nil, err
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("CompleteAttempt: transaction failed")
		return nil, apperr.NewInternal("failed to complete attempt")
	}

	log.Info().
		Uint("attemptID", finalized.ID).
		Int("correct", finalized.CorrectAnswers).
		Int("incorrect", finalized.IncorrectAnswers).
		Int("score", finalized.TotalScore).
		Msg("Attempt completed")

	var resp dto.AttemptDTO
	if err := copier.Copy(&resp, finalized); err != nil {
		log.Error().Err(err).Msg("CompleteAttempt: failed to copy attempt to DTO")
		return nil, apperr.NewInternal("failed to prepare response")
	}
	return &resp, nil
}

// scorePercent computes the integer percentage score. Rounding is half away
// from zero, which for these non-negative ratios is half-up: 5 of 8 gives
// 62.5 and rounds to 63. A zero-question test scores 0.
func scorePercent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

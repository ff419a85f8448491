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

type AdminCandidateService interface {
	CreateCandidate(req dto.CreateCandidateRequest) (*dto.CandidateResponse, error)
	ListCandidates() ([]dto.CandidateResponse, error)
	DeleteCandidate(id uint) error
	ListCompletedAttempts() ([]dto.AttemptReviewDTO, error)
}

type adminCandidateService struct {
	candidateRepo repository.CandidateRepository
	attemptRepo   repository.AttemptRepository
	responseRepo  repository.ResponseRepository
	db            *gorm.DB
}

func NewAdminCandidateService(
	candidateRepo repository.CandidateRepository,
	attemptRepo repository.AttemptRepository,
	responseRepo repository.ResponseRepository,
	db *gorm.DB,
) AdminCandidateService {
	return &adminCandidateService{
		candidateRepo: candidateRepo,
		attemptRepo:   attemptRepo,
		responseRepo:  responseRepo,
		db:            db,
	}
}

func (s *adminCandidateService) CreateCandidate(req dto.CreateCandidateRequest) (*dto.CandidateResponse, error) {
	candidate := model.Candidate{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Status:   model.CandidateNotAttempted,
	}
	if err := s.candidateRepo.Create(&candidate); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("a candidate with this email and phone already exists")
		}
		log.Error().Err(err).Msg("CreateCandidate: insert failed")
		return nil, apperr.NewInternal("failed to create candidate")
	}

	var resp dto.CandidateResponse
	copier.Copy(&resp, &candidate)
	resp.Status = string(candidate.Status)
	return &resp, nil
}

func (s *adminCandidateService) ListCandidates() ([]dto.CandidateResponse, error) {
	candidates, err := s.candidateRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListCandidates: load failed")
		return nil, apperr.NewInternal("failed to load candidates")
	}

	out := make([]dto.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		var resp dto.CandidateResponse
		copier.Copy(&resp, &c)
		resp.Status = string(c.Status)
		out = append(out, resp)
	}
	return out, nil
}

// DeleteCandidate removes the candidate and cascades the attempt and its
// responses in one transaction.
func (s *adminCandidateService) DeleteCandidate(id uint) error {
	if _, err := s.candidateRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("candidate not found")
		}
		log.Error().Err(err).Uint("id", id).Msg("DeleteCandidate: lookup failed")
		return apperr.NewInternal("failed to delete candidate")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		attempt, err := s.attemptRepo.WithTx(tx).FindByCandidateID(id)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if attempt != nil {
			if err := s.responseRepo.WithTx(tx).DeleteByAttemptID(attempt.ID); err != nil {
				return err
			}
			if err := s.attemptRepo.WithTx(tx).Delete(attempt.ID); err != nil {
				return err
			}
		}
		return s.candidateRepo.WithTx(tx).Delete(id)
	})
	if err != nil {
		log.Error().Err(err).Uint("id", id).Msg("DeleteCandidate: transaction failed")
		return apperr.NewInternal("failed to delete candidate")
	}
	return nil
}

func (s *adminCandidateService) ListCompletedAttempts() ([]dto.AttemptReviewDTO, error) {
	attempts, err := s.attemptRepo.FindAllCompleted()
	if err != nil {
		log.Error().Err(err).Msg("ListCompletedAttempts: load failed")
		return nil, apperr.NewInternal("failed to load attempts")
	}

	out := make([]dto.AttemptReviewDTO, 0, len(attempts))
	for _, a := range attempts {
		var row dto.AttemptReviewDTO
		copier.Copy(&row, &a)
		row.CandidateName = a.Candidate.FullName
		row.CandidateEmail = a.Candidate.Email
		out = append(out, row)
	}
	return out, nil
}

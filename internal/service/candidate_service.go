package service

import (
	"errors"
	"strings"

	"github.com/lshigami/Admitra/internal/apperr"
	"github.com/lshigami/Admitra/internal/dto"
	"github.com/lshigami/Admitra/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CandidateService verifies test takers against the pre-registered roster.
type CandidateService interface {
	Verify(fullName, email, phone string) (*dto.VerifyCandidateResponse, error)
}

type candidateService struct {
	candidateRepo repository.CandidateRepository
}

func NewCandidateService(candidateRepo repository.CandidateRepository) CandidateService {
	return &candidateService{candidateRepo: candidateRepo}
}

// Verify matches name and email case-insensitively and phone exactly. A miss
// on any field yields the same uniform failure; callers never learn which
// field was wrong.
func (s *candidateService) Verify(fullName, email, phone string) (*dto.VerifyCandidateResponse, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if fullName == "" || email == "" || phone == "" {
		return nil, apperr.NewValidation("full_name, email and phone are required")
	}

	candidate, err := s.candidateRepo.FindByIdentity(fullName, email, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("no matching candidate found")
		}
		log.Error().Err(err).Msg("Verify: roster lookup failed")
		return nil, apperr.NewInternal("verification failed")
	}

	return &dto.VerifyCandidateResponse{
		Found:       true,
		CandidateID: candidate.ID,
		FullName:    candidate.FullName,
		Status:      string(candidate.Status),
	}, nil
}

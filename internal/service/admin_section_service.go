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

type AdminSectionService interface {
	CreateSection(req dto.CreateSectionRequest) (*dto.SectionResponse, error)
	UpdateSection(id uint, req dto.CreateSectionRequest) (*dto.SectionResponse, error)
	DeleteSection(id uint) error
}

type adminSectionService struct {
	sectionRepo  repository.SectionRepository
	questionRepo repository.QuestionRepository
	responseRepo repository.ResponseRepository
	db           *gorm.DB
}

func NewAdminSectionService(
	sectionRepo repository.SectionRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
	db *gorm.DB,
) AdminSectionService {
	return &adminSectionService{
		sectionRepo:  sectionRepo,
		questionRepo: questionRepo,
		responseRepo: responseRepo,
		db:           db,
	}
}

func (s *adminSectionService) CreateSection(req dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	section := model.Section{
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.sectionRepo.Create(&section); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("a section with this name already exists")
		}
		log.Error().Err(err).Msg("CreateSection: insert failed")
		return nil, apperr.NewInternal("failed to create section")
	}

	var resp dto.SectionResponse
	copier.Copy(&resp, &section)
	return &resp, nil
}

func (s *adminSectionService) UpdateSection(id uint, req dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	section, err := s.sectionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("section not found")
		}
		log.Error().Err(err).Uint("id", id).Msg("UpdateSection: lookup failed")
		return nil, apperr.NewInternal("failed to update section")
	}

	section.Name = req.Name
	section.Description = req.Description
	section.DisplayOrder = req.DisplayOrder
	if err := s.sectionRepo.Update(section); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("a section with this name already exists")
		}
		log.Error().Err(err).Uint("id", id).Msg("UpdateSection: save failed")
		return nil, apperr.NewInternal("failed to update section")
	}

	var resp dto.SectionResponse
	copier.Copy(&resp, section)
	return &resp, nil
}

// DeleteSection removes the section with its questions and any responses
// recorded against them, in one transaction.
func (s *adminSectionService) DeleteSection(id uint) error {
	if _, err := s.sectionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NewNotFound("section not found")
		}
		log.Error().Err(err).Uint("id", id).Msg("DeleteSection: lookup failed")
		return apperr.NewInternal("failed to delete section")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		questions, err := s.questionRepo.WithTx(tx).FindBySectionID(id)
		if err != nil {
			return err
		}
		for _, q := range questions {
			if err := s.responseRepo.WithTx(tx).DeleteByQuestionID(q.ID); err != nil {
				return err
			}
		}
		if err := tx.Where("section_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return s.sectionRepo.WithTx(tx).Delete(id)
	})
	if err != nil {
		log.Error().Err(err).Uint("id", id).Msg("DeleteSection: transaction failed")
		return apperr.NewInternal("failed to delete section")
	}
	return nil
}

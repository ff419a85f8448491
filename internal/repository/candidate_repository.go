package repository

import (
	"github.com/lshigami/Admitra/internal/model"
	"gorm.io/gorm"
)

type CandidateRepository interface {
	WithTx(tx *gorm.DB) CandidateRepository
	Create(candidate *model.Candidate) error
	FindByID(id uint) (*model.Candidate, error)
	FindByIdentity(fullName, email, phone string) (*model.Candidate, error)
	FindAll() ([]model.Candidate, error)
	MarkAttempted(id uint) (bool, error)
	EnsureAttempted(id uint) error
	Delete(id uint) error
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) WithTx(tx *gorm.DB) CandidateRepository {
	return &candidateRepository{db: tx}
}

func (r *candidateRepository) Create(candidate *model.Candidate) error {
	return r.db.Create(candidate).Error
}

func (r *candidateRepository) FindByID(id uint) (*model.Candidate, error) {
	var candidate model.Candidate
	if err := r.db.First(&candidate, id).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

// FindByIdentity matches case-insensitively on name and email and exactly on
// phone. Parameterized exact equality only: no wildcard-capable operator is
// used, so pattern characters in the input cannot broaden the match.
func (r *candidateRepository) FindByIdentity(fullName, email, phone string) (*model.Candidate, error) {
	var candidate model.Candidate
	err := r.db.
		Where("LOWER(full_name) = LOWER(?) AND LOWER(email) = LOWER(?) AND phone = ?", fullName, email, phone).
		First(&candidate).Error
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *candidateRepository) FindAll() ([]model.Candidate, error) {
	var candidates []model.Candidate
	if err := r.db.Order("created_at DESC").Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

// MarkAttempted flips not_attempted -> attempted as a single conditional
// update and reports whether this caller won the transition. Two concurrent
// calls for the same candidate cannot both observe true.
func (r *candidateRepository) MarkAttempted(id uint) (bool, error) {
	res := r.db.Model(&model.Candidate{}).
		Where("id = ? AND status = ?", id, model.CandidateNotAttempted).
		Update("status", model.CandidateAttempted)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// EnsureAttempted unconditionally asserts the attempted status. Used as the
// idempotent safety net during attempt completion.
func (r *candidateRepository) EnsureAttempted(id uint) error {
	return r.db.Model(&model.Candidate{}).
		Where("id = ?", id).
		Update("status", model.CandidateAttempted).Error
}

func (r *candidateRepository) Delete(id uint) error {
	return r.db.Delete(&model.Candidate{}, id).Error
}

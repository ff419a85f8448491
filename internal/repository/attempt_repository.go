package repository

import (
	"time"

	"github.com/lshigami/Admitra/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	WithTx(tx *gorm.DB) AttemptRepository
	Create(attempt *model.Attempt) error
	FindByID(id uint) (*model.Attempt, error)
	FindByIDWithDetails(id uint) (*model.Attempt, error)
	FindByCandidateID(candidateID uint) (*model.Attempt, error)
	FindAllCompleted() ([]model.Attempt, error)
	MarkCompleted(id uint, correct, incorrect, score int, completedAt time.Time) (bool, error)
	Delete(id uint) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) WithTx(tx *gorm.DB) AttemptRepository {
	return &attemptRepository{db: tx}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByIDWithDetails(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Preload("Candidate").
		Preload("Responses.Question").
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByCandidateID(candidateID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.Where("candidate_id = ?", candidateID).First(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllCompleted() ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.
		Preload("Candidate").
		Where("completed_at IS NOT NULL").
		Order("completed_at DESC").
		Find(&attempts).Error
	return attempts, err
}

// MarkCompleted finalizes an attempt guarded on completed_at still being
// null, and reports whether this caller performed the finalization. A second
// completion attempt observes zero affected rows.
func (r *attemptRepository) MarkCompleted(id uint, correct, incorrect, score int, completedAt time.Time) (bool, error) {
	res := r.db.Model(&model.Attempt{}).
		Where("id = ? AND completed_at IS NULL", id).
		Updates(map[string]interface{}{
			"correct_answers":   correct,
			"incorrect_answers": incorrect,
			"total_score":       score,
			"completed_at":      completedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *attemptRepository) Delete(id uint) error {
	return r.db.Delete(&model.Attempt{}, id).Error
}

package repository

import (
	"github.com/lshigami/Admitra/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	WithTx(tx *gorm.DB) ResponseRepository
	Create(response *model.Response) error
	FindByAttemptID(attemptID uint) ([]model.Response, error)
	ExistsForQuestion(attemptID, questionID uint) (bool, error)
	CountByAttemptID(attemptID uint) (total int64, correct int64, err error)
	DeleteByAttemptID(attemptID uint) error
	DeleteByQuestionID(questionID uint) error
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) WithTx(tx *gorm.DB) ResponseRepository {
	return &responseRepository{db: tx}
}

func (r *responseRepository) Create(response *model.Response) error {
	return r.db.Create(response).Error
}

func (r *responseRepository) FindByAttemptID(attemptID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.
		Preload("Question").
		Where("attempt_id = ?", attemptID).
		Order("id ASC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *responseRepository) ExistsForQuestion(attemptID, questionID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Response{}).
		Where("attempt_id = ? AND question_id = ?", attemptID, questionID).
		Count(&count).Error
	return count > 0, err
}

// CountByAttemptID aggregates the recorded responses for scoring. Counts are
// always re-derived from stored rows, never carried over from the client.
func (r *responseRepository) CountByAttemptID(attemptID uint) (int64, int64, error) {
	var total int64
	if err := r.db.Model(&model.Response{}).Where("attempt_id = ?", attemptID).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	var correct int64
	if err := r.db.Model(&model.Response{}).Where("attempt_id = ? AND is_correct = ?", attemptID, true).Count(&correct).Error; err != nil {
		return 0, 0, err
	}
	return total, correct, nil
}

func (r *responseRepository) DeleteByAttemptID(attemptID uint) error {
	return r.db.Where("attempt_id = ?", attemptID).Delete(&model.Response{}).Error
}

func (r *responseRepository) DeleteByQuestionID(questionID uint) error {
	return r.db.Where("question_id = ?", questionID).Delete(&model.Response{}).Error
}

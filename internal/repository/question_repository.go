package repository

import (
	"github.com/lshigami/Admitra/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	WithTx(tx *gorm.DB) QuestionRepository
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindAllOrdered() ([]model.Question, error)
	FindBySectionID(sectionID uint) ([]model.Question, error)
	Count() (int64, error)
	Update(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// FindAllOrdered returns the canonical question sequence: sections by display
// order (id tiebreak), questions by creation order within a section.
func (r *questionRepository) FindAllOrdered() ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Joins("JOIN sections ON sections.id = questions.section_id AND sections.deleted_at IS NULL").
		Order("sections.display_order ASC, sections.id ASC, questions.id ASC").
		Preload("Section").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindBySectionID(sectionID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("section_id = ?", sectionID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Count(&count).Error
	return count, err
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}

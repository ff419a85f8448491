package repository

import (
	"github.com/lshigami/Admitra/internal/model"
	"gorm.io/gorm"
)

type SectionRepository interface {
	WithTx(tx *gorm.DB) SectionRepository
	Create(section *model.Section) error
	FindByID(id uint) (*model.Section, error)
	FindAllOrdered() ([]model.Section, error)
	FindAllWithQuestionCount() ([]SectionWithQuestionCount, error)
	Update(section *model.Section) error
	Delete(id uint) error
}

type SectionWithQuestionCount struct {
	model.Section
	QuestionCount int
}

type sectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) WithTx(tx *gorm.DB) SectionRepository {
	return &sectionRepository{db: tx}
}

func (r *sectionRepository) Create(section *model.Section) error {
	return r.db.Create(section).Error
}

func (r *sectionRepository) FindByID(id uint) (*model.Section, error) {
	var section model.Section
	if err := r.db.First(&section, id).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// FindAllOrdered returns sections in canonical display order. Ties on
// display_order break by creation order (id).
func (r *sectionRepository) FindAllOrdered() ([]model.Section, error) {
	var sections []model.Section
	if err := r.db.Order("display_order ASC, id ASC").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *sectionRepository) FindAllWithQuestionCount() ([]SectionWithQuestionCount, error) {
	var results []SectionWithQuestionCount
	err := r.db.Model(&model.Section{}).
		Select("sections.*, (SELECT COUNT(*) FROM questions WHERE questions.section_id = sections.id AND questions.deleted_at IS NULL) as question_count").
		Where("sections.deleted_at IS NULL").
		Order("sections.display_order ASC, sections.id ASC").
		Scan(&results).Error
	return results, err
}

func (r *sectionRepository) Update(section *model.Section) error {
	return r.db.Save(section).Error
}

func (r *sectionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Section{}, id).Error
}

package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/lshigami/Admitra/internal/model"
	"github.com/lshigami/Admitra/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// newTestDB opens an isolated in-memory SQLite database with the full schema
// migrated. cache=shared keeps the database alive across connections within
// one test; the single-connection pool serializes concurrent transactions the
// way a real server's row locks would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:admitra_svc_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.Section{},
		&model.Question{},
		&model.Candidate{},
		&model.Attempt{},
		&model.Response{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

type testRepos struct {
	sections   repository.SectionRepository
	questions  repository.QuestionRepository
	candidates repository.CandidateRepository
	attempts   repository.AttemptRepository
	responses  repository.ResponseRepository
}

func newTestRepos(db *gorm.DB) testRepos {
	return testRepos{
		sections:   repository.NewSectionRepository(db),
		questions:  repository.NewQuestionRepository(db),
		candidates: repository.NewCandidateRepository(db),
		attempts:   repository.NewAttemptRepository(db),
		responses:  repository.NewResponseRepository(db),
	}
}

func seedSection(t *testing.T, db *gorm.DB, name string, displayOrder int) model.Section {
	t.Helper()
	sec := model.Section{Name: name, DisplayOrder: displayOrder}
	if err := db.Create(&sec).Error; err != nil {
		t.Fatalf("seed section %q: %v", name, err)
	}
	return sec
}

func seedQuestion(t *testing.T, db *gorm.DB, sectionID uint, text, correct string) model.Question {
	t.Helper()
	q := model.Question{
		SectionID:        sectionID,
		QuestionText:     text,
		OptionA:          "option a",
		OptionB:          "option b",
		OptionC:          "option c",
		OptionD:          "option d",
		CorrectAnswer:    correct,
		TimeLimitSeconds: 30,
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed question %q: %v", text, err)
	}
	return q
}

func seedCandidate(t *testing.T, db *gorm.DB, fullName, email, phone string) model.Candidate {
	t.Helper()
	cand := model.Candidate{
		FullName: fullName,
		Email:    email,
		Phone:    phone,
		Status:   model.CandidateNotAttempted,
	}
	if err := db.Create(&cand).Error; err != nil {
		t.Fatalf("seed candidate %q: %v", fullName, err)
	}
	return cand
}

func strPtr(s string) *string { return &s }

package service

import (
	"testing"

	"github.com/lshigami/Admitra/internal/apperr"
	"github.com/lshigami/Admitra/internal/dto"
	"github.com/lshigami/Admitra/internal/model"
	"gorm.io/gorm"
)

type resultFixture struct {
	attempts AttemptService
	results  ResultService
	db       *gorm.DB
}

func newResultFixture(t *testing.T) resultFixture {
	t.Helper()
	db := newTestDB(t)
	repos := newTestRepos(db)
	return resultFixture{
		attempts: NewAttemptService(repos.candidates, repos.questions, repos.attempts, repos.responses, db),
		results:  NewResultService(repos.attempts, repos.sections),
		db:       db,
	}
}

// seedThreeSectionBank creates Quantitative (3 questions), Logical (3) and
// Verbal (2), all keyed to "A", returning questions grouped per section.
func seedThreeSectionBank(t *testing.T, db *gorm.DB) (quant, logical, verbal []model.Question) {
	t.Helper()
	// Deliberately created out of display order; ordering must come from
	// display_order, not insertion order.
	verbalSec := seedSection(t, db, "Verbal Ability", 3)
	quantSec := seedSection(t, db, "Quantitative Aptitude", 1)
	logicalSec := seedSection(t, db, "Logical Reasoning", 2)

	for i := 0; i < 3; i++ {
		quant = append(quant, seedQuestion(t, db, quantSec.ID, "quant question", "A"))
	}
	for i := 0; i < 3; i++ {
		logical = append(logical, seedQuestion(t, db, logicalSec.ID, "logical question", "A"))
	}
	for i := 0; i < 2; i++ {
		verbal = append(verbal, seedQuestion(t, db, verbalSec.ID, "verbal question", "A"))
	}
	return quant, logical, verbal
}

func TestGetResultsNotFound(t *testing.T) {
	fx := newResultFixture(t)
	_, err := fx.results.GetResults(9999)
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("err = %v, want NotFound", err)
	}
}

func TestGetResultsBeforeCompletionConflicts(t *testing.T) {
	fx := newResultFixture(t)
	seedThreeSectionBank(t, fx.db)
	cand := seedCandidate(t, fx.db, "Priya Sharma", "priya@example.com", "9876543210")
	attempt, err := fx.attempts.CreateAttempt(cand.ID, 0)
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}

	_, err = fx.results.GetResults(attempt.ID)
	if !apperr.IsCode(err, apperr.CodeConflict) {
		t.Fatalf("err = %v, want Conflict for incomplete attempt", err)
	}
}

func TestGetResultsSectionAggregation(t *testing.T) {
	fx := newResultFixture(t)
	quant, logical, verbal := seedThreeSectionBank(t, fx.db)
	cand := seedCandidate(t, fx.db, "Priya Sharma", "priya@example.com", "9876543210")
	attempt, err := fx.attempts.CreateAttempt(cand.ID, 0)
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}

	record := func(q model.Question, answer *string) {
		t.Helper()
		if _, err := fx.attempts.RecordResponse(attempt.ID, q.ID, answer, 10); err != nil {
			t.Fatalf("RecordResponse q%d: %v", q.ID, err)
		}
	}

	// Quant 2/3, Logical 3/3, Verbal 1/2.
	record(quant[0], strPtr("A"))
	record(quant[1], strPtr("A"))
	record(quant[2], strPtr("B"))
	record(logical[0], strPtr("A"))
	record(logical[1], strPtr("A"))
	record(logical[2], strPtr("A"))
	record(verbal[0], strPtr("A"))
	record(verbal[1], nil)

	if _, err := fx.attempts.CompleteAttempt(attempt.ID); err != nil {
		t.Fatalf("CompleteAttempt: %v", err)
	}

	results, err := fx.results.GetResults(attempt.ID)
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}

	if results.Attempt.CorrectAnswers != 6 {
		t.Errorf("attempt CorrectAnswers = %d, want 6", results.Attempt.CorrectAnswers)
	}
	if len(results.DetailedQuestions) != 8 {
		t.Fatalf("detailed questions = %d, want 8", len(results.DetailedQuestions))
	}

	wantScores := []dto.SectionScoreDTO{
		{SectionName: "Quantitative Aptitude", TotalQuestions: 3, CorrectAnswers: 2},
		{SectionName: "Logical Reasoning", TotalQuestions: 3, CorrectAnswers: 3},
		{SectionName: "Verbal Ability", TotalQuestions: 2, CorrectAnswers: 1},
	}
	if len(results.SectionScores) != len(wantScores) {
		t.Fatalf("section scores = %d, want %d", len(results.SectionScores), len(wantScores))
	}
	for i, want := range wantScores {
		got := results.SectionScores[i]
		if got.SectionName != want.SectionName {
			t.Errorf("section[%d] = %q, want %q (display order must win over creation order)", i, got.SectionName, want.SectionName)
		}
		if got.TotalQuestions != want.TotalQuestions || got.CorrectAnswers != want.CorrectAnswers {
			t.Errorf("section %q: got %d/%d, want %d/%d",
				want.SectionName, got.CorrectAnswers, got.TotalQuestions, want.CorrectAnswers, want.TotalQuestions)
		}
	}

	// Per-section totals must reconcile with the attempt-level counts.
	sumTotal, sumCorrect := 0, 0
	for _, s := range results.SectionScores {
		sumTotal += s.TotalQuestions
		sumCorrect += s.CorrectAnswers
	}
	if sumTotal != 8 || sumCorrect != results.Attempt.CorrectAnswers {
		t.Errorf("section sums total=%d correct=%d, want 8 and %d", sumTotal, sumCorrect, results.Attempt.CorrectAnswers)
	}
}

func TestGetResultsDetailOrderingAndAnswerKey(t *testing.T) {
	fx := newResultFixture(t)
	quant, logical, verbal := seedThreeSectionBank(t, fx.db)
	cand := seedCandidate(t, fx.db, "Priya Sharma", "priya@example.com", "9876543210")
	attempt, err := fx.attempts.CreateAttempt(cand.ID, 0)
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}

	// Record in reverse canonical order; the review must still come back in
	// section display order.
	all := append(append(append([]model.Question{}, verbal...), logical...), quant...)
	for _, q := range all {
		if _, err := fx.attempts.RecordResponse(attempt.ID, q.ID, strPtr("A"), 10); err != nil {
			t.Fatalf("RecordResponse: %v", err)
		}
	}
	if _, err := fx.attempts.CompleteAttempt(attempt.ID); err != nil {
		t.Fatalf("CompleteAttempt: %v", err)
	}

	results, err := fx.results.GetResults(attempt.ID)
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}

	wantSections := []string{
		"Quantitative Aptitude", "Quantitative Aptitude", "Quantitative Aptitude",
		"Logical Reasoning", "Logical Reasoning", "Logical Reasoning",
		"Verbal Ability", "Verbal Ability",
	}
	if len(results.DetailedQuestions) != len(wantSections) {
		t.Fatalf("detail rows = %d, want %d", len(results.DetailedQuestions), len(wantSections))
	}
	for i, row := range results.DetailedQuestions {
		if row.SectionName != wantSections[i] {
			t.Errorf("row %d in section %q, want %q", i, row.SectionName, wantSections[i])
		}
		if row.CorrectAnswer == "" {
			t.Errorf("row %d missing correct answer in post-completion review", i)
		}
		if i > 0 && results.DetailedQuestions[i-1].SectionName == row.SectionName &&
			results.DetailedQuestions[i-1].QuestionID > row.QuestionID {
			t.Errorf("row %d out of question order within section %q", i, row.SectionName)
		}
	}
}

package service

import (
	"sync"
	"testing"

	"github.com/lshigami/Admitra/internal/apperr"
	"github.com/lshigami/Admitra/internal/model"
	"gorm.io/gorm"
)

func newAttemptFixture(t *testing.T) (AttemptService, testRepos, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewAttemptService(repos.candidates, repos.questions, repos.attempts, repos.responses, db)
	return svc, repos, db
}

// seedEightQuestionBank creates two sections holding eight questions, all
// keyed to answer "A". Returns the questions in canonical order.
func seedEightQuestionBank(t *testing.T, db *gorm.DB) []model.Question {
	t.Helper()
	quant := seedSection(t, db, "Quantitative Aptitude", 1)
	verbal := seedSection(t, db, "Verbal Ability", 2)

	var questions []model.Question
	for i := 0; i < 5; i++ {
		questions = append(questions, seedQuestion(t, db, quant.ID, "quant question", "A"))
	}
	for i := 0; i < 3; i++ {
		questions = append(questions, seedQuestion(t, db, verbal.ID, "verbal question", "A"))
	}
	return questions
}

func TestCreateAttempt(t *testing.T) {
	svc, _, db := newAttemptFixture(t)
	seedEightQuestionBank(t, db)
	cand := seedCandidate(t, db, "Priya Sharma", "priya@example.com", "9876543210")

	attempt, err := svc.CreateAttempt(cand.ID, 0)
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}
	if attempt.TotalQuestions != 8 {
		t.Errorf("TotalQuestions = %d, want 8", attempt.TotalQuestions)
	}
	if attempt.CandidateID != cand.ID {
		t.Errorf("CandidateID = %d, want %d", attempt.CandidateID, cand.ID)
	}
	if attempt.CompletedAt != nil {
		t.Errorf("new attempt must not be completed")
	}
	if attempt.StartedAt.IsZero() {
		t.Errorf("StartedAt must be stamped")
	}

	var stored model.Candidate
	if err := db.First(&stored, cand.ID).Error; err != nil {
		t.Fatalf("reload candidate: %v", err)
	}
	if stored.Status != model.CandidateAttempted {
		t.Errorf("candidate status = %q, want %q", stored.Status, model.CandidateAttempted)
	}
}

func TestCreateAttemptIgnoresClientQuestionCount(t *testing.T) {
	svc, _, db := newAttemptFixture(t)
	seedEightQuestionBank(t, db)
	cand := seedCandidate(t, db, "Priya Sharma", "priya@example.com", "9876543210")

	// Client claims 3 questions; the question bank says 8 and wins.
	attempt, err := svc.CreateAttempt(cand.ID, 3)
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}
	if attempt.TotalQuestions != 8 {
		t.Errorf("TotalQuestions = %d, want authoritative 8", attempt.TotalQuestions)
	}
}

func TestCreateAttemptUnknownCandidate(t *testing.T) {
	svc, _, db := newAttemptFixture(t)
	seedEightQuestionBank(t, db)

	_, err := svc.CreateAttempt(9999, 0)
	if !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("err = %v, want NotFound", err)
	}
}

func TestCreateAttemptSecondCallConflicts(t *testing.T) {
	svc, _, db := newAttemptFixture(t)
	seedEightQuestionBank(t, db)
	cand := seedCandidate(t, db, "Priya Sharma", "priya@example.com", "9876543210")

	if _, err := svc.CreateAttempt(cand.ID, 0); err != nil {
		t.Fatalf("first CreateAttempt: %v", err)
	}
	_, err := svc.CreateAttempt(cand.ID, 0)
	if !apperr.IsCode(err, apperr.CodeConflict) {
		t.Fatalf("second CreateAttempt err = %v, want Conflict", err)
	}
}

func TestCreateAttemptConcurrentExactlyOneWinner(t *testing.T) {
	svc, _, db := newAttemptFixture(t)
	seedEightQuestionBank(t, db)
	cand := seedCandidate(t, db, "Priya Sharma", "priya@example.com", "9876543210")

	const callers = 10
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateAttempt(cand.ID, 0)
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case apperr.IsCode(err, apperr.CodeConflict):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("successes = %d, want exactly 1", successes)
	}
	if conflicts != callers-1 {
		t.Errorf("conflicts = %d, want %d", conflicts, callers-1)
	}

	var count int64
	if err := db.Model(&model.Attempt{}).Where("candidate_id = ?", cand.ID).Count(&count).Error; err != nil {
		t.Fatalf("count attempts: %v", err)
	}
	if count != 1 {
		t.Errorf("stored attempts = %d, want 1", count)
	}
}

func TestRecordResponseGradesServerSide(t *testing.T) {
	svc, _, db := newAttemptFixture(t)
	questions := seedEightQuestionBank(t, db)
	cand := seedCandidate(t, db, "Priya Sharma", "priya@example.com", "9876543210")
	attempt, err := svc.CreateAttempt(cand.ID, 0)
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}

	right, err := svc.RecordResponse(attempt.ID, questions[0].ID, strPtr("A"), 12)
	if err != nil {
		t.Fatalf("RecordResponse correct: %v", err)
	}
	if !right.Recorded || !right.IsCorrect {
		t.Errorf("correct answer: got recorded=%v is_correct=%v", right.Recorded, right.IsCorrect)
	}

	wrong, err := svc.RecordResponse(attempt.ID, questions[1].ID, strPtr("C"), 20)
	if err != nil {
		t.Fatalf("RecordResponse wrong: %v", err)
	}
	if wrong.IsCorrect {
		t.Errorf("wrong answer graded correct")
	}

	timedOut, err := svc.RecordResponse(attempt.ID, questions[2].ID, nil, 30)
	if err != nil {
		t.Fatalf("RecordResponse timed out: %v", err)
	}
	if timedOut.IsCorrect {
		t.Errorf("unanswered question graded correct")
	}
}

func TestRecordResponseValidation(t *testing.T) {
	svc, _, db := newAttemptFixture(t)
	questions := seedEightQuestionBank(t, db)
	cand := seedCandidate(t, db, "Priya Sharma", "priya@example.com", "9876543210")
	attempt, err := svc.CreateAttempt(cand.ID, 0)
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}

	if _, err := svc.RecordResponse(attempt.ID, questions[0].ID, strPtr("E"), 5); !apperr.IsCode(err, apperr.CodeValidation) {
		t.Errorf("letter E: err = %v, want Validation", err)
	}
	if _, err := svc.RecordResponse(attempt.ID, questions[0].ID, strPtr("a"), 5); !apperr.IsCode(err, apperr.CodeValidation) {
		t.Errorf("lowercase letter: err = %v, want Validation", err)
	}
	if _, err := svc.RecordResponse(attempt.ID, questions[0].ID, strPtr("A"), -1); !apperr.IsCode(err, apperr.CodeValidation) {
		t.Errorf("negative time: err = %v, want Validation", err)
	}
}

func TestRecordResponseNotFound(t *testing.T) {
	svc, _, db := newAttemptFixture(t)
	questions := seedEightQuestionBank(t, db)
	cand := seedCandidate(t, db, "Priya Sharma", "priya@example.com", "9876543210")
	attempt, err := svc.CreateAttempt(cand.ID, 0)
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}

	if _, err := svc.RecordResponse(9999, questions[0].ID, strPtr("A"), 5); !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Errorf("unknown attempt: err = %v, want NotFound", err)
	}
	if _, err := svc.RecordResponse(attempt.ID, 9999, strPtr("A"), 5); !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Errorf("unknown question: err = %v, want NotFound", err)
	}
}

func TestRecordResponseDuplicateQuestionConflicts(t *testing.T) {
	svc, _, db := newAttemptFixture(t)
	questions := seedEightQuestionBank(t, db)
	cand := seedCandidate(t, db, "Priya Sharma", "priya@example.com", "9876543210")
	attempt, err := svc.CreateAttempt(cand.ID, 0)
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}

	if _, err := svc.RecordResponse(attempt.ID, questions[0].ID, strPtr("A"), 5); err != nil {
		t.Fatalf("first RecordResponse: %v", err)
	}
	_, err = svc.RecordResponse(attempt.ID, questions[0].ID, strPtr("B"), 8)
	if !apperr.IsCode(err, apperr.CodeConflict) {
		t.Fatalf("duplicate question err = %v, want Conflict", err)
	}

	// The stored row must keep the first grading.
	var resp model.Response
	if err := db.Where("attempt_id = ? AND question_id = ?", attempt.ID, questions[0].ID).First(&resp).Error; err != nil {
		t.Fatalf("reload response: %v", err)
	}
	if !resp.IsCorrect {
		t.Errorf("original response was overwritten")
	}
}

func TestCompleteAttemptScoring(t *testing.T) {
	svc, _, db := newAttemptFixture(t)
	questions := seedEightQuestionBank(t, db)
	cand := seedCandidate(t, db, "Priya Sharma", "priya@example.com", "9876543210")
	attempt, err := svc.CreateAttempt(cand.ID, 0)
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}

	// 5 correct, 2 wrong, 1 timed out. All keys are "A".
	for i := 0; i < 5; i++ {
		if _, err := svc.RecordResponse(attempt.ID, questions[i].ID, strPtr("A"), 10); err != nil {
			t.Fatalf("record correct %d: %v", i, err)
		}
	}
	for i := 5; i < 7; i++ {
		if _, err := svc.RecordResponse(attempt.ID, questions[i].ID, strPtr("B"), 10); err != nil {
			t.Fatalf("record wrong %d: %v", i, err)
		}
	}
	if _, err := svc.RecordResponse(attempt.ID, questions[7].ID, nil, 30); err != nil {
		t.Fatalf("record timed out: %v", err)
	}

	done, err := svc.CompleteAttempt(attempt.ID)
	if err != nil {
		t.Fatalf("CompleteAttempt: %v", err)
	}
	if done.CorrectAnswers != 5 {
		t.Errorf("CorrectAnswers = %d, want 5", done.CorrectAnswers)
	}
	if done.IncorrectAnswers != 3 {
		t.Errorf("IncorrectAnswers = %d, want 3", done.IncorrectAnswers)
	}
	// 5/8 = 62.5%, rounds half-up to 63.
	if done.TotalScore != 63 {
		t.Errorf("TotalScore = %d, want 63", done.TotalScore)
	}
	if done.CompletedAt == nil {
		t.Errorf("CompletedAt must be stamped")
	}
}

func TestCompleteAttemptSecondCallConflicts(t *testing.T) {
	svc, _, db := newAttemptFixture(t)
	questions := seedEightQuestionBank(t, db)
	cand := seedCandidate(t, db, "Priya Sharma", "priya@example.com", "9876543210")
	attempt, err := svc.CreateAttempt(cand.ID, 0)
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}
	if _, err := svc.RecordResponse(attempt.ID, questions[0].ID, strPtr("A"), 5); err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}

	first, err := svc.CompleteAttempt(attempt.ID)
	if err != nil {
		t.Fatalf("first CompleteAttempt: %v", err)
	}

	if _, err := svc.CompleteAttempt(attempt.ID); !apperr.IsCode(err, apperr.CodeConflict) {
		t.Fatalf("second CompleteAttempt err = %v, want Conflict", err)
	}

	// Finalized counts survive the rejected second call.
	var stored model.Attempt
	if err := db.First(&stored, attempt.ID).Error; err != nil {
		t.Fatalf("reload attempt: %v", err)
	}
	if stored.CorrectAnswers != first.CorrectAnswers || stored.TotalScore != first.TotalScore {
		t.Errorf("stored counts changed after rejected completion: %+v", stored)
	}
}

func TestRecordResponseAfterCompletionConflicts(t *testing.T) {
	svc, _, db := newAttemptFixture(t)
	questions := seedEightQuestionBank(t, db)
	cand := seedCandidate(t, db, "Priya Sharma", "priya@example.com", "9876543210")
	attempt, err := svc.CreateAttempt(cand.ID, 0)
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}
	if _, err := svc.CompleteAttempt(attempt.ID); err != nil {
		t.Fatalf("CompleteAttempt: %v", err)
	}

	_, err = svc.RecordResponse(attempt.ID, questions[0].ID, strPtr("A"), 5)
	if !apperr.IsCode(err, apperr.CodeConflict) {
		t.Fatalf("record after completion err = %v, want Conflict", err)
	}
}

func TestCompleteAttemptNotFound(t *testing.T) {
	svc, _, _ := newAttemptFixture(t)
	if _, err := svc.CompleteAttempt(9999); !apperr.IsCode(err, apperr.CodeNotFound) {
		t.Fatalf("err = %v, want NotFound", err)
	}
}

func TestCompleteAttemptNoResponses(t *testing.T) {
	svc, _, db := newAttemptFixture(t)
	seedEightQuestionBank(t, db)
	cand := seedCandidate(t, db, "Priya Sharma", "priya@example.com", "9876543210")
	attempt, err := svc.CreateAttempt(cand.ID, 0)
	if err != nil {
		t.Fatalf("CreateAttempt: %v", err)
	}

	done, err := svc.CompleteAttempt(attempt.ID)
	if err != nil {
		t.Fatalf("CompleteAttempt: %v", err)
	}
	if done.CorrectAnswers != 0 || done.IncorrectAnswers != 0 || done.TotalScore != 0 {
		t.Errorf("empty attempt: got correct=%d incorrect=%d score=%d, want zeros",
			done.CorrectAnswers, done.IncorrectAnswers, done.TotalScore)
	}
}

func TestScorePercent(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{"all correct", 8, 8, 100},
		{"none correct", 0, 8, 0},
		{"half rounds up", 5, 8, 63},
		{"one third", 1, 3, 33},
		{"two thirds", 2, 3, 67},
		{"empty bank", 0, 0, 0},
		{"negative total", 3, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorePercent(tt.correct, tt.total); got != tt.want {
				t.Errorf("scorePercent(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
			}
		})
	}
}

package service

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestListQuestionsCanonicalOrder(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewExamService(repos.questions, repos.sections)
	quant, logical, verbal := seedThreeSectionBank(t, db)

	questions, err := svc.ListQuestions()
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}
	if len(questions) != 8 {
		t.Fatalf("questions = %d, want 8", len(questions))
	}

	wantIDs := []uint{
		quant[0].ID, quant[1].ID, quant[2].ID,
		logical[0].ID, logical[1].ID, logical[2].ID,
		verbal[0].ID, verbal[1].ID,
	}
	for i, q := range questions {
		if q.ID != wantIDs[i] {
			t.Errorf("position %d: question %d, want %d (sections must order by display_order)", i, q.ID, wantIDs[i])
		}
	}
	if questions[0].SectionName != "Quantitative Aptitude" {
		t.Errorf("first section = %q, want Quantitative Aptitude", questions[0].SectionName)
	}
}

func TestListQuestionsNeverLeaksAnswerKey(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewExamService(repos.questions, repos.sections)
	seedThreeSectionBank(t, db)

	questions, err := svc.ListQuestions()
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}

	payload, err := json.Marshal(questions)
	if err != nil {
		t.Fatalf("marshal questions: %v", err)
	}
	if strings.Contains(string(payload), "correct_answer") {
		t.Fatalf("public question payload contains the answer key: %s", payload)
	}
}

func TestListSections(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewExamService(repos.questions, repos.sections)
	seedThreeSectionBank(t, db)

	sections, err := svc.ListSections()
	if err != nil {
		t.Fatalf("ListSections: %v", err)
	}
	if len(sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(sections))
	}

	wantNames := []string{"Quantitative Aptitude", "Logical Reasoning", "Verbal Ability"}
	wantCounts := []int{3, 3, 2}
	for i, sec := range sections {
		if sec.Name != wantNames[i] {
			t.Errorf("section[%d] = %q, want %q", i, sec.Name, wantNames[i])
		}
		if sec.QuestionCount != wantCounts[i] {
			t.Errorf("section %q count = %d, want %d", sec.Name, sec.QuestionCount, wantCounts[i])
		}
	}
}

func TestListQuestionsEmptyBank(t *testing.T) {
	db := newTestDB(t)
	repos := newTestRepos(db)
	svc := NewExamService(repos.questions, repos.sections)

	questions, err := svc.ListQuestions()
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("questions = %d, want 0", len(questions))
	}
}

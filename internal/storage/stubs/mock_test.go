package stubs

import (
	"errors"
	"testing"

	"github.com/odrawq/bolochagina-tgbot/internal/models"
)

func TestMockStore_CreateAndExists(t *testing.T) {
	m := NewMockStore()

	if m.Exists(100) {
		t.Fatal("empty store must not report a record")
	}
	if err := m.Create(100); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !m.Exists(100) {
		t.Fatal("created record must be visible")
	}

	rec := m.Record(100)
	if rec == nil {
		t.Fatal("expected a record copy")
	}
	if rec.Question != nil {
		t.Error("fresh record must not carry a question")
	}
	if rec.States[models.StateAwaitingQuestion] {
		t.Error("fresh record must not be awaiting a question")
	}
}

func TestMockStore_StateFlags(t *testing.T) {
	m := NewMockStore()
	if err := m.Create(100); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if m.GetState(100, models.StateAwaitingQuestion) {
		t.Fatal("unset flag must read false")
	}
	if err := m.SetState(100, models.StateAwaitingQuestion, true); err != nil {
		t.Fatalf("SetState failed: %v", err)
	}
	if !m.GetState(100, models.StateAwaitingQuestion) {
		t.Fatal("set flag must read true")
	}
	if m.GetState(999, models.StateAwaitingQuestion) {
		t.Error("unknown chat must read false")
	}
}

func TestMockStore_QuestionLifecycle(t *testing.T) {
	m := NewMockStore()
	if err := m.Create(100); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := m.Create(200); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := m.CreateQuestion(100, "@alice: q"); err != nil {
		t.Fatalf("CreateQuestion failed: %v", err)
	}
	if !m.HasQuestion(100) {
		t.Fatal("stored question must be visible")
	}
	if m.HasQuestion(200) {
		t.Fatal("question must not leak to another chat")
	}

	questions := m.ListQuestions()
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].ChatID != 100 || questions[0].Text != "@alice: q" {
		t.Errorf("unexpected question: %+v", questions[0])
	}

	if err := m.DeleteQuestion(100); err != nil {
		t.Fatalf("DeleteQuestion failed: %v", err)
	}
	if m.HasQuestion(100) {
		t.Error("deleted question must be gone")
	}
}

func TestMockStore_CallCounters(t *testing.T) {
	m := NewMockStore()

	m.Exists(100)
	m.GetState(100, models.StateAwaitingQuestion)
	m.HasQuestion(100)
	m.ListQuestions()
	if m.ReadCalls != 4 {
		t.Errorf("expected 4 read calls, got %d", m.ReadCalls)
	}

	_ = m.Create(100)
	_ = m.SetState(100, models.StateAwaitingQuestion, true)
	_ = m.CreateQuestion(100, "@alice: q")
	_ = m.DeleteQuestion(100)
	if m.WriteCalls != 4 {
		t.Errorf("expected 4 write calls, got %d", m.WriteCalls)
	}
}

func TestMockStore_FailWrites(t *testing.T) {
	m := NewMockStore()
	boom := errors.New("disk full")
	m.FailWrites = boom

	if err := m.Create(100); !errors.Is(err, boom) {
		t.Fatalf("Create error = %v, want %v", err, boom)
	}
	if m.Exists(100) {
		t.Error("failed Create must not leave a record behind")
	}
}

func TestMockStore_RecordReturnsCopy(t *testing.T) {
	m := NewMockStore()
	if err := m.Create(100); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := m.CreateQuestion(100, "@alice: q"); err != nil {
		t.Fatalf("CreateQuestion failed: %v", err)
	}

	rec := m.Record(100)
	rec.Question.Text = "mutated"
	rec.States[models.StateAwaitingQuestion] = true

	if got := m.Record(100); got.Question.Text != "@alice: q" {
		t.Errorf("store question changed through the copy: %q", got.Question.Text)
	}
	if m.GetState(100, models.StateAwaitingQuestion) {
		t.Error("store state changed through the copy")
	}
}

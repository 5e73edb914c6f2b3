// Package stubs provides an in-memory Storage implementation for tests.
package stubs

import (
	"sync"

	"github.com/odrawq/bolochagina-tgbot/internal/models"
)

// MockStore is an in-memory implementation of the storage.Storage interface.
// It counts read and write calls so tests can assert that an operation did
// (or did not) touch the store.
type MockStore struct {
	mu    sync.RWMutex
	users map[int64]*models.UserRecord
	order []int64

	ReadCalls  int
	WriteCalls int

	// FailWrites makes every mutating call return this error when non-nil.
	FailWrites error
}

// NewMockStore creates an empty mock store.
func NewMockStore() *MockStore {
	return &MockStore{users: make(map[int64]*models.UserRecord)}
}

// Exists reports whether a record for the chat has been created.
func (m *MockStore) Exists(chatID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReadCalls++
	_, ok := m.users[chatID]
	return ok
}

// Create inserts a fresh record for the chat.
func (m *MockStore) Create(chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteCalls++
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.users[chatID] = models.NewUserRecord()
	m.order = append(m.order, chatID)
	return nil
}

// GetState returns the named flag for the chat.
func (m *MockStore) GetState(chatID int64, name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReadCalls++
	rec, ok := m.users[chatID]
	if !ok {
		return false
	}
	return rec.States[name]
}

// SetState sets the named flag for the chat.
func (m *MockStore) SetState(chatID int64, name string, value bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteCalls++
	if m.FailWrites != nil {
		return m.FailWrites
	}
	if rec, ok := m.users[chatID]; ok {
		rec.States[name] = value
	}
	return nil
}

// HasQuestion reports whether the chat has an open question.
func (m *MockStore) HasQuestion(chatID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReadCalls++
	rec, ok := m.users[chatID]
	return ok && rec.Question != nil
}

// CreateQuestion stores the chat's open question.
func (m *MockStore) CreateQuestion(chatID int64, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteCalls++
	if m.FailWrites != nil {
		return m.FailWrites
	}
	if rec, ok := m.users[chatID]; ok {
		rec.Question = &models.Question{Text: text}
	}
	return nil
}

// DeleteQuestion removes the chat's open question.
func (m *MockStore) DeleteQuestion(chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WriteCalls++
	if m.FailWrites != nil {
		return m.FailWrites
	}
	if rec, ok := m.users[chatID]; ok {
		rec.Question = nil
	}
	return nil
}

// ListQuestions returns every open question in record insertion order.
func (m *MockStore) ListQuestions() []models.PendingQuestion {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReadCalls++
	var out []models.PendingQuestion
	for _, chatID := range m.order {
		rec := m.users[chatID]
		if rec.Question != nil {
			out = append(out, models.PendingQuestion{ChatID: chatID, Text: rec.Question.Text})
		}
	}
	return out
}

// Record returns a copy of the chat's record for assertions, or nil.
func (m *MockStore) Record(chatID int64) *models.UserRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.users[chatID]
	if !ok {
		return nil
	}
	return rec.Clone()
}

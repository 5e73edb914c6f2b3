package storage

import (
	"errors"

	"github.com/odrawq/bolochagina-tgbot/internal/models"
)

// ErrUnknownChat is returned by operations whose precondition (an existing
// user record) was not met. Callers are expected to check Exists first.
var ErrUnknownChat = errors.New("storage: unknown chat")

// Storage is the durable mapping from chat identity to per-user record.
// The whole mapping is held in memory as the source of truth and mirrored
// to durable storage after every mutation. Implementations must be safe for
// concurrent use.
type Storage interface {
	// Exists reports whether a record for the chat has been created.
	Exists(chatID int64) bool

	// Create inserts a fresh record for the chat. It is not idempotent:
	// callers must check Exists first.
	Create(chatID int64) error

	// GetState returns the named flag for the chat. For a chat without a
	// record the result is the zero value; callers must verify Exists.
	GetState(chatID int64, name string) bool

	// SetState sets the named flag and persists the mapping.
	SetState(chatID int64, name string, value bool) error

	// HasQuestion reports whether the chat has an open question.
	HasQuestion(chatID int64) bool

	// CreateQuestion stores the chat's open question, silently replacing
	// any existing one. Callers are expected to have checked HasQuestion.
	CreateQuestion(chatID int64, text string) error

	// DeleteQuestion removes the chat's open question.
	DeleteQuestion(chatID int64) error

	// ListQuestions returns every open question paired with its chat, in
	// the insertion order of the chat records.
	ListQuestions() []models.PendingQuestion
}

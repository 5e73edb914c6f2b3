// Package file implements the durable user store as a single JSON document
// that is rewritten in full after every mutation.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/odrawq/bolochagina-tgbot/internal/models"
	"github.com/odrawq/bolochagina-tgbot/internal/storage"
)

// document is the on-disk shape. Records are kept as an ordered array: a
// JSON object keyed by chat id would not survive a reload with its insertion
// order intact, and ListQuestions must preserve it.
type document struct {
	Users []userEntry `json:"users"`
}

type userEntry struct {
	ChatID   int64            `json:"chat_id"`
	States   map[string]bool  `json:"states"`
	Question *models.Question `json:"question,omitempty"`
}

// Store keeps the whole user mapping in memory and mirrors it to a JSON file
// after every mutation. A single RWMutex covers the entire mapping: reads
// take it shared, mutations take it exclusively for both the in-memory
// change and the file rewrite.
type Store struct {
	mu    sync.RWMutex
	path  string
	users map[int64]*models.UserRecord
	order []int64
}

// Open loads the user document at path. The file must exist and parse; a
// fresh deployment starts from an empty document ({"users":[]}).
func Open(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read user store %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse user store %s: %w", path, err)
	}

	s := &Store{
		path:  path,
		users: make(map[int64]*models.UserRecord, len(doc.Users)),
		order: make([]int64, 0, len(doc.Users)),
	}
	for _, e := range doc.Users {
		rec := &models.UserRecord{States: e.States, Question: e.Question}
		if rec.States == nil {
			rec.States = make(map[string]bool)
		}
		s.users[e.ChatID] = rec
		s.order = append(s.order, e.ChatID)
	}
	return s, nil
}

// Exists reports whether a record for the chat has been created.
func (s *Store) Exists(chatID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[chatID]
	return ok
}

// Create inserts a fresh record for the chat and persists the mapping.
func (s *Store) Create(chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[chatID] = models.NewUserRecord()
	s.order = append(s.order, chatID)
	return s.persistLocked()
}

// GetState returns the named flag for the chat, or false for a chat that has
// no record.
func (s *Store) GetState(chatID int64, name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[chatID]
	if !ok {
		return false
	}
	return rec.States[name]
}

// SetState sets the named flag and persists the mapping.
func (s *Store) SetState(chatID int64, name string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[chatID]
	if !ok {
		return storageErr(chatID)
	}
	rec.States[name] = value
	return s.persistLocked()
}

// HasQuestion reports whether the chat has an open question.
func (s *Store) HasQuestion(chatID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[chatID]
	return ok && rec.Question != nil
}

// CreateQuestion stores the chat's open question, replacing any existing one.
func (s *Store) CreateQuestion(chatID int64, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[chatID]
	if !ok {
		return storageErr(chatID)
	}
	rec.Question = &models.Question{Text: text}
	return s.persistLocked()
}

// DeleteQuestion removes the chat's open question and persists the mapping.
func (s *Store) DeleteQuestion(chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[chatID]
	if !ok {
		return storageErr(chatID)
	}
	rec.Question = nil
	return s.persistLocked()
}

// ListQuestions returns every open question in record insertion order.
func (s *Store) ListQuestions() []models.PendingQuestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.PendingQuestion
	for _, chatID := range s.order {
		rec := s.users[chatID]
		if rec.Question != nil {
			out = append(out, models.PendingQuestion{ChatID: chatID, Text: rec.Question.Text})
		}
	}
	return out
}

// persistLocked rewrites the whole document. It writes to a temporary file
// in the same directory and renames it over the store file, so a crash in
// the middle of a write cannot leave a truncated document behind.
func (s *Store) persistLocked() error {
	doc := document{Users: make([]userEntry, 0, len(s.order))}
	for _, chatID := range s.order {
		rec := s.users[chatID]
		doc.Users = append(doc.Users, userEntry{
			ChatID:   chatID,
			States:   rec.States,
			Question: rec.Question,
		})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode user store: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp user store: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write user store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp user store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace user store %s: %w", s.path, err)
	}
	return nil
}

func storageErr(chatID int64) error {
	return fmt.Errorf("chat %d: %w", chatID, storage.ErrUnknownChat)
}

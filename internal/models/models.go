package models

// StateAwaitingQuestion is the per-user flag that is set while the bot
// expects free-form question text as the next message.
const StateAwaitingQuestion = "awaiting_question"

// Question is an open, unresolved question submitted by a user. A user has
// at most one; it exists from submission until an administrator removes it.
type Question struct {
	Text string `json:"text"`
}

// UserRecord holds everything the bot persists about a single chat.
// Records are created lazily on first contact and never deleted.
type UserRecord struct {
	// States maps flag names to values. The only flag currently in use is
	// StateAwaitingQuestion; unknown names read as false.
	States map[string]bool `json:"states"`

	// Question is nil until the user submits one.
	Question *Question `json:"question,omitempty"`
}

// NewUserRecord returns a fresh record with all flags cleared.
func NewUserRecord() *UserRecord {
	return &UserRecord{States: make(map[string]bool)}
}

// Clone returns a deep copy, so snapshots handed out by the store cannot be
// mutated behind its lock.
func (r *UserRecord) Clone() *UserRecord {
	c := &UserRecord{States: make(map[string]bool, len(r.States))}
	for k, v := range r.States {
		c.States[k] = v
	}
	if r.Question != nil {
		q := *r.Question
		c.Question = &q
	}
	return c
}

// PendingQuestion pairs a chat with its open question text. It is a derived
// view used only by the administrator list command.
type PendingQuestion struct {
	ChatID int64
	Text   string
}

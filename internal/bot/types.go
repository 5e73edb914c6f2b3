package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/odrawq/bolochagina-tgbot/internal/storage"
)

// Transport is the narrow boundary to the chat platform. All operations are
// already retried internally; FetchUpdates reports an error only for a
// response that could not be decoded, and the fire-and-forget operations
// give no feedback on residual failure.
type Transport interface {
	FetchUpdates(offset int64) ([]tgbotapi.Update, error)
	SendMessage(chatID int64, text string, markup interface{})
	AnswerCallback(id string)
	LeaveChat(chatID int64)
}

// Bot owns the update-dispatch pipeline: the long-poll loop, the per-chat
// conversation state machine and the command router.
type Bot struct {
	transport   Transport
	store       storage.Storage
	adminChatID int64
	maintenance bool
	logger      *zap.Logger

	// workers caps the number of concurrently running units of work; the
	// dispatch loop blocks on it instead of spawning without bound.
	workers *semaphore.Weighted

	// offset is the update cursor. It is read and advanced only by the
	// goroutine running Run; units of work never touch it.
	offset int64
}

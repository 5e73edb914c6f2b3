package bot

import (
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/odrawq/bolochagina-tgbot/internal/storage"
)

// New assembles a Bot. In maintenance mode every update is answered with a
// fixed reply and the store is never consulted, so store may be nil there.
func New(transport Transport, store storage.Storage, adminChatID int64, maintenance bool, maxConcurrent int64, logger *zap.Logger) *Bot {
	if maxConcurrent <= 0 {
		maxConcurrent = 64
	}

	return &Bot{
		transport:   transport,
		store:       store,
		adminChatID: adminChatID,
		maintenance: maintenance,
		logger:      logger,
		workers:     semaphore.NewWeighted(maxConcurrent),
	}
}

// must aborts the process on a failed store write: without durable
// persistence the in-memory state can silently diverge from disk.
func (b *Bot) must(err error) {
	if err != nil {
		b.logger.Fatal("user store write failed", zap.Error(err))
	}
}

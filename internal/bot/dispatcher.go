package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Run drives the long-poll loop until ctx is cancelled. Each update in a
// batch advances the cursor synchronously in this goroutine and is then
// handed to an independent unit of work; the loop never waits for handling
// to finish. A fetch that failed in transit comes back as an empty batch and
// the loop simply polls again; the server-side long-poll window is the only
// throttle. A batch that could not be decoded aborts the process.
func (b *Bot) Run(ctx context.Context) error {
	mode := "default"
	if b.maintenance {
		mode = "maintenance"
	}
	b.logger.Info("dispatch loop started", zap.String("mode", mode))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		updates, err := b.transport.FetchUpdates(b.offset)
		if err != nil {
			b.logger.Fatal("unusable update batch", zap.Error(err))
		}

		for _, update := range updates {
			b.offset = int64(update.UpdateID) + 1

			unit := b.unitFor(update)
			if unit == nil {
				continue
			}
			if err := b.workers.Acquire(ctx, 1); err != nil {
				return err
			}
			go func() {
				defer b.workers.Release(1)
				unit()
			}()
		}
	}
}

// unitFor classifies an update and returns its unit of work, or nil for
// update shapes the bot does not handle.
func (b *Bot) unitFor(update tgbotapi.Update) func() {
	switch {
	case update.Message != nil:
		msg := update.Message
		if b.maintenance {
			return func() { b.handleMessageInMaintenance(msg) }
		}
		return func() { b.handleMessage(msg) }

	case update.CallbackQuery != nil:
		query := update.CallbackQuery
		if b.maintenance {
			return func() { b.handleCallbackQueryInMaintenance(query) }
		}
		return func() { b.handleCallbackQuery(query) }

	default:
		return nil
	}
}

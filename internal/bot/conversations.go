package bot

import (
	"go.uber.org/zap"

	"github.com/odrawq/bolochagina-tgbot/internal/models"
)

// handleQuestion runs the AwaitingQuestion half of the per-chat state
// machine. The state flag is always written back to the store before the
// reply goes out, so every reply reflects the post-transition state.
func (b *Bot) handleQuestion(chatID int64, rootAccess bool, username, text string) {
	if text == "" {
		// Non-text update; the user stays in AwaitingQuestion.
		b.transport.SendMessage(chatID, textTextOnly, nil)
		return
	}

	if text == labelCancel {
		b.must(b.store.SetState(chatID, models.StateAwaitingQuestion, false))
		b.transport.SendMessage(chatID, textQuestionCanceled, b.currentKeyboard(chatID))
		return
	}

	if username == "" {
		// No recovery loop here: the user is forced back to Idle and has
		// to start over once a username is set.
		b.must(b.store.SetState(chatID, models.StateAwaitingQuestion, false))
		b.transport.SendMessage(chatID, textNeedUsername, b.currentKeyboard(chatID))
		return
	}

	if len(text) > maxQuestionLen {
		// State unchanged so the user can resubmit shorter text.
		b.transport.SendMessage(chatID, textQuestionTooLong, nil)
		return
	}

	b.must(b.store.CreateQuestion(chatID, "@"+username+": "+text))
	b.must(b.store.SetState(chatID, models.StateAwaitingQuestion, false))

	b.logger.Info("question created",
		zap.Int64("chat_id", chatID),
		zap.String("username", username))

	b.transport.SendMessage(chatID, textQuestionSaved, b.currentKeyboard(chatID))

	if !rootAccess {
		b.transport.SendMessage(b.adminChatID, textNewQuestion, nil)
	}
}

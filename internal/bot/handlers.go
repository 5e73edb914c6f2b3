package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/odrawq/bolochagina-tgbot/internal/models"
)

// handleMessage is the unit of work for one inbound message in default mode.
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if message.Chat.Type != "private" {
		b.transport.SendMessage(chatID, textPrivateOnly, nil)
		b.transport.LeaveChat(chatID)
		return
	}

	rootAccess := chatID == b.adminChatID

	if !b.store.Exists(chatID) {
		b.must(b.store.Create(chatID))
		b.logger.Info("new user appeared", zap.Int64("chat_id", chatID))
	}

	username := message.Chat.UserName

	if b.store.GetState(chatID, models.StateAwaitingQuestion) {
		b.handleQuestion(chatID, rootAccess, username, message.Text)
	} else {
		b.handleCommand(chatID, rootAccess, username, message.Text)
	}
}

// handleMessageInMaintenance short-circuits every message to one fixed reply
// and touches no persistence.
func (b *Bot) handleMessageInMaintenance(message *tgbotapi.Message) {
	b.transport.SendMessage(message.Chat.ID, textMaintenance, nil)
}

// handleCallbackQueryInMaintenance acknowledges the query and sends the same
// fixed reply.
func (b *Bot) handleCallbackQueryInMaintenance(query *tgbotapi.CallbackQuery) {
	b.transport.AnswerCallback(query.ID)
	b.transport.SendMessage(query.From.ID, textMaintenance, nil)
}

package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/odrawq/bolochagina-tgbot/internal/models"
)

var faqKeyboard = tgbotapi.NewInlineKeyboardMarkup(
	tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Фурнитура", "fittings")),
	tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Материалы", "materials")),
	tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Крепёж", "fasteners")),
	tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Кромка", "edge_band")),
	tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Функции проектирования", "design_functions")),
	tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Копирование", "copying")),
	tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Количество креплений", "fastener_count")),
)

// mainKeyboard is shown to users who are idle and have no open question.
var mainKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(labelFAQ),
		tgbotapi.NewKeyboardButton(labelAsk),
	),
)

// questionKeyboard is shown while the user has an open question: asking a
// second one is not offered.
var questionKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(labelFAQ)),
)

// cancelKeyboard is shown while the bot is waiting for question text.
var cancelKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(labelCancel)),
)

// noKeyboard removes the reply keyboard from the client.
var noKeyboard = tgbotapi.NewRemoveKeyboard(false)

// currentKeyboard picks the reply keyboard matching the chat's stored state.
func (b *Bot) currentKeyboard(chatID int64) interface{} {
	if b.store.HasQuestion(chatID) {
		return questionKeyboard
	}
	if b.store.GetState(chatID, models.StateAwaitingQuestion) {
		return cancelKeyboard
	}
	return mainKeyboard
}

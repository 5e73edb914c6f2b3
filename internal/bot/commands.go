package bot

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/odrawq/bolochagina-tgbot/internal/models"
)

// handleCommand routes Idle-state text. Exact labels are checked before the
// /rm prefix; anything left over is an unknown action.
func (b *Bot) handleCommand(chatID int64, rootAccess bool, username, text string) {
	if text == "" {
		b.transport.SendMessage(chatID, textTextOnly, nil)
		return
	}

	switch text {
	case labelFAQ:
		b.handleFAQCommand(chatID)
	case labelAsk:
		b.handleAskCommand(chatID, username)
	case cmdStart:
		b.handleStartCommand(chatID, rootAccess, username)
	case cmdList:
		b.handleListCommand(chatID, rootAccess)
	default:
		if strings.HasPrefix(text, cmdRemove) {
			b.handleRemoveCommand(chatID, rootAccess, text[len(cmdRemove):])
		} else {
			b.transport.SendMessage(chatID, textUnknownAction, nil)
		}
	}
}

func (b *Bot) handleFAQCommand(chatID int64) {
	b.transport.SendMessage(chatID, textFAQPrompt, faqKeyboard)
}

func (b *Bot) handleAskCommand(chatID int64, username string) {
	if b.store.HasQuestion(chatID) {
		b.transport.SendMessage(chatID, textAlreadyAsked, nil)
		return
	}
	if username == "" {
		b.transport.SendMessage(chatID, textNeedUsername, nil)
		return
	}

	b.must(b.store.SetState(chatID, models.StateAwaitingQuestion, true))
	b.transport.SendMessage(chatID, textAskPrompt, b.currentKeyboard(chatID))
}

func (b *Bot) handleStartCommand(chatID int64, rootAccess bool, username string) {
	greeting := textGreeting
	if username != "" {
		greeting += ", @" + username
	}
	b.transport.SendMessage(chatID, greeting, b.currentKeyboard(chatID))

	if rootAccess {
		b.transport.SendMessage(b.adminChatID, textAdminHelp, nil)
	}
}

// handleListCommand sends one message per pending question to the
// administrator. All but the last one carry keyboard-removing markup: the
// final message is the one that leaves the administrator's live keyboard on
// screen, and that ordering is deliberate.
func (b *Bot) handleListCommand(chatID int64, rootAccess bool) {
	if !rootAccess {
		b.transport.SendMessage(chatID, textNoPermission, nil)
		return
	}

	questions := b.store.ListQuestions()
	if len(questions) == 0 {
		b.transport.SendMessage(b.adminChatID, textNoQuestions, nil)
		return
	}

	for i, q := range questions {
		var markup interface{} = noKeyboard
		if i == len(questions)-1 {
			markup = b.currentKeyboard(b.adminChatID)
		}
		b.transport.SendMessage(b.adminChatID, fmt.Sprintf("(%d) %s", q.ChatID, q.Text), markup)
	}
}

func (b *Bot) handleRemoveCommand(chatID int64, rootAccess bool, arg string) {
	if !rootAccess {
		b.transport.SendMessage(chatID, textNoPermission, nil)
		return
	}

	arg = strings.TrimLeft(arg, " ")
	if arg == "" {
		b.transport.SendMessage(b.adminChatID, textNoChatID, nil)
		return
	}

	targetChatID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		b.transport.SendMessage(b.adminChatID, textBadChatID, nil)
		return
	}

	if !b.store.Exists(targetChatID) {
		b.transport.SendMessage(b.adminChatID, textNoSuchUser, nil)
		return
	}
	if !b.store.HasQuestion(targetChatID) {
		b.transport.SendMessage(b.adminChatID, textUserHasNoQuestion, nil)
		return
	}

	b.must(b.store.DeleteQuestion(targetChatID))

	b.logger.Info("question removed",
		zap.Int64("admin_chat_id", b.adminChatID),
		zap.Int64("chat_id", targetChatID))

	if chatID != targetChatID {
		b.transport.SendMessage(targetChatID, textQuestionResolved, b.currentKeyboard(targetChatID))
	}
	b.transport.SendMessage(b.adminChatID, textQuestionRemoved, b.currentKeyboard(b.adminChatID))
}

// Package telegram wraps the Bot API client with the bounded-retry,
// fire-and-forget call semantics the dispatcher relies on.
package telegram

import (
	"fmt"
	"net"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	connectTimeout  = 15 * time.Second
	responseTimeout = 30 * time.Second

	// maxAttempts bounds every API call, polls and sends alike.
	maxAttempts = 3
)

// Client issues Bot API calls with a connect timeout, a total-response
// timeout and a fixed retry budget. It holds no mutable state, so a single
// Client is shared by the dispatcher and all units of work.
type Client struct {
	api         *tgbotapi.BotAPI
	logger      *zap.Logger
	pollTimeout int
}

// New authenticates against the Bot API and returns a ready client.
// pollTimeout is the server-side long-poll window in seconds.
func New(token string, pollTimeout int, logger *zap.Logger) (*Client, error) {
	httpClient := &http.Client{
		// The long poll holds the connection open for pollTimeout seconds
		// before the response even starts, so the overall deadline must
		// sit above it.
		Timeout: time.Duration(pollTimeout)*time.Second + responseTimeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DialContext:         (&net.Dialer{Timeout: connectTimeout}).DialContext,
			TLSHandshakeTimeout: connectTimeout,
			ForceAttemptHTTP2:   true,
		},
	}

	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("authenticate bot: %w", err)
	}

	logger.Info("telegram client ready", zap.String("bot_username", api.Self.UserName))

	return &Client{api: api, logger: logger, pollTimeout: pollTimeout}, nil
}

// FetchUpdates long-polls for the next batch of updates starting at offset.
// A transport failure is retried up to the attempt budget and then surfaces
// as an empty batch with a nil error; the caller simply polls again. A
// response that cannot be decoded is returned as an error: the caller cannot
// tell transient corruption from a breaking API change and must abort
// instead of looping on garbage.
func (c *Client) FetchUpdates(offset int64) ([]tgbotapi.Update, error) {
	cfg := tgbotapi.NewUpdate(int(offset))
	cfg.Timeout = c.pollTimeout

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		updates, err := c.api.GetUpdates(cfg)
		if err == nil {
			return updates, nil
		}
		if !isTransient(err) {
			return nil, fmt.Errorf("decode updates response: %w", err)
		}
		lastErr = err
		c.logger.Debug("getUpdates failed",
			zap.Int("attempt", attempt),
			zap.Error(err))
	}

	c.logger.Warn("getUpdates gave up for this cycle", zap.Error(lastErr))
	return nil, nil
}

// SendMessage delivers text to a chat. markup is an optional pre-built reply
// markup passed through to the API unmodified; the library form-encodes the
// text. Residual failure after the retry budget is logged and dropped.
func (c *Client) SendMessage(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	c.fireAndForget("sendMessage", msg)
}

// AnswerCallback acknowledges a callback query so the client stops showing
// its loading state.
func (c *Client) AnswerCallback(id string) {
	c.fireAndForget("answerCallbackQuery", tgbotapi.NewCallback(id, ""))
}

// LeaveChat makes the bot leave the given chat.
func (c *Client) LeaveChat(chatID int64) {
	c.fireAndForget("leaveChat", tgbotapi.LeaveChatConfig{ChatID: chatID})
}

func (c *Client) fireAndForget(method string, payload tgbotapi.Chattable) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		_, err := c.api.Request(payload)
		if err == nil {
			return
		}
		lastErr = err
		if !isTransient(err) {
			break
		}
	}
	c.logger.Warn("dropped outbound call",
		zap.String("method", method),
		zap.Error(lastErr))
}

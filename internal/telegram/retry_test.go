package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/url"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestIsTransient(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		transient bool
	}{
		{
			name:      "nil error",
			err:       nil,
			transient: false,
		},
		{
			name:      "api rejection",
			err:       &tgbotapi.Error{Code: 429, Message: "Too Many Requests"},
			transient: true,
		},
		{
			name:      "plain timeout",
			err:       timeoutError{},
			transient: true,
		},
		{
			name:      "dial failure",
			err:       &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			transient: true,
		},
		{
			name:      "read timeout",
			err:       &net.OpError{Op: "read", Net: "tcp", Err: timeoutError{}},
			transient: true,
		},
		{
			name:      "url error around dial failure",
			err:       &url.Error{Op: "Post", URL: "https://api.telegram.org", Err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("no route to host")}},
			transient: true,
		},
		{
			name:      "url error around connection reset",
			err:       &url.Error{Op: "Post", URL: "https://api.telegram.org", Err: errors.New("read: connection reset by peer")},
			transient: true,
		},
		{
			name:      "context cancellation",
			err:       context.Canceled,
			transient: false,
		},
		{
			name:      "truncated response body",
			err:       &json.SyntaxError{},
			transient: false,
		},
		{
			name:      "unexpected payload shape",
			err:       &json.UnmarshalTypeError{Value: "string", Field: "result"},
			transient: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.transient, isTransient(tc.err))
		})
	}
}

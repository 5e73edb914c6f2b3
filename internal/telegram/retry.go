package telegram

import (
	"errors"
	"net"
	"net/url"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// isTransient reports whether a Bot API call failed in a way that is worth
// retrying: dial and timeout failures from net/http, and API-level rejections
// (a well-formed response with ok=false). Everything else, in particular a
// response body that could not be decoded, is a protocol failure.
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() || opErr.Op == "dial" {
			return true
		}
		if nested, ok := opErr.Err.(net.Error); ok && nested.Timeout() {
			return true
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		// A url.Error means the request itself failed; the body was never
		// decoded, so it cannot be a protocol violation.
		return true
	}

	return false
}

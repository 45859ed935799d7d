package errx

import (
	"errors"
	"fmt"
)

// ErrUnexpectedResponse marks a server response that could not be parsed. It is
// reported to the user as-is; nothing retries on it automatically.
var ErrUnexpectedResponse = errors.New("unexpected response from server, please retry or report")

// Unexpected wraps a parse failure for the named operation with ErrUnexpectedResponse.
func Unexpected(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w (%w)", what, ErrUnexpectedResponse, err)
}

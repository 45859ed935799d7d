// Package parser turns raw LeetCode responses into model records.
//
// Every parser distinguishes three outcomes: a hard failure (an error wrapping
// ErrMalformed), a soft-null success where the platform deliberately withheld
// data (a false "ok" result, or an empty list), and a full success.
// Parsers do no I/O and keep no state, so one Parser may be shared freely.
package parser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"leetnorm/internal/jsonx"
)

// ErrMalformed marks a response whose shape did not match what the parser requires.
var ErrMalformed = errors.New("malformed response")

// Parser carries the logger used at the parse boundary.
type Parser struct {
	log *slog.Logger
}

// New returns a Parser that logs to logger; a nil logger discards.
func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{log: logger}
}

func malformed(what string, err error) error {
	return fmt.Errorf("%s: %w: %w", what, ErrMalformed, err)
}

// fields accumulates the first failed required lookup so a record can be built in
// a single composite literal and checked once.
type fields struct {
	err error
}

func (f *fields) keep(err error) {
	if f.err == nil {
		f.err = err
	}
}

func (f *fields) str(v jsonx.Value) string {
	s, err := v.RequireString()
	f.keep(err)
	return s
}

func (f *fields) int(v jsonx.Value) int {
	n, err := v.RequireInt()
	f.keep(err)
	return n
}

func (f *fields) int64(v jsonx.Value) int64 {
	n, err := v.RequireInt64()
	f.keep(err)
	return n
}

func (f *fields) float(v jsonx.Value) float64 {
	n, err := v.RequireFloat()
	f.keep(err)
	return n
}

func (f *fields) bool(v jsonx.Value) bool {
	b, err := v.RequireBool()
	f.keep(err)
	return b
}

func (f *fields) intText(v jsonx.Value) int {
	n, err := v.RequireIntText()
	f.keep(err)
	return n
}

// textOr returns v's text, or def when v is absent, null or not text.
func textOr(v jsonx.Value, def string) string {
	if s, ok := v.Text(); ok {
		return s
	}
	return def
}

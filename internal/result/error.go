package result

import (
	"strings"
	"unicode/utf8"
)

// ExcerptLength is the maximum number of characters of input quoted in an
// error message.
const ExcerptLength = 50

// Error is a tokenizing or parsing failure. Near holds up to ExcerptLength
// characters of the input that was not yet consumed when the failure
// occurred.
type Error struct {
	Message string
	Near    string
	Cause   error
}

// New builds an error for message with an excerpt taken from rest.
func New(message, rest string) *Error {
	return &Error{Message: message, Near: Excerpt(rest)}
}

// Wrap builds an error that also carries an underlying cause.
func Wrap(message, rest string, cause error) *Error {
	return &Error{Message: message, Near: Excerpt(rest), Cause: cause}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	b.WriteString(", near \"")
	b.WriteString(escapeExcerpt(e.Near))
	b.WriteByte('"')
	return b.String()
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Excerpt truncates text to at most ExcerptLength characters.
func Excerpt(text string) string {
	if utf8.RuneCountInString(text) <= ExcerptLength {
		return text
	}
	n := 0
	for i := range text {
		if n == ExcerptLength {
			return text[:i]
		}
		n++
	}
	return text
}

func escapeExcerpt(s string) string {
	if !strings.ContainsAny(s, "\r\n\"") {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

package errors

import (
	"unicode"
	"unicode/utf8"
)

// ValidateSymbol checks that s is exactly one printable character.
// The name identifies the symbol in the error message (e.g. "border").
//
// Control characters are rejected because a newline or carriage return
// inside a row would break the fixed-width grid.
func ValidateSymbol(name, s string) error {
	if s == "" {
		return New(ErrCodeInvalidCharacters, "%s character cannot be empty", name)
	}
	if utf8.RuneCountInString(s) != 1 {
		return New(ErrCodeInvalidCharacters, "%s character must be a single character, got %q", name, s)
	}

	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return New(ErrCodeInvalidCharacters, "%s character is not valid UTF-8", name)
	}
	if unicode.IsControl(r) {
		return New(ErrCodeInvalidCharacters, "%s character cannot be a control character", name)
	}
	return nil
}

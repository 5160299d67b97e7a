package flag

import (
	"strconv"
	"strings"

	apperr "github.com/matzehuels/asciiflag/pkg/errors"
)

// MaxSize is the largest accepted flag size. A flag of this size is
// 3002 x 2002 characters, about 6 MB of text.
const MaxSize = 1000

// Validation messages, in the order the checks run.
const (
	msgInvalidType = `The input argument "n" is of invalid type (should be "int".)`
	msgNotEven     = `The input argument "n" is not even integer number.`
	msgNegative    = `The input argument "n" is not positive integer number.`
	msgTooLarge    = `The input argument "n" is greater than %d.`
)

// Validate checks that n is a usable flag size.
// Parity is checked before sign, so -3 reports the parity failure.
func Validate(n int) error {
	switch {
	case n%2 != 0:
		return apperr.New(apperr.ErrCodeInvalidArgument, msgNotEven)
	case n < 0:
		return apperr.New(apperr.ErrCodeInvalidArgument, msgNegative)
	case n > MaxSize:
		return apperr.New(apperr.ErrCodeInvalidArgument, msgTooLarge, MaxSize)
	}
	return nil
}

// ParseSize converts a textual size into a validated int.
// Surrounding whitespace is ignored. Anything strconv.Atoi rejects fails the
// type check; the parsed value then goes through [Validate].
func ParseSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, apperr.Wrap(apperr.ErrCodeInvalidArgument, err, msgInvalidType)
	}
	if err := Validate(n); err != nil {
		return 0, err
	}
	return n, nil
}

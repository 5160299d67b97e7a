package flag

import (
	"unicode/utf8"

	apperr "github.com/matzehuels/asciiflag/pkg/errors"
)

// Characters is the symbol set a flag is drawn with.
// The four symbols need not be distinct.
type Characters struct {
	Border       rune // frame around the body
	Body         rune // body fill
	CircleBorder rune // emblem outline
	CircleBody   rune // emblem fill
}

// DefaultCharacters returns the classic set: '#', ' ', '*', '0'.
func DefaultCharacters() Characters {
	return Characters{
		Border:       '#',
		Body:         ' ',
		CircleBorder: '*',
		CircleBody:   '0',
	}
}

// ParseCharacters builds a Characters value from a four-character string in
// the order border, body, circle border, circle body. "# *0" yields the
// default set.
func ParseCharacters(s string) (Characters, error) {
	if utf8.RuneCountInString(s) != 4 {
		return Characters{}, apperr.New(apperr.ErrCodeInvalidCharacters,
			"character set must have exactly 4 characters (border, body, circle border, circle body), got %q", s)
	}

	names := [4]string{"border", "body", "circle border", "circle body"}
	var rs [4]rune
	i := 0
	for _, r := range s {
		if err := apperr.ValidateSymbol(names[i], string(r)); err != nil {
			return Characters{}, err
		}
		rs[i] = r
		i++
	}
	return Characters{Border: rs[0], Body: rs[1], CircleBorder: rs[2], CircleBody: rs[3]}, nil
}

// String returns the set in the form accepted by [ParseCharacters].
func (c Characters) String() string {
	return string([]rune{c.Border, c.Body, c.CircleBorder, c.CircleBody})
}

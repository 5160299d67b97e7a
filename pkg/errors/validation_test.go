package errors

import (
	"testing"
)

func TestValidateSymbol(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"hash", "#", false},
		{"space", " ", false},
		{"digit", "0", false},
		{"multibyte", "█", false},

		{"empty", "", true},
		{"two characters", "##", true},
		{"newline", "\n", true},
		{"carriage return", "\r", true},
		{"tab", "\t", true},
		{"null byte", "\x00", true},
		{"invalid utf8", "\xff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSymbol("border", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSymbol(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidCharacters) {
				t.Errorf("ValidateSymbol(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidCharacters)
			}
		})
	}
}

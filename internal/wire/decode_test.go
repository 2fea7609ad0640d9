package wire

import (
	"errors"
	"testing"
)

func TestDecodeIndex(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    int
		wantErr bool
	}{
		{"single digit", []byte("0"), 0, false},
		{"multi digit", []byte("42"), 42, false},
		{"max digits", []byte("99999"), 99999, false},
		{"leading zeros", []byte("007"), 7, false},
		{"empty", []byte{}, 0, true},
		{"nil", nil, 0, true},
		{"too long", []byte("123456"), 0, true},
		{"sign", []byte("-1"), 0, true},
		{"plus sign", []byte("+1"), 0, true},
		{"letters", []byte("abc"), 0, true},
		{"mixed", []byte("12a"), 0, true},
		{"whitespace", []byte(" 1"), 0, true},
		{"trailing newline", []byte("1\n"), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeIndex(tt.payload)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("DecodeIndex(%q) error = %v, want ErrMalformed", tt.payload, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeIndex(%q) error = %v", tt.payload, err)
			}
			if got != tt.want {
				t.Errorf("DecodeIndex(%q) = %d, want %d", tt.payload, got, tt.want)
			}
		})
	}
}

func TestDecodeCategory(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    uint8
		wantErr bool
	}{
		{"two digits", "&class=64", 64, false},
		{"three digits", "&class=130", 130, false},
		{"max code", "&class=255", 255, false},
		{"extra digit ignored", "&class=1304", 130, false},
		{"empty", "", 0, true},
		{"too short", "&class=1", 0, true},
		{"too long", "&class=13045", 0, true},
		{"wrong key", "&klass=130", 0, true},
		{"missing ampersand", "class=1300", 0, true},
		{"non digit value", "&class=abc", 0, true},
		{"digit then letter", "&class=13a", 0, true},
		{"code above byte range", "&class=300", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCategory(tt.query)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("DecodeCategory(%q) error = %v, want ErrMalformed", tt.query, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeCategory(%q) error = %v", tt.query, err)
			}
			if got != tt.want {
				t.Errorf("DecodeCategory(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

package wire

// Selector shape constants.
const (
	// MaxIndexDigits is the maximum number of decimal digits in a
	// positional index selector.
	MaxIndexDigits = 5

	// categoryKeyPrefix is the fixed key a category query must carry, in
	// the compact ampersand-prefixed form constrained transports produce.
	categoryKeyPrefix = "&class="

	// minCategoryQueryLen and maxCategoryQueryLen bound the total query
	// length for the fixed key: prefix plus two to four digit positions,
	// of which at most maxCategoryDigits are consumed.
	minCategoryQueryLen = 9
	maxCategoryQueryLen = 11

	// maxCategoryDigits is the maximum number of digits extracted for a
	// category code.
	maxCategoryDigits = 3
)

// DecodeIndex parses a zero-based device index from a request payload.
//
// The payload must be 1 to MaxIndexDigits ASCII decimal digits; no sign, no
// separators. Oversized payloads are rejected before any parsing is
// attempted. The returned index is syntactically valid only; it may still
// reference nothing.
func DecodeIndex(payload []byte) (int, error) {
	if len(payload) == 0 || len(payload) > MaxIndexDigits {
		return 0, ErrMalformed
	}

	idx := 0
	for _, b := range payload {
		if b < '0' || b > '9' {
			return 0, ErrMalformed
		}
		idx = idx*10 + int(b-'0')
	}
	return idx, nil
}

// DecodeCategory parses a category code from a compact query string.
//
// The query must be the single fixed key-value pair "&class=" followed by
// 1 to 3 decimal digits. The total length is checked first: anything outside
// [minCategoryQueryLen, maxCategoryQueryLen] is rejected without inspecting
// the content. At most maxCategoryDigits digits are consumed after the key.
func DecodeCategory(query string) (uint8, error) {
	if len(query) < minCategoryQueryLen || len(query) > maxCategoryQueryLen {
		return 0, ErrMalformed
	}
	if query[:len(categoryKeyPrefix)] != categoryKeyPrefix {
		return 0, ErrMalformed
	}

	digits := query[len(categoryKeyPrefix):]
	if len(digits) > maxCategoryDigits {
		digits = digits[:maxCategoryDigits]
	}

	code := 0
	for i := 0; i < len(digits); i++ {
		b := digits[i]
		if b < '0' || b > '9' {
			return 0, ErrMalformed
		}
		code = code*10 + int(b-'0')
	}
	if code > 0xFF {
		return 0, ErrMalformed
	}
	return uint8(code), nil
}

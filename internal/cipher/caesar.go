// Package cipher implements the Caesar substitution cipher over the ASCII alphabet.
package cipher

const alphabetSize = 26

// Direction selects whether Transform shifts letters forward or backward.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "encode"
	case Backward:
		return "decode"
	default:
		return "unknown"
	}
}

// Normalize reduces shift into [0,26).
func Normalize(shift int) int {
	n := shift % alphabetSize
	if n < 0 {
		n += alphabetSize
	}
	return n
}

// Encode shifts every ASCII letter in text forward by shift positions,
// wrapping at the end of the alphabet. Case is preserved and every other
// rune is copied unchanged.
func Encode(text string, shift int) string {
	return rotate(text, Normalize(shift))
}

// Decode reverses Encode for the same shift.
func Decode(text string, shift int) string {
	// Negate after normalizing so math.MinInt cannot overflow.
	return rotate(text, Normalize(-Normalize(shift)))
}

// Transform dispatches to Encode or Decode.
func Transform(text string, shift int, dir Direction) string {
	if dir == Backward {
		return Decode(text, shift)
	}
	return Encode(text, shift)
}

// rotate works on bytes: ASCII letters never occur inside a multi-byte UTF-8
// sequence, and malformed input is passed through untouched.
func rotate(text string, n int) string {
	if n == 0 {
		return text
	}

	out := []byte(text)
	for i, c := range out {
		switch {
		case c >= 'A' && c <= 'Z':
			out[i] = 'A' + (c-'A'+byte(n))%alphabetSize
		case c >= 'a' && c <= 'z':
			out[i] = 'a' + (c-'a'+byte(n))%alphabetSize
		}
	}

	return string(out)
}

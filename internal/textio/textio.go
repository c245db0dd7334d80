// Package textio reads and writes the UTF-8 text files the editor works on.
package textio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// MaxFileSize caps how much a single load will read into memory.
const MaxFileSize = 16 << 20

var (
	ErrTooLarge    = errors.New("file exceeds 16 MiB limit")
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8 text")
)

// Extensions offered by the open dialog filter.
var Extensions = []string{".txt"}

// Load reads r fully as UTF-8 text, dropping a leading byte order mark.
// UTF-16 input carrying a BOM is converted to UTF-8.
func Load(r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	if len(raw) > MaxFileSize {
		return "", ErrTooLarge
	}
	if !hasUTF16BOM(raw) && !utf8.Valid(raw) {
		return "", ErrInvalidUTF8
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode text: %w", err)
	}

	return string(decoded), nil
}

func hasUTF16BOM(b []byte) bool {
	return bytes.HasPrefix(b, []byte{0xFE, 0xFF}) || bytes.HasPrefix(b, []byte{0xFF, 0xFE})
}

// Save writes text to w unchanged.
func Save(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	return nil
}

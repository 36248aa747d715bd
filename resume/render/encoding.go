package render

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnencodable reports text the built-in PDF fonts cannot represent. The
// core fonts are encoded as Windows-1252, so anything outside it would be
// written as a placeholder glyph.
var ErrUnencodable = errors.New("text not encodable in pdf font")

// checkEncodable returns an error naming the first rune of s that has no
// Windows-1252 code point.
func checkEncodable(s string) error {
	for i, r := range s {
		if r < utf8.RuneSelf {
			continue
		}
		if r == utf8.RuneError {
			return fmt.Errorf("%w: invalid utf-8 at byte %d", ErrUnencodable, i)
		}
		// C1 controls round-trip through the charmap but have no glyph.
		if r >= 0x80 && r <= 0x9f {
			return fmt.Errorf("%w: %U at byte %d", ErrUnencodable, r, i)
		}
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return fmt.Errorf("%w: %q (%U) at byte %d", ErrUnencodable, r, r, i)
		}
	}
	return nil
}

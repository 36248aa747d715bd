package util

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidFileName is returned when nothing usable remains of a file name.
var ErrInvalidFileName = errors.New("invalid file name")

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFileName reduces an uploaded file name to a flat, ASCII-only name.
// Path separators become underscores and leading dots are removed, so the
// result never escapes the directory it is joined to.
func SanitizeFileName(name string) (string, error) {
	s := strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	s = strings.Join(strings.Fields(s), "_")
	s = unsafeFileChars.ReplaceAllString(s, "")
	s = strings.Trim(s, "._")
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}

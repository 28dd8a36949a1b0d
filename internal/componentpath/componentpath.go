// Package componentpath parses the component path typed by the user.
package componentpath

import (
	"regexp"
	"strings"

	"github.com/conneroisu/rfs/internal/errors"
)

// Letters, digits, underscore, whitespace, hyphen and both separators.
var componentPathRegExp = regexp.MustCompile(`^[\w\s\-/\\]+$`)

var whitespaceRegExp = regexp.MustCompile(`\s+`)

// Path is a normalized component path: folder segments followed by one
// candidate base name, which may be empty.
type Path struct {
	segments []string
}

// Parse validates and normalizes raw. Both "/" and "\" separate segments and
// all whitespace is removed, so "user /profile" yields user/profile.
func Parse(raw string) (Path, error) {
	if strings.TrimSpace(raw) == "" {
		return Path{}, errors.ErrEmptyInput()
	}
	if !componentPathRegExp.MatchString(raw) {
		return Path{}, errors.ErrInvalidComponentPath(raw)
	}

	cleaned := whitespaceRegExp.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, `\`, "/")

	parts := strings.Split(cleaned, "/")
	segments := make([]string, 0, len(parts))
	for i, part := range parts {
		// an empty final part is kept: it means "no name given"
		if part == "" && i != len(parts)-1 {
			continue
		}
		segments = append(segments, part)
	}

	return Path{segments: segments}, nil
}

// Segments returns a copy of all segments, base name included.
func (p Path) Segments() []string {
	return append([]string(nil), p.segments...)
}

// Folders returns every segment before the base name.
func (p Path) Folders() []string {
	if len(p.segments) == 0 {
		return nil
	}
	return append([]string(nil), p.segments[:len(p.segments)-1]...)
}

// Base returns the candidate base name (the last segment).
func (p Path) Base() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// String joins the segments with "/".
func (p Path) String() string {
	return strings.Join(p.segments, "/")
}

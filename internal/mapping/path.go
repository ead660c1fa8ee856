package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// PathSegment is one field name of a dotted path.
type PathSegment struct {
	Name string
}

// FieldPath is a parsed path like "Obstacles.Obstacles".
type FieldPath struct {
	Segments []PathSegment
}

// ParsePath parses a dotted field path. Every segment must be a Go identifier.
func ParsePath(path string) (FieldPath, error) {
	if path == "" {
		return FieldPath{}, errors.New("empty path")
	}

	var segments []PathSegment

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return FieldPath{}, fmt.Errorf("invalid path %q: empty segment", path)
		}

		if !IsIdent(part) {
			return FieldPath{}, fmt.Errorf("invalid path %q: invalid identifier %q", path, part)
		}

		segments = append(segments, PathSegment{Name: part})
	}

	return FieldPath{Segments: segments}, nil
}

// String returns the path in dotted form.
func (p FieldPath) String() string {
	names := make([]string, len(p.Segments))
	for i, seg := range p.Segments {
		names[i] = seg.Name
	}

	return strings.Join(names, ".")
}

// IsSimple returns true for a single-segment path.
func (p FieldPath) IsSimple() bool {
	return len(p.Segments) == 1
}

// Root returns the first segment's field name.
func (p FieldPath) Root() string {
	if len(p.Segments) == 0 {
		return ""
	}

	return p.Segments[0].Name
}

// Parent returns the path without its last segment.
func (p FieldPath) Parent() FieldPath {
	if len(p.Segments) <= 1 {
		return FieldPath{}
	}

	return FieldPath{Segments: p.Segments[:len(p.Segments)-1]}
}

// IsEmpty returns true if the path has no segments.
func (p FieldPath) IsEmpty() bool {
	return len(p.Segments) == 0
}

// IsIdent reports whether s is a valid Go identifier.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || isLetter(r):
		case i > 0 && isDigit(r):
		default:
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

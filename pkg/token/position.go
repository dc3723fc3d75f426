// Package token provides source positions and spans used to anchor diagnostics
// and rewrites to the host's syntax tree.
package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Position represents a location in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before reports whether p sorts before q.
// Positions with equal line and column are ordered by offset.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	if p.Column != q.Column {
		return p.Column < q.Column
	}
	return p.Offset < q.Offset
}

// String returns "line:column".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Span represents a range in source code.
type Span struct {
	Start Position
	End   Position
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// String returns the span as "line:col-line:col", or "" for an invalid span.
func (s Span) String() string {
	if !s.IsValid() {
		return ""
	}
	return s.Start.String() + "-" + s.End.String()
}

// MarshalText encodes the span in its String form so snapshots stay compact.
func (s Span) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses "line:col-line:col". An empty input yields the zero span.
func (s *Span) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if raw == "" {
		*s = Span{}
		return nil
	}
	start, end, ok := strings.Cut(raw, "-")
	if !ok {
		return fmt.Errorf("invalid span %q: want line:col-line:col", raw)
	}
	sp, err := parsePosition(start)
	if err != nil {
		return fmt.Errorf("invalid span %q: %w", raw, err)
	}
	ep, err := parsePosition(end)
	if err != nil {
		return fmt.Errorf("invalid span %q: %w", raw, err)
	}
	*s = Span{Start: sp, End: ep}
	return nil
}

func parsePosition(s string) (Position, error) {
	lineStr, colStr, ok := strings.Cut(s, ":")
	if !ok {
		return Position{}, fmt.Errorf("position %q: missing column", s)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return Position{}, fmt.Errorf("position %q: %w", s, err)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return Position{}, fmt.Errorf("position %q: %w", s, err)
	}
	return Position{Line: line, Column: col}, nil
}

package taibf

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

var (
	ErrInvalidEncoding    = errors.New("invalid UTF-8")
	ErrUnmatchedBracket   = errors.New("unmatched bracket")
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
)

// Pos is 1-based.
type Pos struct {
	Line   int
	Column int
}

// Source is a named program text kept for error reports.
type Source struct {
	Name  string
	lines []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:  name,
		lines: strings.Split(content, "\n"),
	}
}

// Line returns the n-th line, counting from 1.
func (s *Source) Line(n int) (string, bool) {
	if n < 1 || n > len(s.lines) {
		return "", false
	}
	return s.lines[n-1], true
}

// LoadError locates a load failure inside the program source.
type LoadError struct {
	Err    error
	Pos    Pos
	Source *Source
}

func (l LoadError) Error() string {
	if l.Source == nil {
		return fmt.Sprintf("%s at %d:%d", l.Err.Error(), l.Pos.Line, l.Pos.Column)
	}
	msg := fmt.Sprintf("%s at %s:%d:%d\n", l.Err.Error(), l.Source.Name, l.Pos.Line, l.Pos.Column)
	line, ok := l.Source.Line(l.Pos.Line)
	if !ok || !utf8.ValidString(line) {
		// invalid bytes would garble the marker
		return msg
	}
	return msg + line + "\n" + marker(line, l.Pos.Column) + "\n"
}

func (l LoadError) Unwrap() error {
	return l.Err
}

// marker pads up to column col of line and points at it.
// Tabs are kept so the marker lines up under any tab width.
func marker(line string, col int) string {
	pad := make([]byte, 0, col)
	for i, r := range []rune(line) {
		if i >= col-1 {
			break
		}
		switch {
		case r == '\t':
			pad = append(pad, '\t')
		case cellWidth(r) == 2:
			pad = append(pad, ' ', ' ')
		default:
			pad = append(pad, ' ')
		}
	}
	return string(pad) + "^"
}

func cellWidth(r rune) int {
	props, _ := width.LookupRune(r)
	switch props.Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

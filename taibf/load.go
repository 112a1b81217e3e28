package taibf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"unicode/utf8"
)

// InputSeparator ends the code section; the rest of the text is program input.
const InputSeparator = '!'

// Load parses program text into an instruction tree.
// No partial tree is returned on error.
func Load(name string, src string) (*Program, error) {
	source := NewSource(name, src)

	if pos, ok := invalidUTF8Pos(src); ok {
		return nil, LoadError{
			Err:    ErrInvalidEncoding,
			Pos:    pos,
			Source: source,
		}
	}

	code, input, err := splitInput(src, source)
	if err != nil {
		return nil, err
	}

	p := &parser{
		code: code,
	}
	return &Program{
		Root:  p.parseSeq(),
		Input: input,
	}, nil
}

// LoadFile loads a program from a file, ignoring a leading "#!" line.
func LoadFile(path string) (*Program, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(content, []byte("#!")) {
		if idx := bytes.IndexByte(content, '\n'); idx >= 0 {
			// keep the newline so positions still match the file
			content = content[idx:]
		} else {
			content = nil
		}
	}
	return Load(path, string(content))
}

// LoadURL fetches program text with client and loads it.
func LoadURL(ctx context.Context, client *http.Client, url string) (*Program, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return Load(url, string(content))
}

func invalidUTF8Pos(src string) (Pos, bool) {
	pos := Pos{
		Line:   1,
		Column: 1,
	}
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == utf8.RuneError && size <= 1 {
			return pos, true
		}
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
		i += size
	}
	return pos, false
}

// splitInput checks bracket pairing over the code section and splits off the inline input.
func splitInput(src string, source *Source) (code []rune, input string, err error) {
	pos := Pos{
		Line:   1,
		Column: 1,
	}
	var opens []Pos
	for i, r := range src {
		if r == InputSeparator {
			input = src[i+utf8.RuneLen(r):]
			break
		}
		switch r {
		case '[':
			opens = append(opens, pos)
		case ']':
			if len(opens) == 0 {
				return nil, "", LoadError{
					Err:    ErrUnmatchedBracket,
					Pos:    pos,
					Source: source,
				}
			}
			opens = opens[:len(opens)-1]
		}
		code = append(code, r)
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	if len(opens) > 0 {
		return nil, "", LoadError{
			Err:    ErrUnbalancedBrackets,
			Pos:    opens[len(opens)-1],
			Source: source,
		}
	}
	return code, input, nil
}

type parser struct {
	code []rune
	pos  int
}

// parseSeq reads a node chain up to the end of code or a loop end.
// A chain without any op is a single no-op node.
func (p *parser) parseSeq() *Node {
	var first, last *Node
	add := func(node *Node) {
		if first == nil {
			first = node
		} else {
			last.Next = node
		}
		last = node
	}

	for p.pos < len(p.code) {
		r := p.code[p.pos]
		p.pos++
		op, ok := OpFromSymbol(r)
		if !ok {
			continue
		}

		switch op {

		case OpLoopBegin:
			node := &Node{
				Op:    OpLoopBegin,
				Count: 1,
			}
			node.Loop = p.parseSeq()
			add(node)

		case OpLoopEnd:
			add(&Node{
				Op:    OpLoopEnd,
				Count: 1,
			})
			return first

		default:
			count := 1
			for p.pos < len(p.code) && p.code[p.pos] == r {
				count++
				p.pos++
			}
			add(&Node{
				Op:    op,
				Count: count,
			})

		}
	}

	if first == nil {
		return &Node{
			Op:    OpNone,
			Count: 1,
		}
	}
	return first
}

package taibf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Host performs I/O on behalf of a running program.
// Calls are synchronous and happen on the goroutine that called Run.
// A Host must not call Run of the interpreter it serves.
type Host interface {
	// RequestInput returns the next line of input, or io.EOF when there is no more
	RequestInput() (string, error)
	RequestOutput(value byte) error
	RequestDebug(tape *Tape) error
}

// HostFuncs adapts functions to Host.
// A nil Input reports end of input, a nil Output discards, a nil Debug does nothing.
type HostFuncs struct {
	Input  func() (string, error)
	Output func(value byte) error
	Debug  func(tape *Tape) error
}

var _ Host = HostFuncs{}

func (h HostFuncs) RequestInput() (string, error) {
	if h.Input == nil {
		return "", io.EOF
	}
	return h.Input()
}

func (h HostFuncs) RequestOutput(value byte) error {
	if h.Output == nil {
		return nil
	}
	return h.Output(value)
}

func (h HostFuncs) RequestDebug(tape *Tape) error {
	if h.Debug == nil {
		return nil
	}
	return h.Debug(tape)
}

// StdHost reads lines from In, buffers output to Out and dumps the tape to Err.
type StdHost struct {
	in  *bufio.Reader
	out *bufio.Writer
	err io.Writer
}

var _ Host = new(StdHost)

func NewStdHost(in io.Reader, out io.Writer, err io.Writer) *StdHost {
	return &StdHost{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
		err: err,
	}
}

func (s *StdHost) RequestInput() (string, error) {
	// make pending output visible before blocking on input
	if err := s.out.Flush(); err != nil {
		return "", err
	}
	line, err := s.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

func (s *StdHost) RequestOutput(value byte) error {
	return s.out.WriteByte(value)
}

func (s *StdHost) RequestDebug(tape *Tape) error {
	if err := s.out.Flush(); err != nil {
		return err
	}
	return DumpTape(s.err, tape)
}

func (s *StdHost) Flush() error {
	return s.out.Flush()
}

// DumpTape writes the visited cells of tape to w, like "[a b <c> 0x0]".
// Printable cells are written as is, others in hex; the current cell is in angle brackets.
// The cursor is left where it was.
func DumpTape(w io.Writer, tape *Tape) error {
	tape.PushBookmark()
	defer tape.PopBookmark()

	steps := 0
	for !tape.AtLeftmost() {
		tape.MoveLeft()
		steps++
	}

	bw := bufio.NewWriter(w)
	bw.WriteByte('[')
	for {
		if steps == 0 {
			bw.WriteByte('<')
		}
		value := tape.Current()
		if value > ' ' && value < 0x7f {
			bw.WriteByte(value)
		} else {
			fmt.Fprintf(bw, "0x%X", value)
		}
		if steps == 0 {
			bw.WriteByte('>')
		}
		if tape.AtRightmost() {
			break
		}
		bw.WriteByte(' ')
		tape.MoveRight()
		steps--
	}
	bw.WriteString("]\n")
	return bw.Flush()
}

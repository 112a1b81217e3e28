package taibf

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/reusee/taibf/logs"
)

// Interpreter evaluates a Program against a Tape, delegating I/O to a Host.
// Program, Tape and Config may be shared by interpreters that never run concurrently;
// nothing here guards against concurrent use.
type Interpreter struct {
	Logger logs.Logger

	config  Config
	program *Program
	tape    *Tape
	host    Host

	// input staging, reset by each Run
	hadInput    bool
	input       string
	inputOffset int
	eofReached  bool
}

func NewInterpreter(host Host) *Interpreter {
	return &Interpreter{
		config:  DefaultConfig(),
		program: NewProgram(),
		tape:    NewTape(),
		host:    host,
	}
}

func (i *Interpreter) Config() Config {
	return i.config
}

func (i *Interpreter) SetConfig(config Config) {
	i.config = config
}

func (i *Interpreter) Program() *Program {
	return i.program
}

func (i *Interpreter) SetProgram(program *Program) {
	i.program = program
}

func (i *Interpreter) Tape() *Tape {
	return i.tape
}

func (i *Interpreter) SetTape(tape *Tape) {
	i.tape = tape
}

func (i *Interpreter) Host() Host {
	return i.host
}

func (i *Interpreter) SetHost(host Host) {
	i.host = host
}

// Run executes the current program from its root, reading its inline input first.
// It stops at the first host failure and returns it; the tape keeps the state reached so far.
func (i *Interpreter) Run() error {
	return i.run(i.program.Root, i.program.Input)
}

// RunTree executes the tree at root with no inline input.
func (i *Interpreter) RunTree(root *Node) error {
	return i.run(root, "")
}

func (i *Interpreter) run(root *Node, input string) error {
	i.input = input
	i.hadInput = input != ""
	i.inputOffset = 0
	i.eofReached = false

	host := i.host
	if host == nil {
		host = HostFuncs{}
	}

	var t0 time.Time
	if i.Logger != nil {
		t0 = time.Now()
		i.Logger.Debug("run start",
			"inline_input", i.hadInput,
			"on_eof", i.config.OnEOF.String(),
			"debug", i.config.Debug,
		)
	}

	err := i.exec(host, root)

	if i.Logger != nil {
		if err != nil {
			i.Logger.Debug("run failed", "error", err, "duration", time.Since(t0))
		} else {
			i.Logger.Debug("run done", "duration", time.Since(t0))
		}
	}

	return err
}

func (i *Interpreter) exec(host Host, node *Node) error {
	tape := i.tape
	for ; node != nil; node = node.Next {
		switch node.Op {

		case OpNone:

		case OpMoveLeft:
			tape.MoveLeftBy(node.Count)

		case OpMoveRight:
			tape.MoveRightBy(node.Count)

		case OpIncrease:
			tape.Increase(node.Count)

		case OpDecrease:
			tape.Decrease(node.Count)

		case OpLoopBegin:
			for tape.Current() != 0 {
				if err := i.exec(host, node.Loop); err != nil {
					return err
				}
			}

		case OpLoopEnd:
			return nil

		case OpRead:
			for range node.Count {
				value, ok, err := i.readByte(host)
				if err != nil {
					return err
				}
				if ok {
					tape.SetCurrent(value)
					continue
				}
				switch i.config.OnEOF {
				case OnEOFStoreZero:
					tape.SetCurrent(0)
				case OnEOFStoreEOF:
					tape.SetCurrent(EOF)
				case OnEOFDoNothing:
				}
			}

		case OpWrite:
			for range node.Count {
				if err := host.RequestOutput(tape.Current()); err != nil {
					return fmt.Errorf("request output: %w", err)
				}
			}

		case OpDumpTape:
			if !i.config.Debug {
				break
			}
			for range node.Count {
				if err := host.RequestDebug(tape); err != nil {
					return fmt.Errorf("request debug: %w", err)
				}
			}

		}
	}
	return nil
}

// readByte returns the next input byte, or ok == false at end of input.
func (i *Interpreter) readByte(host Host) (value byte, ok bool, err error) {
	if i.eofReached {
		return 0, false, nil
	}

	if i.inputOffset >= len(i.input) {
		if i.hadInput {
			i.eofReached = true
			return 0, false, nil
		}
		line, err := host.RequestInput()
		if errors.Is(err, io.EOF) {
			i.eofReached = true
			return 0, false, nil
		}
		if err != nil {
			return 0, false, fmt.Errorf("request input: %w", err)
		}
		i.input = line
		i.inputOffset = 0
		if line == "" {
			// an empty line ends the input as well
			i.eofReached = true
			return 0, false, nil
		}
	}

	value = i.input[i.inputOffset]
	i.inputOffset++
	return value, true, nil
}

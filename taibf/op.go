package taibf

import "fmt"

type Op uint8

const (
	OpNone Op = iota
	OpMoveLeft
	OpMoveRight
	OpIncrease
	OpDecrease
	OpLoopBegin
	OpLoopEnd
	OpRead
	OpWrite
	OpDumpTape

	numOps
)

var opSymbols = [numOps]rune{
	OpNone:      0,
	OpMoveLeft:  '<',
	OpMoveRight: '>',
	OpIncrease:  '+',
	OpDecrease:  '-',
	OpLoopBegin: '[',
	OpLoopEnd:   ']',
	OpRead:      ',',
	OpWrite:     '.',
	OpDumpTape:  '#',
}

var opNames = [numOps]string{
	OpNone:      "none",
	OpMoveLeft:  "move-left",
	OpMoveRight: "move-right",
	OpIncrease:  "increase",
	OpDecrease:  "decrease",
	OpLoopBegin: "loop-begin",
	OpLoopEnd:   "loop-end",
	OpRead:      "read",
	OpWrite:     "write",
	OpDumpTape:  "dump-tape",
}

func (o Op) Valid() bool {
	return o < numOps
}

// Symbol returns the source character of the op, or 0 for OpNone.
func (o Op) Symbol() rune {
	if !o.Valid() {
		return 0
	}
	return opSymbols[o]
}

func (o Op) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
	return opNames[o]
}

func OpFromSymbol(r rune) (Op, bool) {
	switch r {
	case '<':
		return OpMoveLeft, true
	case '>':
		return OpMoveRight, true
	case '+':
		return OpIncrease, true
	case '-':
		return OpDecrease, true
	case '[':
		return OpLoopBegin, true
	case ']':
		return OpLoopEnd, true
	case ',':
		return OpRead, true
	case '.':
		return OpWrite, true
	case '#':
		return OpDumpTape, true
	}
	return OpNone, false
}

package debugs

import (
	"context"
	"strings"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/taibf"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// TapTape opens a starlark REPL on the tape state. It returns when the REPL reads end of input.
type TapTape func(ctx context.Context, tape *taibf.Tape) error

func (Module) TapTape(
	logger logs.Logger,
) TapTape {
	return func(ctx context.Context, tape *taibf.Tape) error {
		globals, err := TapeGlobals(tape)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "tap start")
		defer logger.InfoContext(ctx, "tap end")
		repl.REPLOptions(fileOptions, &starlark.Thread{
			Name: "tap",
		}, globals)
		return nil
	}
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// TapeGlobals exposes the visited cells of tape.
// cell(offset) reads relative to the cursor, zero outside the visited range.
func TapeGlobals(tape *taibf.Tape) (starlark.StringDict, error) {
	snapshot := tape.Snapshot()

	dump := new(strings.Builder)
	if err := taibf.DumpTape(dump, tape); err != nil {
		return nil, err
	}

	cell := func(offset int) int {
		i := snapshot.Cursor + offset
		if i < 0 || i >= len(snapshot.Cells) {
			return 0
		}
		return int(snapshot.Cells[i])
	}

	return starlark.StringDict{
		"cells":     starlark.Bytes(snapshot.Cells),
		"cursor":    starlark.MakeInt(snapshot.Cursor),
		"current":   starlark.MakeInt(int(tape.Current())),
		"leftmost":  starlark.Bool(tape.AtLeftmost()),
		"rightmost": starlark.Bool(tape.AtRightmost()),
		"dump":      starlark.String(dump.String()),
		"cell":      starlarkutil.MakeFunc("cell", cell),
	}, nil
}

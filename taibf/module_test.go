package taibf

import (
	"bytes"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
)

func TestModule(t *testing.T) {
	logBuf := new(bytes.Buffer)
	dscope.New(
		modes.ForTest(),
		new(Module),
		dscope.Provide(Config{
			OnEOF: OnEOFStoreEOF,
			Debug: true,
		}),
	).Fork(
		func() logs.Writer {
			return logBuf
		},
	).Call(func(
		newInterpreter NewInterpreterFunc,
	) {
		var out []byte
		interpreter := newInterpreter(HostFuncs{
			Output: func(value byte) error {
				out = append(out, value)
				return nil
			},
		})
		if interpreter.Config().OnEOF != OnEOFStoreEOF {
			t.Fatal()
		}
		interpreter.SetProgram(mustLoad(t, ",."))
		if err := interpreter.Run(); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(out, []byte{EOF}) {
			t.Fatalf("got %v", out)
		}
	})
}

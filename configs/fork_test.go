package configs

import (
	"testing"

	"github.com/reusee/dscope"
)

type testOnEOF string

func (testOnEOF) ConfigExpr() string {
	return "on_eof"
}

type testDebug bool

func (testDebug) ConfigExpr() string {
	return "debug"
}

func TestFork(t *testing.T) {
	scope := dscope.New(
		dscope.Provide(testOnEOF("zero")),
		dscope.Provide(testDebug(false)),
		func(onEOF testOnEOF, debug testDebug) string {
			return string(onEOF)
		},
	)

	scope, err := Fork(scope, NewLoader([]string{
		writeFile(t, "taibf.cue", `on_eof: "nothing"`),
	}, testSchema))
	if err != nil {
		t.Fatal(err)
	}

	if v := dscope.Get[testOnEOF](scope); v != "nothing" {
		t.Fatalf("got %v", v)
	}
	// dependents see the new value
	if v := dscope.Get[string](scope); v != "nothing" {
		t.Fatalf("got %v", v)
	}
	// not set in the file
	if v := dscope.Get[testDebug](scope); v {
		t.Fatalf("got %v", v)
	}
}

func TestForkBadFile(t *testing.T) {
	scope := dscope.New(
		dscope.Provide(testDebug(false)),
	)
	_, err := Fork(scope, NewLoader([]string{
		writeFile(t, "taibf.cue", `debug: 1`),
	}, testSchema))
	if err == nil {
		t.Fatal("should error")
	}
}

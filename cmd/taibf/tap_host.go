package main

import (
	"context"

	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/taibf"
)

// tapHost opens a REPL after each tape dump.
type tapHost struct {
	*taibf.StdHost
	ctx     context.Context
	tapTape debugs.TapTape
}

var _ taibf.Host = new(tapHost)

func (t *tapHost) RequestDebug(tape *taibf.Tape) error {
	if err := t.StdHost.RequestDebug(tape); err != nil {
		return err
	}
	return t.tapTape(t.ctx, tape)
}

// withTap enables the dump instruction, the only point where the tap opens.
func withTap(config taibf.Config, tap bool) taibf.Config {
	if tap {
		config.Debug = true
	}
	return config
}

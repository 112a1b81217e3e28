package taibf

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type NewInterpreterFunc func(host Host) *Interpreter

func (Module) NewInterpreter(
	logger logs.Logger,
	config Config,
) NewInterpreterFunc {
	return func(host Host) *Interpreter {
		i := NewInterpreter(host)
		i.SetConfig(config)
		i.Logger = logger
		return i
	}
}

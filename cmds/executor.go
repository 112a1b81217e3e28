package cmds

import (
	"fmt"
	"os"
)

// Executor maps flag names to commands.
type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	e := &Executor{
		commands: make(map[string]*Command),
	}
	e.Define("-h", Func(func() {
		e.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("-help", "--help"))
	return e
}

func (e *Executor) Define(name string, command *Command) {
	for _, n := range append([]string{name}, command.Aliases...) {
		if _, ok := e.commands[n]; ok {
			panic(fmt.Errorf("duplicated flag %s", n))
		}
		e.commands[n] = command
	}
}

// Execute runs the commands named in args in order.
func (e *Executor) Execute(args []string) error {
	for len(args) > 0 {
		name := args[0]
		args = args[1:]
		command, ok := e.commands[name]
		if !ok {
			return fmt.Errorf("unknown flag: %s", name)
		}
		n := command.fn.Type().NumIn()
		if len(args) < n {
			return fmt.Errorf("flag %s: expecting %d argument(s), got %d", name, n, len(args))
		}
		if err := command.call(args[:n]); err != nil {
			return fmt.Errorf("flag %s: %w", name, err)
		}
		args = args[n:]
	}
	return nil
}

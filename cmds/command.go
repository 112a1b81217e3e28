package cmds

import (
	"fmt"
	"reflect"
)

// Command handles one flag. Its function consumes one argument per parameter.
type Command struct {
	fn          reflect.Value
	Description string
	Aliases     []string
}

var errorType = reflect.TypeFor[error]()

// Func wraps fn, which must return nothing or an error.
// Parameters may be strings, integers or encoding.TextUnmarshaler implementations.
func Func(fn any) *Command {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	t := v.Type()
	switch {
	case t.NumOut() > 1:
		panic(fmt.Errorf("must return at most one value: %T", fn))
	case t.NumOut() == 1 && t.Out(0) != errorType:
		panic(fmt.Errorf("must return error: %T", fn))
	}
	for i := range t.NumIn() {
		if !canParse(t.In(i)) {
			panic(fmt.Errorf("unsupported parameter type %v: %T", t.In(i), fn))
		}
	}
	return &Command{
		fn: v,
	}
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) call(args []string) error {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		v, err := parse(c.fn.Type().In(i), arg)
		if err != nil {
			return err
		}
		in[i] = v
	}
	out := c.fn.Call(in)
	if len(out) == 1 && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}

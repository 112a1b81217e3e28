package configs

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/reusee/dscope"
)

// Fork redefines every Configurable type in scope whose ConfigExpr is set by a config file.
func Fork(scope dscope.Scope, loader Loader) (dscope.Scope, error) {
	var defs []any
	for t := range scope.AllTypes() {
		if !t.Implements(configurableType) {
			continue
		}
		expr := reflect.Zero(t).Interface().(Configurable).ConfigExpr()
		ptr := reflect.New(t)
		if err := loader.AssignFirst(expr, ptr.Interface()); errors.Is(err, ErrValueNotFound) {
			continue
		} else if err != nil {
			return scope, fmt.Errorf("config %s: %w", expr, err)
		}
		// pointers define the pointed value
		defs = append(defs, ptr.Interface())
	}
	if len(defs) == 0 {
		return scope, nil
	}
	return scope.Fork(defs...), nil
}

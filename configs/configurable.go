package configs

import "reflect"

// Configurable values can be overridden by the config files.
// ConfigExpr returns the CUE path of the value.
type Configurable interface {
	ConfigExpr() string
}

var configurableType = reflect.TypeFor[Configurable]()

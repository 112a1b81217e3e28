package cmds

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

func canParse(t reflect.Type) bool {
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func parse(t reflect.Type, str string) (reflect.Value, error) {
	ptr := reflect.New(t)
	if u, ok := ptr.Interface().(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText([]byte(str)); err != nil {
			return ptr.Elem(), err
		}
		return ptr.Elem(), nil
	}

	v := ptr.Elem()
	switch t.Kind() {
	case reflect.String:
		v.SetString(str)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return v, fmt.Errorf("convert %q to %v: %w", str, t, err)
		}
		v.SetInt(n)
	default:
		n, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return v, fmt.Errorf("convert %q to %v: %w", str, t, err)
		}
		v.SetUint(n)
	}
	return v, nil
}

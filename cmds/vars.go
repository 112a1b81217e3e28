package cmds

// Var defines a flag that stores its argument, and name+"." that resets it.
func Var[T any](name string) *T {
	ptr := new(T)
	Define(name, Func(func(v T) {
		*ptr = v
	}))
	Define(name+".", Func(func() {
		var zero T
		*ptr = zero
	}))
	return ptr
}

// Switch defines name to turn the value on and "!"+name to turn it off.
func Switch(name string) *bool {
	ptr := new(bool)
	Define(name, Func(func() {
		*ptr = true
	}))
	Define("!"+name, Func(func() {
		*ptr = false
	}))
	return ptr
}

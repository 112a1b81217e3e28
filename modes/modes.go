package modes

import "github.com/reusee/dscope"

type Mode uint8

const (
	ModeDevelopment Mode = iota + 1
	ModeProduction
)

func (m Mode) String() string {
	switch m {
	case ModeDevelopment:
		return "development"
	case ModeProduction:
		return "production"
	}
	return "unknown"
}

// Module provides the Mode of a scope.
type Module struct {
	dscope.Module
	mode Mode
}

func ForProduction() Module {
	return Module{
		mode: ModeProduction,
	}
}

// ForTest selects development mode, which never uses a proxy.
func ForTest() Module {
	return Module{
		mode: ModeDevelopment,
	}
}

func (m Module) Mode() Mode {
	return m.mode
}

package taibf

import "fmt"

// OnEOF selects what a read does to the current cell once input is exhausted.
type OnEOF uint8

const (
	OnEOFStoreZero OnEOF = iota
	OnEOFStoreEOF
	OnEOFDoNothing
)

// EOF is the byte stored under OnEOFStoreEOF.
const EOF byte = 0xff

func (o OnEOF) String() string {
	switch o {
	case OnEOFStoreZero:
		return "zero"
	case OnEOFStoreEOF:
		return "eof"
	case OnEOFDoNothing:
		return "nothing"
	}
	return fmt.Sprintf("OnEOF(%d)", uint8(o))
}

func (o OnEOF) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *OnEOF) UnmarshalText(text []byte) error {
	v, err := ParseOnEOF(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func ParseOnEOF(str string) (OnEOF, error) {
	switch str {
	case "zero", "store-zero":
		return OnEOFStoreZero, nil
	case "eof", "store-eof":
		return OnEOFStoreEOF, nil
	case "nothing", "do-nothing":
		return OnEOFDoNothing, nil
	}
	return 0, fmt.Errorf("unknown on-eof action: %q", str)
}

// Config must not be changed while a run is in progress.
type Config struct {
	OnEOF OnEOF
	Debug bool
}

func DefaultConfig() Config {
	return Config{
		OnEOF: OnEOFStoreZero,
	}
}

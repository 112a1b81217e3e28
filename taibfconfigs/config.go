package taibfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/taibf"
)

// OnEOF is the on_eof config entry, parsed by taibf.ParseOnEOF.
type OnEOF string

var _ configs.Configurable = OnEOF("")

func (o OnEOF) ConfigExpr() string {
	return "on_eof"
}

type Debug bool

var _ configs.Configurable = Debug(false)

func (d Debug) ConfigExpr() string {
	return "debug"
}

// set by flags, nil if absent
var (
	onEOFFlag *taibf.OnEOF
	debugFlag *bool
)

func init() {
	cmds.Define("-eof", cmds.Func(func(v taibf.OnEOF) {
		onEOFFlag = &v
	}).Desc("action of reading after end of input: zero, eof or nothing"))

	cmds.Define("-debug", cmds.Func(func() {
		v := true
		debugFlag = &v
	}).Desc("enable the tape dump instruction"))
	cmds.Define("!-debug", cmds.Func(func() {
		v := false
		debugFlag = &v
	}).Desc("disable the tape dump instruction"))
}

func (Module) OnEOF() OnEOF {
	return OnEOF(taibf.DefaultConfig().OnEOF.String())
}

func (Module) Debug() Debug {
	return Debug(taibf.DefaultConfig().Debug)
}

// Config takes flags over config files over defaults.
// An invalid OnEOF is rejected by Fork and falls back to the default here.
func (Module) Config(
	onEOF OnEOF,
	debug Debug,
) taibf.Config {
	config := taibf.DefaultConfig()

	if onEOFFlag != nil {
		config.OnEOF = *onEOFFlag
	} else if v, err := taibf.ParseOnEOF(string(onEOF)); err == nil {
		config.OnEOF = v
	}

	if debugFlag != nil {
		config.Debug = *debugFlag
	} else {
		config.Debug = bool(debug)
	}

	return config
}

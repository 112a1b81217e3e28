package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/nets"
	"github.com/reusee/taibf/taibf"
	"github.com/reusee/taibf/taibfconfigs"
)

type Module struct {
	dscope.Module
	Taibf   taibf.Module
	Configs taibfconfigs.Module
	Nets    nets.Module
	Debugs  debugs.Module
}

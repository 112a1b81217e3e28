package taibfconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

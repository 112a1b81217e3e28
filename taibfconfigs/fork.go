package taibfconfigs

import (
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/taibf"
)

// Fork applies the config files to every configurable value in scope
// and checks the entries that CUE cannot fully validate.
func Fork(scope dscope.Scope) (dscope.Scope, error) {
	scope, err := configs.Fork(scope, dscope.Get[configs.Loader](scope))
	if err != nil {
		return scope, err
	}
	if _, err := taibf.ParseOnEOF(string(dscope.Get[OnEOF](scope))); err != nil {
		return scope, fmt.Errorf("config on_eof: %w", err)
	}
	return scope, nil
}

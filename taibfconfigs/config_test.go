package taibfconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/taibf"
)

func writeConfig(t *testing.T, dir string, name string, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		onEOFFlag = nil
		debugFlag = nil
	})
}

func newScope(loader configs.Loader) dscope.Scope {
	return dscope.New(
		modes.ForTest(),
		new(Module),
	).Fork(
		dscope.Provide(loader),
	)
}

func TestFindConfigFiles(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	writeConfig(t, a, ".taibf.cue", "")
	writeConfig(t, b, "taibf.cue", "")
	writeConfig(t, b, "other.cue", "")

	paths := findConfigFiles([]string{a, b})
	if len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
	if paths[0] != filepath.Join(a, ".taibf.cue") {
		t.Fatalf("got %v", paths[0])
	}
	if paths[1] != filepath.Join(b, "taibf.cue") {
		t.Fatalf("got %v", paths[1])
	}
}

func TestDefaultConfig(t *testing.T) {
	scope, err := Fork(newScope(configs.NewLoader(nil, schema)))
	if err != nil {
		t.Fatal(err)
	}
	if config := dscope.Get[taibf.Config](scope); config != taibf.DefaultConfig() {
		t.Fatalf("got %+v", config)
	}
}

func TestConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "taibf.cue", `
on_eof: "eof"
debug: true
`)
	scope, err := Fork(newScope(configs.NewLoader(findConfigFiles([]string{dir}), schema)))
	if err != nil {
		t.Fatal(err)
	}
	config := dscope.Get[taibf.Config](scope)
	if config.OnEOF != taibf.OnEOFStoreEOF {
		t.Fatalf("got %v", config.OnEOF)
	}
	if !config.Debug {
		t.Fatal()
	}
}

func TestConfigFromFlags(t *testing.T) {
	resetFlags(t)
	if err := cmds.GlobalExecutor.Execute([]string{
		"-eof", "nothing",
		"-debug",
	}); err != nil {
		t.Fatal(err)
	}
	scope, err := Fork(newScope(configs.NewLoader(nil, schema)))
	if err != nil {
		t.Fatal(err)
	}
	config := dscope.Get[taibf.Config](scope)
	if config != (taibf.Config{
		OnEOF: taibf.OnEOFDoNothing,
		Debug: true,
	}) {
		t.Fatalf("got %+v", config)
	}
}

func TestFlagsOverFile(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	writeConfig(t, dir, "taibf.cue", `
on_eof: "eof"
debug: true
`)
	if err := cmds.GlobalExecutor.Execute([]string{
		"!-debug",
	}); err != nil {
		t.Fatal(err)
	}
	scope, err := Fork(newScope(configs.NewLoader(findConfigFiles([]string{dir}), schema)))
	if err != nil {
		t.Fatal(err)
	}
	config := dscope.Get[taibf.Config](scope)
	if config.OnEOF != taibf.OnEOFStoreEOF {
		t.Fatalf("got %v", config.OnEOF)
	}
	if config.Debug {
		t.Fatal()
	}
}

func TestBadEOFFlag(t *testing.T) {
	resetFlags(t)
	err := cmds.GlobalExecutor.Execute([]string{
		"-eof", "never",
	})
	if err == nil {
		t.Fatal("should error")
	}
	if onEOFFlag != nil {
		t.Fatal()
	}
}

func TestForkRejectsBadOnEOF(t *testing.T) {
	scope := newScope(configs.NewLoader(nil, schema)).Fork(
		func() OnEOF {
			return "never"
		},
	)
	if _, err := Fork(scope); err == nil {
		t.Fatal("should error")
	}
	// the provider itself does not panic
	if config := dscope.Get[taibf.Config](scope); config.OnEOF != taibf.OnEOFStoreZero {
		t.Fatalf("got %v", config.OnEOF)
	}
}

func TestConfigSchema(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "taibf.cue", `
on_eof: "never"
`)
	_, err := Fork(newScope(configs.NewLoader(findConfigFiles([]string{dir}), schema)))
	if err == nil {
		t.Fatal("should error")
	}
}

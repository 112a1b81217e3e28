package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/nets"
	"github.com/reusee/taibf/taibf"
	"github.com/reusee/taibf/taibfconfigs"
)

var (
	fileFlag     = cmds.Var[string]("-file")
	urlFlag      = cmds.Var[string]("-url")
	tapFlag      = cmds.Switch("-tap")
	saveTapeFlag = cmds.Var[string]("-save-tape")
	loadTapeFlag = cmds.Var[string]("-load-tape")
)

func main() {
	// stderr also carries the tape dumps
	logs.SetLevel(slog.LevelWarn)
	cmds.Execute(os.Args[1:])

	if (*fileFlag == "") == (*urlFlag == "") {
		fmt.Fprintln(os.Stderr, "error: exactly one of -file <path> or -url <url> is required")
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope, err := taibfconfigs.Fork(scope)
	ce(err)

	scope.Call(run)
}

func run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	newInterpreter taibf.NewInterpreterFunc,
	httpClient nets.HTTPClient,
	tapTape debugs.TapTape,
) {
	ctx, _ := newSpan(context.Background(), "run")

	var program *taibf.Program
	var err error
	if *fileFlag != "" {
		program, err = taibf.LoadFile(*fileFlag)
	} else {
		program, err = taibf.LoadURL(ctx, httpClient, *urlFlag)
	}
	ce(logs.WrapSpan(ctx, err))

	stdHost := taibf.NewStdHost(os.Stdin, os.Stdout, os.Stderr)
	var host taibf.Host = stdHost
	if *tapFlag {
		host = &tapHost{
			StdHost: stdHost,
			ctx:     ctx,
			tapTape: tapTape,
		}
	}

	interpreter := newInterpreter(host)
	interpreter.SetConfig(withTap(interpreter.Config(), *tapFlag))
	interpreter.SetProgram(program)

	if *loadTapeFlag != "" {
		f, err := os.Open(*loadTapeFlag)
		ce(err)
		err = interpreter.Tape().Restore(f)
		f.Close()
		ce(err)
		logger.InfoContext(ctx, "tape loaded", "path", *loadTapeFlag)
	}

	runErr := interpreter.Run()
	ce(stdHost.Flush())

	if *saveTapeFlag != "" {
		f, err := os.Create(*saveTapeFlag)
		ce(err)
		err = interpreter.Tape().Suspend(f)
		if e := f.Close(); err == nil {
			err = e
		}
		ce(err)
		logger.InfoContext(ctx, "tape saved", "path", *saveTapeFlag)
	}

	ce(logs.WrapSpan(ctx, runErr))
}

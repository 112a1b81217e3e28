package main

import (
	"fmt"
	"os"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/taibf"
)

var fileFlag = cmds.Var[string]("-file")

func main() {
	cmds.Execute(os.Args[1:])

	if *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "error: -file <path> is required")
		os.Exit(2)
	}

	program, err := taibf.LoadFile(*fileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := taibf.Indent(os.Stdout, program.Root); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (e *Executor) PrintUsage() {
	e.WriteUsage(os.Stderr)
}

// WriteUsage lists one line per command, aliases joined.
func (e *Executor) WriteUsage(w io.Writer) {
	names := make(map[*Command][]string)
	for name, command := range e.commands {
		names[command] = append(names[command], name)
	}
	var lines []string
	for command, ns := range names {
		slices.Sort(ns)
		line := strings.Join(ns, ", ")
		for i := range command.fn.Type().NumIn() {
			line += fmt.Sprintf(" <%v>", command.fn.Type().In(i))
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		lines = append(lines, line)
	}
	slices.Sort(lines)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

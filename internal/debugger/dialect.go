// Package debugger assembles and launches the debugger invocation.
//
// Debugger CLIs are not uniform: gdb takes the binary and inferior
// arguments positionally, lldb wants named flags, dlv wants a
// subcommand. Each convention is one dialect in the table below;
// supporting another debugger means adding one entry, nothing else.
package debugger

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ChildArgs are the arguments forwarded to the inferior. Present
// distinguishes "a second -- was given" from "no child group at all":
// gdb only gets --args when the separator was present, even if nothing
// followed it.
type ChildArgs struct {
	Present bool
	Values  []string
}

// Plan is the fully assembled debugger invocation. Built once, then
// either printed (--no-run) or executed; never mutated after.
type Plan struct {
	Debugger string
	Args     []string
}

func (p *Plan) String() string {
	return strings.Join(append([]string{p.Debugger}, p.Args...), " ")
}

type dialect struct {
	suffix string
	args   func(bin, commandFile string, child ChildArgs) []string
}

// Matched against the executable's base name, so cross toolchain
// wrappers like rust-gdb and arm-none-eabi-gdb pick the right dialect.
var dialects = []dialect{
	{"gdb", gdbArgs},
	{"lldb", lldbArgs},
	{"dlv", dlvArgs},
}

// NewPlan maps the selected binary, the optional command file, and the
// optional child arguments onto the argument convention of the given
// debugger. Unrecognized debuggers fail here, before anything is
// spawned.
func NewPlan(debuggerName, bin, commandFile string, child ChildArgs) (*Plan, error) {
	base := filepath.Base(debuggerName)
	for _, d := range dialects {
		if strings.HasSuffix(base, d.suffix) {
			return &Plan{Debugger: debuggerName, Args: d.args(bin, commandFile, child)}, nil
		}
	}
	return nil, fmt.Errorf("unsupported debugger %q (supported: gdb, lldb, dlv)", debuggerName)
}

// gdb: [--args] [--command FILE] BIN [child...]
func gdbArgs(bin, commandFile string, child ChildArgs) []string {
	var args []string
	if child.Present {
		args = append(args, "--args")
	}
	if commandFile != "" {
		args = append(args, "--command", commandFile)
	}
	args = append(args, bin)
	if child.Present {
		args = append(args, child.Values...)
	}
	return args
}

// lldb: --file BIN [--source FILE] [-- child...]
func lldbArgs(bin, commandFile string, child ChildArgs) []string {
	args := []string{"--file", bin}
	if commandFile != "" {
		args = append(args, "--source", commandFile)
	}
	if child.Present {
		args = append(args, "--")
		args = append(args, child.Values...)
	}
	return args
}

// dlv: exec [--init FILE] BIN [-- child...]
func dlvArgs(bin, commandFile string, child ChildArgs) []string {
	args := []string{"exec"}
	if commandFile != "" {
		args = append(args, "--init", commandFile)
	}
	args = append(args, bin)
	if child.Present {
		args = append(args, "--")
		args = append(args, child.Values...)
	}
	return args
}

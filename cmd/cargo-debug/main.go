// cargo-debug is a cargo external subcommand that builds the project,
// picks the produced executable out of cargo's JSON message stream, and
// launches an interactive debugger (gdb, lldb, or dlv) on it, forwarding
// trailing arguments to the debugged process.
//
// Usage: cargo debug [subcommand] [flags] [-- cargo-args [-- child-args]]
package main

import (
	"os"

	"cargodebug/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args))
}

// Run is the CLI entry point, called by cmd/cargo-debug/main.go.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"cargodebug/internal/cargo"
	"cargodebug/internal/debugger"
	"cargodebug/internal/manifest"
)

// Run drives the whole pipeline: partition argv, parse options, read the
// manifest, build, select the binary, assemble the debug command, launch.
// The return value is the process exit code: the debugger's own code on
// a normal run, 0 for --no-run and help, 2 for usage errors, 1 for
// everything else.
func Run(argv []string) int {
	// Armed here so the interrupt debounce window is measured from
	// process start, not from debugger launch.
	guard := debugger.NewGuard(debugger.DebounceWindow)

	inv := Partition(argv)

	opts, err := ParseOptions(inv.Tool)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargo-debug: %v\n", err)
		fmt.Fprintln(os.Stderr, "see 'cargo debug --help' for usage")
		return 2
	}
	if opts == nil {
		return 0
	}

	log := logrus.StandardLogger()
	log.SetOutput(os.Stderr)
	log.SetLevel(opts.LogLevel)

	log.Tracef("args: %v", argv)
	log.Tracef("cargo args: %v (present=%v)", inv.Cargo.Values, inv.Cargo.Present)
	log.Tracef("child args: %v (present=%v)", inv.Child.Values, inv.Child.Present)

	pkg, err := manifest.PackageName(manifest.Path)
	if err != nil {
		log.Error(err)
		return 1
	}
	log.Tracef("found package %q", pkg)

	artifacts, err := cargo.Build(opts.Subcommand, inv.Cargo.Values)
	if err != nil {
		log.Error(err)
		return 1
	}
	log.Tracef("collected %d artifacts", len(artifacts))

	bin, err := cargo.Select(artifacts, pkg, opts.Filter)
	if err != nil {
		var amb *cargo.AmbiguousError
		if errors.As(err, &amb) {
			fmt.Fprintf(os.Stderr, "cargo-debug: %d executables built for package %q:\n", len(amb.Candidates), pkg)
			for _, name := range amb.Candidates {
				fmt.Fprintf(os.Stderr, "  %s\n", name)
			}
			fmt.Fprintln(os.Stderr, "pass --filter with a prefix of the one to debug")
			return 1
		}
		log.Error(err)
		return 1
	}
	log.Infof("binary: %s", bin)

	plan, err := debugger.NewPlan(opts.Debugger, bin, opts.CommandFile, debugger.ChildArgs{
		Present: inv.Child.Present,
		Values:  inv.Child.Values,
	})
	if err != nil {
		log.Error(err)
		return 1
	}
	log.Tracef("synthesized debug command: %s", plan)

	if opts.NoRun {
		fmt.Println(plan)
		return 0
	}

	code, err := debugger.Launch(plan, guard)
	if err != nil {
		log.Error(err)
		return 1
	}
	return code
}

// Argument partitioning for the cargo-debug command line.
package cli

// ArgList is a group of arguments that may be absent entirely. Absent
// and present-but-empty are different things: the mere presence of the
// child group decides whether the debugger is told to forward trailing
// arguments to the inferior, even when there are none to forward.
type ArgList struct {
	Present bool
	Values  []string
}

// Invocation is the raw command line split into its three groups.
type Invocation struct {
	Tool  []string // program name and tool options, before the first "--"
	Cargo ArgList  // between the first and second "--", passed to cargo verbatim
	Child ArgList  // after the second "--", forwarded to the debugged process
}

// Partition splits argv on the first two literal "--" tokens. Any
// further "--" belongs to the child group and is kept as-is.
//
// When invoked as "cargo debug ...", cargo re-executes us with the
// subcommand name at argv[1]; that marker is cargo's, not ours, and is
// dropped from the tool group. A "debug" token after a separator is an
// ordinary argument and stays put.
func Partition(argv []string) Invocation {
	groups := make([][]string, 1, 3)
	groups[0] = []string{}
	for _, a := range argv {
		if a == "--" && len(groups) < 3 {
			groups = append(groups, []string{})
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], a)
	}

	inv := Invocation{Tool: groups[0]}
	if len(inv.Tool) > 1 && inv.Tool[1] == "debug" {
		inv.Tool = append([]string{inv.Tool[0]}, inv.Tool[2:]...)
	}
	if len(groups) > 1 {
		inv.Cargo = ArgList{Present: true, Values: groups[1]}
	}
	if len(groups) > 2 {
		inv.Child = ArgList{Present: true, Values: groups[2]}
	}
	return inv
}

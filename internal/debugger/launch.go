package debugger

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"
)

// Launch spawns the plan's debugger on the controlling terminal and
// blocks until it exits, returning the debugger's exit code. guard is
// armed by the caller at process entry so the debounce window spans the
// whole run, not just the debug session; a debounced interrupt (see
// Guard) exits the wrapper with status 0. A debugger killed by a signal
// maps to the shell convention 128+signal.
func Launch(plan *Plan, guard *Guard) (int, error) {
	cmd := exec.Command(plan.Debugger, plan.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer func() {
		signal.Stop(sigs)
		// Stop guarantees no further sends, so closing ends the
		// guard goroutine.
		close(sigs)
	}()
	go func() {
		for range sigs {
			if guard.Observe(time.Now()) {
				os.Exit(0)
			}
		}
	}()

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("starting debugger %s: %w", plan.Debugger, err)
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal()), nil
		}
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("waiting for debugger %s: %w", plan.Debugger, err)
	}
	return 0, nil
}

// Package cargo runs the build tool and decodes its JSON message stream.
package cargo

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvCargo overrides the cargo binary; cargo itself sets it when
// running external subcommands, so a non-default toolchain is honored.
const EnvCargo = "CARGO"

// Artifact is one build output reported by cargo. Executable is empty
// for non-binary artifacts such as libraries and build scripts.
type Artifact struct {
	TargetName string
	Executable string
}

// message is one line of the --message-format=json stream. Only the
// compiler-artifact reason is of interest; other reasons (messages,
// build-script output, build-finished) are skipped by tag.
type message struct {
	Reason     string `json:"reason"`
	Target     target `json:"target"`
	Executable string `json:"executable"`
}

type target struct {
	Name string `json:"name"`
}

// Resolve returns the cargo binary to invoke: $CARGO if set, else
// "cargo" resolved via PATH.
func Resolve() string {
	if c := os.Getenv(EnvCargo); c != "" {
		return c
	}
	return "cargo"
}

// Build runs `cargo <subcommand> --message-format=json [extra...]` and
// returns the compiler artifacts in arrival order. For the test
// subcommand --no-run is added so cargo only compiles the test binary;
// the debugger runs it. cargo's stderr (progress, diagnostics) passes
// through untouched.
func Build(subcommand string, extra []string) ([]Artifact, error) {
	args := []string{subcommand, "--message-format=json"}
	if subcommand == "test" {
		args = append(args, "--no-run")
	}
	args = append(args, extra...)

	bin := Resolve()
	logrus.Tracef("synthesized cargo command: %s %s", bin, strings.Join(args, " "))

	cmd := exec.Command(bin, args...)
	cmd.Stderr = os.Stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("piping %s stdout: %w", bin, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", bin, err)
	}

	artifacts, err := ParseStream(stdout)
	if err != nil {
		// Protocol violation: stop reading and reap the child before
		// reporting, so no zombie outlives the error.
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return nil, err
	}

	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("cargo %s failed, try running the command directly: %w", subcommand, err)
	}
	return artifacts, nil
}

// ParseStream decodes cargo's line-delimited JSON messages from r and
// returns the compiler artifacts in arrival order. A line that is not
// valid JSON is a fatal protocol error; cargo's output contract in
// message mode is assumed stable.
func ParseStream(r io.Reader) ([]Artifact, error) {
	var artifacts []Artifact
	sc := bufio.NewScanner(r)
	// Artifact messages for large crates easily exceed the default
	// 64KiB token limit.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var m message
		if err := json.Unmarshal(line, &m); err != nil {
			return nil, fmt.Errorf("invalid cargo JSON message %q: %w", truncate(string(line), 120), err)
		}
		if m.Reason != "compiler-artifact" {
			continue
		}
		artifacts = append(artifacts, Artifact{TargetName: m.Target.Name, Executable: m.Executable})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading cargo output: %w", err)
	}
	return artifacts, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

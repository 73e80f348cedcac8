// Package manifest reads the package name from a Cargo manifest.
package manifest

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Path is the conventional manifest file name, resolved relative to the
// working directory.
const Path = "Cargo.toml"

type cargoToml struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
}

// PackageName returns the [package] name field of the manifest at path.
func PackageName(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w (run from the project root)", path, err)
	}
	var m cargoToml
	if err := toml.Unmarshal(data, &m); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	if m.Package.Name == "" {
		return "", fmt.Errorf("%s has no [package] name", path)
	}
	return m.Package.Name, nil
}

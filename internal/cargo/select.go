package cargo

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// AmbiguousError reports several runnable candidates for the package
// and no filter to pick between them. Candidates holds executable base
// names in build order. Expected for multi-binary packages; the caller
// prints the list with guidance rather than a bare failure.
type AmbiguousError struct {
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%d viable output artifacts (%s), pass --filter to select one",
		len(e.Candidates), strings.Join(e.Candidates, ", "))
}

// Select picks the one runnable artifact for pkg and returns its
// executable path. Library-only artifacts and other packages' targets
// are dropped first. filter, when non-empty, prefix-matches the
// executable's base name and the first match wins; candidate order is
// cargo's own build order throughout.
func Select(artifacts []Artifact, pkg, filter string) (string, error) {
	var viable []Artifact
	for _, a := range artifacts {
		if a.TargetName == pkg && a.Executable != "" {
			viable = append(viable, a)
		}
	}

	if filter != "" {
		for _, a := range viable {
			if strings.HasPrefix(filepath.Base(a.Executable), filter) {
				return a.Executable, nil
			}
		}
		return "", fmt.Errorf("no output artifact matches --filter %q", filter)
	}

	switch len(viable) {
	case 0:
		return "", errors.New("no viable output artifacts found")
	case 1:
		return viable[0].Executable, nil
	}

	names := make([]string, len(viable))
	for i, a := range viable {
		names[i] = filepath.Base(a.Executable)
	}
	return "", &AmbiguousError{Candidates: names}
}

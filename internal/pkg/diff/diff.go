// Package diff generates a human-readable difference of two versions of a parameter.
package diff

import (
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/keboola/remote-config-modifier/internal/pkg/model"
)

const (
	OnlyInCurrentMark = "-"
	OnlyInUpdatedMark = "+"
)

// Parameter returns the difference and paths of the changed fields, for example "DefaultValue.Value".
func Parameter(current, updated *model.Parameter) (string, []string) {
	r := newReporter()
	cmp.Equal(current, updated, cmp.Reporter(r))
	return r.String(), r.Paths()
}

// Format returns the difference or a note that nothing changed.
func Format(current, updated *model.Parameter) string {
	out, paths := Parameter(current, updated)
	if len(paths) == 0 {
		return "No changes.\n"
	}
	return strings.TrimRight(out, "\n") + "\n"
}

package diff

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cast"
)

// Reporter contains path to the compared values and generates human-readable difference report.
type Reporter struct {
	path  cmp.Path // current path to the compared value
	paths []string // list of the non-equal paths
	diffs []string // list of the found differences in human-readable format
}

func newReporter() *Reporter {
	return &Reporter{}
}

func (r *Reporter) PushStep(ps cmp.PathStep) {
	r.path = append(r.path, ps)
}

func (r *Reporter) Report(rs cmp.Result) {
	if rs.Equal() {
		return
	}

	vx, vy := r.path.Last().Values()
	pathStr := pathToString(r.path)
	if len(pathStr) > 0 {
		r.paths = append(r.paths, pathStr)
		r.diffs = append(r.diffs, fmt.Sprintf("  \"%s\":", pathStr))
	}

	if vx.IsValid() {
		if formatted := fmt.Sprintf(`%+v`, vx); len(formatted) != 0 {
			r.diffs = append(r.diffs, fmt.Sprintf("  %s %s", OnlyInCurrentMark, formatted))
		}
	}
	if vy.IsValid() {
		if formatted := fmt.Sprintf(`%+v`, vy); len(formatted) != 0 {
			r.diffs = append(r.diffs, fmt.Sprintf("  %s %s", OnlyInUpdatedMark, formatted))
		}
	}
}

func (r *Reporter) PopStep() {
	r.path = r.path[:len(r.path)-1]
}

func (r *Reporter) String() string {
	return strings.Join(r.diffs, "\n")
}

func (r *Reporter) Paths() []string {
	return r.paths
}

func pathToString(path cmp.Path) string {
	var parts []string
	for _, s := range path {
		switch v := s.(type) {
		case cmp.MapIndex:
			parts = append(parts, cast.ToString(v.Key().Interface()))
		case cmp.SliceIndex:
			parts = append(parts, cast.ToString(v.Key()))
		case cmp.StructField:
			parts = append(parts, v.Name())
		}
	}
	return strings.Join(parts, ".")
}

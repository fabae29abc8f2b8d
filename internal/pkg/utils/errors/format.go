package errors

import (
	"bufio"
	"strings"
)

const (
	Indent = "  "
	Bullet = "- "
)

// Format converts the error to a human-readable string.
// Multi errors are written as a bullet list, nested errors as "prefix: error" or "prefix:" followed by a list.
func Format(err error) string {
	w := &writer{}
	w.writeError(0, err)
	return w.out.String()
}

type writer struct {
	out strings.Builder
}

func (w *writer) writeError(level int, err error) {
	if err == nil {
		panic(New("error cannot be nil"))
	}

	// nolint: errorlint
	switch v := err.(type) {
	case nestedErrorGetter:
		w.writeNested(level, v.MainError(), v.WrappedErrors())
	case multiErrorGetter:
		w.writeList(level, v.WrappedErrors())
	default:
		// Align all lines of a multi-line message
		scanner := bufio.NewScanner(strings.NewReader(err.Error()))
		scanner.Scan()
		w.write(scanner.Text())
		for scanner.Scan() {
			w.write("\n")
			w.write(strings.Repeat(Indent, level))
			w.write(scanner.Text())
		}
	}
}

func (w *writer) writeNested(level int, main error, errs []error) {
	mainWriter := &writer{}
	mainWriter.writeError(level, main)
	mainStr := mainWriter.out.String()
	if len(errs) == 0 {
		w.write(mainStr)
		return
	}

	prefix := strings.TrimRight(mainStr, ".,:") + ":"
	subWriter := &writer{}
	subWriter.writeList(level, errs)
	subStr := subWriter.out.String()

	w.write(prefix)
	if len(errs) > 1 || len(prefix)+len(subStr) > 60 || strings.Contains(subStr, "\n") {
		w.write("\n")
		if len(errs) == 1 {
			w.write(strings.Repeat(Indent, level))
			w.write(Bullet)
			w.writeError(level+1, errs[0])
		} else {
			w.writeList(level, errs)
		}
	} else {
		w.write(" ")
		w.write(subStr)
	}
}

func (w *writer) writeList(level int, errs []error) {
	bullets := len(errs) > 1
	for i, err := range errs {
		if bullets {
			w.write(strings.Repeat(Indent, level))
			w.write(Bullet)
		}
		w.writeError(level+1, err)
		if i != len(errs)-1 {
			w.write("\n")
		}
	}
}

func (w *writer) write(s string) {
	_, _ = w.out.WriteString(s)
}

// Package terminal provides a virtual terminal for interactive prompt tests.
package terminal

import (
	"bytes"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/Netflix/go-expect"
	"github.com/acarl005/stripansi"
)

// Console is virtual terminal for tests.
type Console interface {
	// Tty returns the slave part of the pseudo terminal, it is used as stdin/stdout of the tested code.
	Tty() Tty
	// String returns a string representation of the terminal output.
	String() string
	Send(s string) error
	SendLine(s string) error
	SendEnter() error
	SendSpace() error
	SendBackspace() error
	SendUpArrow() error
	SendDownArrow() error
	// ExpectString reads from the tty until the string is read, ANSI escape sequences are ignored.
	ExpectString(s string, opts ...expect.ExpectOpt) error
	// ExpectEOF reads from the tty until EOF, closed PTS is also treated as EOF.
	ExpectEOF(opts ...expect.ExpectOpt) error
	// Close closes both the TTY and afterwards all the readers.
	Close() error
}

// Tty provides reader (stdin) and writer (stdout/stderr) for virtual terminal.
type Tty interface {
	terminal.FileReader
	terminal.FileWriter
	io.Closer
}

// stringWithoutANSIMatcher matches a string, ANSI escape characters are ignored.
type stringWithoutANSIMatcher struct {
	str string
}

func (m *stringWithoutANSIMatcher) Match(v any) bool {
	buf, ok := v.(*bytes.Buffer)
	if !ok {
		return false
	}
	return strings.Contains(stripansi.Strip(buf.String()), m.str)
}

func (m *stringWithoutANSIMatcher) Criteria() any {
	return m.str
}

// StringWithoutANSI adds an Expect condition to exit if the content read from Console's
// tty contains any of the given strings.
func StringWithoutANSI(strs ...string) expect.ExpectOpt {
	return func(opts *expect.ExpectOpts) error {
		for _, str := range strs {
			opts.Matchers = append(opts.Matchers, &stringWithoutANSIMatcher{str: str})
		}
		return nil
	}
}

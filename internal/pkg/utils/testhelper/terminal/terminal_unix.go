//go:build !windows

package terminal

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/ActiveState/vt10x"
	"github.com/Netflix/go-expect"
	"github.com/acarl005/stripansi"

	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/testhelper"
)

const (
	termEscChar   = '\x1b'
	sendDelay     = 20 * time.Millisecond
	expectTimeout = 15 * time.Second
)

type console struct {
	*expect.Console
	state *vt10x.State
	tty   *tty
}

// ansiSplitReader splits "<stdin><ansi>" read together into "<stdin>" and "<ansi>".
// Otherwise, survey doesn't recognize the escape sequence and waits endlessly.
type ansiSplitReader struct {
	scanner *bufio.Scanner
}

// tty wraps the pseudo terminal file, Close terminates all running Read and Write calls.
type tty struct {
	file   *os.File
	reader io.Reader
	closed chan struct{}
}

func New(t *testing.T, opts ...expect.ConsoleOpt) (Console, error) {
	t.Helper()

	// Log console output to stdout, if TEST_VERBOSE=true
	debugStdout := testhelper.VerboseStdout()
	opts = append(
		opts,
		expect.WithStdout(debugStdout),
		expect.WithCloser(debugStdout),
		expect.WithSendObserver(sendObserver(t, debugStdout)),
		expect.WithExpectObserver(expectObserver(t, os.Stderr)), // nolint:forbidigo
		expect.WithDefaultTimeout(expectTimeout),
	)

	out := &console{}
	var err error
	out.Console, out.state, err = vt10x.NewVT10XConsole(opts...)
	if err != nil {
		return nil, err
	}

	ttyFile := out.Console.Tty()
	out.tty = &tty{file: ttyFile, reader: newAnsiSplitReader(ttyFile), closed: make(chan struct{})}
	return out, nil
}

func newAnsiSplitReader(in io.Reader) io.Reader {
	r := &ansiSplitReader{}
	r.scanner = bufio.NewScanner(in)
	r.scanner.Split(func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if i := bytes.IndexByte(data, termEscChar); i >= 1 {
			return i, data[0:i], nil
		}
		return len(data), data, nil
	})
	return r
}

func (r *ansiSplitReader) Read(b []byte) (int, error) {
	if !r.scanner.Scan() {
		return 0, io.EOF
	}
	if err := r.scanner.Err(); err != nil {
		return 0, err
	}
	s := r.scanner.Bytes()
	if len(b) < len(s) {
		panic(errors.Errorf("small buffer %d, required %d", len(b), len(s)))
	}
	copy(b, s)
	return len(s), nil
}

func (c *console) Tty() Tty {
	return c.tty
}

func (c *console) String() string {
	return c.state.String()
}

func (c *console) Send(s string) error {
	c.waitBeforeSend()
	_, err := c.Console.Send(s)
	return err
}

func (c *console) SendLine(s string) error {
	c.waitBeforeSend()
	_, err := c.Console.SendLine(s)
	return err
}

func (c *console) SendEnter() error {
	return c.Send("\n")
}

func (c *console) SendSpace() error {
	return c.Send(" ")
}

func (c *console) SendBackspace() error {
	return c.Send("\u0008")
}

func (c *console) SendUpArrow() error {
	return c.Send("\u001B[A")
}

func (c *console) SendDownArrow() error {
	return c.Send("\u001B[B")
}

func (c *console) ExpectString(s string, opts ...expect.ExpectOpt) error {
	opts = append(opts, StringWithoutANSI(s))
	_, err := c.Console.Expect(opts...)
	return err
}

func (c *console) ExpectEOF(opts ...expect.ExpectOpt) (err error) {
	defer func() {
		// Close STDIN on error (e.g. timeout)
		if err != nil {
			_ = c.Tty().Close()
		}
	}()

	opts = append(opts, expect.EOF, expect.PTSClosed)
	if _, err := c.Console.Expect(opts...); err != nil {
		return errors.Errorf("error while waiting for EOF: %w", err)
	}
	return nil
}

// waitBeforeSend delays sending input, the application output must be written before the next input.
func (c *console) waitBeforeSend() {
	time.Sleep(sendDelay)
}

func (t *tty) Read(p []byte) (int, error) {
	var n int
	var err error
	done := make(chan struct{})

	go func() {
		n, err = t.reader.Read(p)
		close(done)
	}()

	select {
	case <-t.closed:
		return 0, errors.New("cannot read: tty closed")
	case <-done:
		return n, err
	}
}

func (t *tty) Write(p []byte) (int, error) {
	var n int
	var err error
	done := make(chan struct{})

	go func() {
		n, err = t.file.Write(p)
		close(done)
	}()

	select {
	case <-t.closed:
		return 0, errors.New("cannot write: tty closed")
	case <-done:
		return n, err
	}
}

func (t *tty) Fd() uintptr {
	return t.file.Fd()
}

func (t *tty) Close() error {
	select {
	case <-t.closed:
		return errors.New("tty already closed")
	default:
		close(t.closed)
		return t.file.Close()
	}
}

func sendObserver(t *testing.T, writer io.Writer) expect.SendObserver {
	t.Helper()
	return func(msg string, num int, err error) {
		t.Helper()
		if err == nil {
			_, _ = fmt.Fprintf(writer, "\n\n>>> SEND: %+q\n\n", msg)
		} else {
			_, _ = fmt.Fprintf(writer, "\n\n>>> SEND %+q ERROR: %s\n\n", msg, err)
		}
	}
}

func expectObserver(t *testing.T, writer io.Writer) expect.ExpectObserver {
	t.Helper()
	return func(matchers []expect.Matcher, buf string, err error) {
		t.Helper()
		if err != nil {
			var criteria []any
			for _, m := range matchers {
				criteria = append(criteria, m.Criteria())
			}
			_, _ = fmt.Fprintf(
				writer,
				"\n\n>>> Could not meet expectations %v, error: %v\nTerminal snapshot:\n-----\n%s\n-----\n",
				criteria, err, stripansi.Strip(buf),
			)
		}
	}
}

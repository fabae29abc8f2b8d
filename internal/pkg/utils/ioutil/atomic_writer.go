package ioutil

import (
	"bytes"
	"io"

	"github.com/sasha-s/go-deadlock"
)

// AtomicWriter is a goroutine safe buffer, used as stdout/stderr in tests.
type AtomicWriter struct {
	mutex   *deadlock.Mutex
	writers []io.Writer
	buffer  *bytes.Buffer
}

func NewAtomicWriter() *AtomicWriter {
	buffer := &bytes.Buffer{}
	return &AtomicWriter{mutex: &deadlock.Mutex{}, writers: []io.Writer{buffer}, buffer: buffer}
}

// ConnectTo copies all following writes also to the writer.
func (w *AtomicWriter) ConnectTo(writer io.Writer) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.writers = append(w.writers, writer)
}

func (w *AtomicWriter) Write(p []byte) (n int, err error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	for _, writer := range w.writers {
		if _, err = writer.Write(p); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (w *AtomicWriter) WriteString(s string) (n int, err error) {
	return w.Write([]byte(s))
}

func (w *AtomicWriter) Sync() error {
	return nil
}

func (w *AtomicWriter) Truncate() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.buffer.Truncate(0)
}

func (w *AtomicWriter) String() string {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.buffer.String()
}

func (w *AtomicWriter) StringAndTruncate() string {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	str := w.buffer.String()
	w.buffer.Truncate(0)
	return str
}

// Fd returns an invalid file descriptor, the writer is never a terminal.
func (w *AtomicWriter) Fd() uintptr {
	return ^uintptr(0)
}

// Reader is a stdin replacement in tests, it is never a terminal.
type Reader struct {
	io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{Reader: r}
}

func (r *Reader) Fd() uintptr {
	return ^uintptr(0)
}

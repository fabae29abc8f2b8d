package ioutil

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomicWriter(t *testing.T) {
	t.Parallel()
	writer := NewAtomicWriter()
	_, err := writer.WriteString("test")
	assert.NoError(t, err)
	assert.Equal(t, "test", writer.StringAndTruncate())
	assert.Empty(t, writer.String())
}

func TestAtomicWriter_ConnectTo(t *testing.T) {
	t.Parallel()
	writer := NewAtomicWriter()
	other := &bytes.Buffer{}
	writer.ConnectTo(other)

	_, err := writer.WriteString("test")
	assert.NoError(t, err)

	assert.Equal(t, "test", writer.String())
	assert.Equal(t, "test", other.String())
}

func TestAtomicWriter_Parallel(t *testing.T) {
	t.Parallel()
	writer := NewAtomicWriter()

	wg := &sync.WaitGroup{}
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = writer.WriteString("x")
		}()
	}
	wg.Wait()

	assert.Len(t, writer.String(), 10)
}

func TestNotTerminal(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ^uintptr(0), NewAtomicWriter().Fd())
	assert.Equal(t, ^uintptr(0), NewReader(&bytes.Buffer{}).Fd())
}

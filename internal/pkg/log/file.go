package log

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

type File struct {
	file *os.File
	path string
	temp bool
}

// NewLogFile opens the log file from the flags or creates a temp file.
// The temp file is kept only if the command fails.
func NewLogFile(path string) (*File, error) {
	f := &File{}
	if path == "" {
		suffix := ""
		randomBytes := make([]byte, 6)
		if _, err := rand.Read(randomBytes); err == nil {
			suffix = fmt.Sprintf(`-%x`, randomBytes)
		}
		f.path = filepath.Join(os.TempDir(), fmt.Sprintf("rcm-%d%s.txt", time.Now().Unix(), suffix))
		f.temp = true
	} else {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		f.path = abs
	}

	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open log file \"%s\"", f.path)
	}
	f.file = file
	return f, nil
}

func (f *File) File() *os.File {
	return f.file
}

func (f *File) Path() string {
	return f.path
}

func (f *File) IsTemp() bool {
	return f.temp
}

func (f *File) TearDown(errorOccurred bool) error {
	if f == nil {
		return nil
	}

	if err := f.file.Close(); err != nil {
		return errors.Errorf("cannot close log file \"%s\": %w", f.path, err)
	}

	if !errorOccurred && f.temp {
		if err := os.Remove(f.path); err != nil {
			return errors.Errorf("cannot remove temp log file \"%s\": %w", f.path, err)
		}
	}
	return nil
}

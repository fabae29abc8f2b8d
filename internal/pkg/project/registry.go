package project

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/keboola/remote-config-modifier/internal/pkg/encoding/json"
	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

const (
	FileName       = "config.json"
	lockFileName   = "config.lock"
	lockRetryDelay = 50 * time.Millisecond
	lockTimeout    = 5 * time.Second
)

// Registry is the list of projects stored as a JSON file in the config directory.
type Registry struct {
	logger log.Logger
	fs     afero.Fs
	dir    string
}

type registryFile struct {
	Projects Projects `json:"projects" yaml:"projects" validate:"dive"`
}

func NewRegistry(logger log.Logger, fs afero.Fs, dir string) *Registry {
	return &Registry{logger: logger.WithComponent("registry"), fs: fs, dir: dir}
}

// DefaultDir returns the config directory of the current user.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrapf(err, "cannot determine user config directory: %s", err)
	}
	return filepath.Join(dir, "rcm"), nil
}

func (r *Registry) Path() string {
	return filepath.Join(r.dir, FileName)
}

// Load returns all projects, a missing file means an empty registry.
func (r *Registry) Load(ctx context.Context) (Projects, error) {
	content, err := afero.ReadFile(r.fs, r.Path())
	if errors.Is(err, os.ErrNotExist) {
		r.logger.Debugf(ctx, `Config file "%s" not found.`, r.Path())
		return Projects{}, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, `cannot read config file "%s": %s`, r.Path(), err)
	}

	file, err := decode(r.Path(), content)
	if err != nil {
		return nil, err
	}
	r.logger.Debugf(ctx, `Loaded %d projects from "%s".`, len(file.Projects), r.Path())
	return file.Projects, nil
}

// Add appends the project, the name must be unique.
func (r *Registry) Add(ctx context.Context, p Project) (Projects, error) {
	if err := p.Validate(ctx); err != nil {
		return nil, errors.PrefixErrorf(err, `project "%s" is not valid`, p.Name)
	}
	return r.modify(ctx, func(projects Projects) (Projects, error) {
		if _, err := projects.Get(p.Name); err == nil {
			return nil, errors.Errorf(`project "%s" already exists`, p.Name)
		}
		return append(projects, p), nil
	})
}

// Remove deletes the project by name.
func (r *Registry) Remove(ctx context.Context, name string) (Projects, error) {
	return r.modify(ctx, func(projects Projects) (Projects, error) {
		if _, err := projects.Get(name); err != nil {
			return nil, err
		}
		out := make(Projects, 0, len(projects))
		for _, p := range projects {
			if p.Name != name {
				out = append(out, p)
			}
		}
		return out, nil
	})
}

// Store replaces the registry by projects from a JSON or YAML file.
func (r *Registry) Store(ctx context.Context, path string) (Projects, error) {
	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, `file "%s" cannot be read: %s`, path, err)
	}

	file, err := decode(path, content)
	if err != nil {
		return nil, err
	}
	if err := newValidator().Validate(ctx, file); err != nil {
		return nil, errors.PrefixErrorf(err, `file "%s" is not valid`, path)
	}

	return r.modify(ctx, func(Projects) (Projects, error) {
		return file.Projects, nil
	})
}

func (r *Registry) modify(ctx context.Context, fn func(Projects) (Projects, error)) (Projects, error) {
	if err := r.fs.MkdirAll(r.dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, `cannot create config directory "%s": %s`, r.dir, err)
	}

	lock := flock.New(filepath.Join(r.dir, lockFileName))
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	if locked, err := lock.TryLockContext(lockCtx, lockRetryDelay); err != nil {
		return nil, errors.Wrapf(err, `cannot lock config file "%s": %s`, r.Path(), err)
	} else if !locked {
		return nil, errors.Errorf(`cannot lock config file "%s"`, r.Path())
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warnf(ctx, `Cannot unlock config file: %s`, err)
		}
	}()

	projects, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	projects, err = fn(projects)
	if err != nil {
		return nil, err
	}

	content, err := json.Encode(registryFile{Projects: projects}, true)
	if err != nil {
		return nil, err
	}
	if err := afero.WriteFile(r.fs, r.Path(), content, 0o600); err != nil {
		return nil, errors.Wrapf(err, `cannot write config file "%s": %s`, r.Path(), err)
	}

	r.logger.Debugf(ctx, `Saved %d projects to "%s".`, len(projects), r.Path())
	return projects, nil
}

func decode(path string, content []byte) (*registryFile, error) {
	file := &registryFile{}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(content, file); err != nil {
			return nil, errors.Wrapf(err, `cannot parse file "%s": %s`, path, err)
		}
	} else if err := json.Decode(content, file); err != nil {
		return nil, errors.PrefixErrorf(err, `cannot parse file "%s"`, path)
	}
	if file.Projects == nil {
		file.Projects = Projects{}
	}
	return file, nil
}

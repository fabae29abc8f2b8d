// Package memory provides an in-memory remote config document service with the version token semantics of the remote API.
package memory

import (
	"context"
	"fmt"

	"github.com/sasha-s/go-deadlock"

	"github.com/keboola/remote-config-modifier/internal/pkg/encoding/json/schema"
	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/remote"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

type Service struct {
	lock      *deadlock.Mutex
	documents map[string]*document
}

type document struct {
	config   *model.RemoteConfig
	version  int
	writes   int
	fetchErr error
	writeErr error
}

func New() *Service {
	return &Service{lock: &deadlock.Mutex{}, documents: make(map[string]*document)}
}

// Set replaces the document of the project, the version is incremented.
func (s *Service) Set(p project.Project, cfg *model.RemoteConfig) {
	s.lock.Lock()
	defer s.lock.Unlock()
	doc := s.document(p)
	doc.config = cfg.Clone()
	doc.version++
}

// Get returns a copy of the stored document.
func (s *Service) Get(p project.Project) *model.RemoteConfig {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.document(p).config.Clone()
}

// Writes returns the count of successful writes.
func (s *Service) Writes(p project.Project) int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.document(p).writes
}

func (s *Service) FailFetch(p project.Project, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.document(p).fetchErr = err
}

func (s *Service) FailWrite(p project.Project, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.document(p).writeErr = err
}

func (s *Service) Fetch(ctx context.Context, p project.Project) (*model.RemoteConfig, model.VersionToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	doc := s.document(p)
	if doc.fetchErr != nil {
		return nil, "", errors.PrefixErrorf(doc.fetchErr, `cannot fetch remote config of the project "%s"`, p.Name)
	}
	return doc.config.Clone(), doc.token(), nil
}

func (s *Service) Write(ctx context.Context, p project.Project, cfg *model.RemoteConfig, token model.VersionToken) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	doc := s.document(p)
	if doc.writeErr != nil {
		return errors.PrefixErrorf(doc.writeErr, `cannot write remote config of the project "%s"`, p.Name)
	}
	if err := schema.ValidateDocument(cfg); err != nil {
		return errors.PrefixErrorf(err, `remote config of the project "%s" is invalid`, p.Name)
	}
	if token != doc.token() {
		return remote.VersionConflictError{Project: p.Name}
	}
	doc.config = cfg.Clone()
	doc.version++
	doc.writes++
	return nil
}

func (s *Service) document(p project.Project) *document {
	doc, found := s.documents[p.Number]
	if !found {
		doc = &document{config: &model.RemoteConfig{}, version: 1}
		s.documents[p.Number] = doc
	}
	return doc
}

func (d *document) token() model.VersionToken {
	return model.VersionToken(fmt.Sprintf("etag-%d", d.version))
}

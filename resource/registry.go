package resource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"vincit.fi/async-image/api/apitype"
	"vincit.fi/async-image/common/logger"
)

var ErrUnknownResource = errors.New("unknown resource id")

type entry struct {
	fsys fs.FS
	name string
	data []byte
}

// Registry maps resource ids to image bytes. Entries are either raw
// bytes or a name inside an fs.FS, which lets applications register
// whole embed.FS trees.
type Registry struct {
	mux     sync.Mutex
	entries map[apitype.ResourceId]entry
}

func NewRegistry() *Registry {
	return &Registry{
		entries: map[apitype.ResourceId]entry{},
	}
}

var defaultRegistry = NewRegistry()

func DefaultRegistry() *Registry {
	return defaultRegistry
}

func (s *Registry) RegisterBytes(id apitype.ResourceId, data []byte) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if _, found := s.entries[id]; found {
		logger.Warn.Printf("Resource '%s' registered twice, overwriting", id)
	}
	s.entries[id] = entry{data: data}
}

func (s *Registry) RegisterFile(id apitype.ResourceId, fsys fs.FS, name string) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if _, found := s.entries[id]; found {
		logger.Warn.Printf("Resource '%s' registered twice, overwriting", id)
	}
	s.entries[id] = entry{fsys: fsys, name: name}
}

func (s *Registry) Open(id apitype.ResourceId) (io.ReadCloser, error) {
	s.mux.Lock()
	resourceEntry, found := s.entries[id]
	s.mux.Unlock()

	if !found {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownResource, id)
	}

	if resourceEntry.fsys != nil {
		return resourceEntry.fsys.Open(resourceEntry.name)
	}
	return io.NopCloser(bytes.NewReader(resourceEntry.data)), nil
}

func (s *Registry) Contains(id apitype.ResourceId) bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	_, found := s.entries[id]
	return found
}

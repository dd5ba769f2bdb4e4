// Package imagestore holds images extracted from score packs, keyed by
// name. The store is process-wide: images referenced by name from any
// loaded document resolve through it. Insertion is last-writer-wins.
package imagestore

import (
	"encoding/hex"
	"sort"
	"sync"

	"github.com/zeebo/blake3"
)

// Image is one stored image with its content hash.
type Image struct {
	Name string
	Data []byte
	// Hash is the hex BLAKE3 digest of Data, recorded so identical
	// images loaded under different names can be recognized.
	Hash string
}

// Store is a named image table safe for concurrent use. Loads of
// different documents may run in parallel and insert into the same Store.
type Store struct {
	mu     sync.RWMutex
	images map[string]Image
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{images: make(map[string]Image)}
}

// Default is the process-wide store used when no explicit store is
// injected into a load.
var Default = NewStore()

// Add registers an image under name. A previous image with the same name
// is replaced.
func (s *Store) Add(name string, data []byte) Image {
	sum := blake3.Sum256(data)
	img := Image{
		Name: name,
		Data: data,
		Hash: hex.EncodeToString(sum[:]),
	}
	s.mu.Lock()
	s.images[name] = img
	s.mu.Unlock()
	return img
}

// Get returns the image stored under name.
func (s *Store) Get(name string) (Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[name]
	return img, ok
}

// Names returns the stored image names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.images))
	for name := range s.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored images.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}

// Clear removes all images. Intended for session teardown and tests.
func (s *Store) Clear() {
	s.mu.Lock()
	s.images = make(map[string]Image)
	s.mu.Unlock()
}

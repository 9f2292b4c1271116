package paradigm

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/wortlab/deutschtext/internal/domain"
)

//go:embed bundle.json
var embeddedBundle []byte

// Match is a surface-form hit: the owning entry plus the paradigm slot
// that produced the form. Slot is nil when the token matched the base
// form directly rather than a specific inflectional cell — feature
// resolution reports "unknown" in that case.
type Match struct {
	Entry *Entry
	Slot  *Slot
}

// Store is the in-memory surface-form index over a parsed bundle.
// Read-only after construction and safe for unsynchronized concurrent
// reads.
type Store struct {
	entries map[domain.WordClass][]*Entry
	byBase  map[domain.WordClass]map[string]*Entry
	index   map[domain.WordClass]map[string][]Match
}

// NewStore builds the surface-form index from a parsed bundle. Entries
// are enumerated in bundle source order and slots in paradigm order, so
// the first candidate recorded for an ambiguous surface form is the
// match-priority winner.
func NewStore(b *Bundle) *Store {
	s := &Store{
		entries: make(map[domain.WordClass][]*Entry, 3),
		byBase:  make(map[domain.WordClass]map[string]*Entry, 3),
		index:   make(map[domain.WordClass]map[string][]Match, 3),
	}
	s.add(domain.WordClassVerb, b.Verbs)
	s.add(domain.WordClassNoun, b.Nouns)
	s.add(domain.WordClassAdjective, b.Adjectives)
	return s
}

func (s *Store) add(class domain.WordClass, entries []*Entry) {
	byBase := make(map[string]*Entry, len(entries))
	index := make(map[string][]Match)

	for _, e := range entries {
		if _, ok := byBase[e.Key]; !ok {
			byBase[e.Key] = e
		}
		for i := range e.Slots {
			slot := &e.Slots[i]
			index[slot.Form] = append(index[slot.Form], Match{Entry: e, Slot: slot})
		}
	}

	s.entries[class] = entries
	s.byBase[class] = byBase
	s.index[class] = index
}

// FindEntry looks up a lowercase token within one word class: direct
// base-form match first, then the surface-form index. Repeated calls
// return the same match for the same token.
func (s *Store) FindEntry(class domain.WordClass, token string) (Match, bool) {
	if e, ok := s.byBase[class][token]; ok {
		return Match{Entry: e}, true
	}
	if candidates := s.index[class][token]; len(candidates) > 0 {
		return candidates[0], true
	}
	return Match{}, false
}

// Entries returns the entries of one class in bundle source order.
func (s *Store) Entries(class domain.WordClass) []*Entry {
	return s.entries[class]
}

// Len reports the total number of entries across all classes.
func (s *Store) Len() int {
	n := 0
	for _, entries := range s.entries {
		n += len(entries)
	}
	return n
}

// LoadFile parses the bundle at path and builds a store from it.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("paradigm bundle: read %s: %w", path, err)
	}
	b, err := ParseBundle(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return NewStore(b), nil
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the store built from the embedded bundle. The build
// runs exactly once per process; later calls return the same store.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		b, err := ParseBundle(bytes.NewReader(embeddedBundle))
		if err != nil {
			defaultErr = err
			return
		}
		defaultStore = NewStore(b)
	})
	return defaultStore, defaultErr
}

func lower(s string) string { return strings.ToLower(s) }

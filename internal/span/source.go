package span

import "sync"

// Source is a registered input: a name and, optionally, its content (built-in
// declarations register a source with no content).
type Source struct {
	ID      SourceID
	Name    string
	Content string
	hasBody bool
}

// HasContent reports whether the source was registered with body text.
func (s Source) HasContent() bool {
	return s.hasBody
}

// Set assigns dense SourceIDs to registered sources. Sources are never
// removed; registration is safe for concurrent use, since the diagnostic
// engine may register sources from multiple goroutines.
type Set struct {
	mu      sync.RWMutex
	sources []Source
}

// NewSet returns an empty source set.
func NewSet() *Set {
	return &Set{}
}

// Register assigns the next dense id to name/content and returns it.
func (s *Set) Register(name, content string) SourceID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := SourceID(len(s.sources))
	s.sources = append(s.sources, Source{ID: id, Name: name, Content: content, hasBody: true})
	return id
}

// RegisterName registers a source with no content (e.g. a synthetic source
// for built-in types, whose spans are never rendered).
func (s *Set) RegisterName(name string) SourceID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := SourceID(len(s.sources))
	s.sources = append(s.sources, Source{ID: id, Name: name})
	return id
}

// Get returns the source for id, if it was registered in this set.
func (s *Set) Get(id SourceID) (Source, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(s.sources) {
		return Source{}, false
	}
	return s.sources[id], true
}

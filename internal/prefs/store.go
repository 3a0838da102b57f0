package prefs

import (
	"log"
	"sync"

	"github.com/ghassen-kharrat/portfolio/internal/translations"
)

// Persister is the durable backing store for one visitor's preferences.
// *preferences.Repository satisfies it.
type Persister interface {
	Get(visitorID, key string) (string, error)
	GetAll(visitorID string) (map[string]string, error)
	Set(visitorID, key, value string) error
	Delete(visitorID, key string) error
}

// Store holds the in-memory preference state for a single visitor.
//
// All mutation goes through Set/Reset. Persistence failures are logged and
// never surfaced to callers; the in-memory value still updates so the
// session degrades to memory-only persistence.
type Store struct {
	visitorID string
	persister Persister

	mu     sync.Mutex
	values map[Key]string
	subs   map[Key][]*subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(value string)
}

// NewStore creates a preference store for a visitor. Call Boot before first
// use to load persisted values and resolve the first-load theme.
func NewStore(visitorID string, persister Persister) *Store {
	values := make(map[Key]string, len(Keys))
	for _, key := range Keys {
		values[key] = Default(key)
	}
	return &Store{
		visitorID: visitorID,
		persister: persister,
		values:    values,
		subs:      make(map[Key][]*subscriber),
	}
}

// Boot loads persisted values, replacing defaults where a valid stored value
// exists. Malformed or out-of-domain stored values fall back to the default.
//
// osThemeHint carries the client's OS color-scheme signal ("light", "dark" or
// ""). It is consulted only when no theme has ever been stored: the resolved
// theme is persisted immediately, so later hints never override it.
func (s *Store) Boot(osThemeHint string) {
	stored, err := s.persister.GetAll(s.visitorID)
	if err != nil {
		log.Printf("WARNING: loading preferences for visitor %s: %v", s.visitorID, err)
		stored = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	themeStored := false
	for _, key := range Keys {
		raw, ok := stored[string(key)]
		if !ok {
			continue
		}
		if !definitions[key].valid(raw) {
			log.Printf("WARNING: stored preference %s has malformed value, using default", key)
			continue
		}
		s.values[key] = raw
		if key == KeyTheme {
			themeStored = true
		}
	}

	if !themeStored {
		resolved := ThemeDark
		if osThemeHint == ThemeLight {
			resolved = ThemeLight
		}
		s.values[KeyTheme] = resolved
		s.persist(KeyTheme, resolved)
	}
}

// Get returns the current value for a key, or the documented default for an
// unknown key ("" if the key is not defined at all).
func (s *Store) Get(key Key) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Set validates and applies a new value. Invalid values are rejected with a
// logged warning and the prior value is retained; the return value reports
// whether the set was applied. On success the value is persisted and every
// subscriber for the key is invoked with the new value.
func (s *Store) Set(key Key, value string) bool {
	def, ok := definitions[key]
	if !ok {
		log.Printf("WARNING: set of unknown preference %q ignored", key)
		return false
	}
	if !def.valid(value) {
		log.Printf("WARNING: invalid value %q for preference %s, keeping previous", value, key)
		return false
	}

	s.mu.Lock()
	s.values[key] = value
	s.persist(key, value)
	subs := s.snapshotSubs(key)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(value)
	}
	return true
}

// Reset restores the documented default for a key, with the same persistence
// and subscriber semantics as Set.
func (s *Store) Reset(key Key) {
	if !IsDefined(key) {
		log.Printf("WARNING: reset of unknown preference %q ignored", key)
		return
	}
	s.Set(key, Default(key))
}

// Subscribe registers a callback invoked after every successful Set (or
// Reset) of the key. The returned function removes this subscriber without
// affecting others.
func (s *Store) Subscribe(key Key, fn func(value string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	sub := &subscriber{id: s.nextID, fn: fn}
	s.subs[key] = append(s.subs[key], sub)

	id := sub.id
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		list := s.subs[key]
		for i, candidate := range list {
			if candidate.id == id {
				s.subs[key] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// Theme returns the current theme value.
func (s *Store) Theme() string {
	return s.Get(KeyTheme)
}

// Locale returns the current locale.
func (s *Store) Locale() translations.Locale {
	return translations.Locale(s.Get(KeyLocale))
}

// Accessibility returns the decoded accessibility record. Stored values are
// always valid (Set refuses anything else), so decoding cannot fail here.
func (s *Store) Accessibility() Accessibility {
	a, err := DecodeAccessibility(s.Get(KeyAccessibility))
	if err != nil {
		return DefaultAccessibility()
	}
	return a
}

// Close detaches all subscribers. Get/Set remain usable but no longer notify.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = make(map[Key][]*subscriber)
}

// persist writes through to durable storage. Callers hold s.mu.
// Failures are logged only: the in-memory update has already taken
// effect and must survive for the rest of the session.
func (s *Store) persist(key Key, value string) {
	if err := s.persister.Set(s.visitorID, string(key), value); err != nil {
		log.Printf("WARNING: persisting preference %s for visitor %s: %v", key, s.visitorID, err)
	}
}

func (s *Store) snapshotSubs(key Key) []*subscriber {
	list := s.subs[key]
	out := make([]*subscriber, len(list))
	copy(out, list)
	return out
}

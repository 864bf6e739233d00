package atn

import "sync"

// Store is a thread-safe, insert-if-absent associative store. The automaton
// owns one per decision and one per lexer mode; external prediction engines
// fill them with memoized lookahead results (DFA states, keyed however the
// engine sees fit). Entries are never removed or replaced: the first writer
// of a key wins and every later reader sees that entry, fully constructed.
type Store struct {
	mu      sync.RWMutex
	entries map[string]interface{}
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]interface{})}
}

// Get returns the entry stored under key, if any.
func (st *Store) Get(key string) (interface{}, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	v, ok := st.entries[key]
	return v, ok
}

// GetOrInsert stores v under key unless an entry exists. It returns the
// winning entry and true if v was inserted. Concurrent inserts of the same
// key agree on one winner; no update is ever lost or half-visible.
func (st *Store) GetOrInsert(key string, v interface{}) (interface{}, bool) {
	st.mu.RLock()
	found, ok := st.entries[key]
	st.mu.RUnlock()
	if ok {
		return found, false
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if found, ok := st.entries[key]; ok {
		return found, false
	}
	st.entries[key] = v
	return v, true
}

// Size returns the number of entries in the store.
func (st *Store) Size() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.entries)
}

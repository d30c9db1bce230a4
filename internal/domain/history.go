package domain

import "sync"

// History is the newest-first list of characters fetched during a session.
// Entries are only ever prepended.
type History struct {
	mu      sync.RWMutex
	entries []*Character
}

func NewHistory() *History {
	return &History{}
}

// Prepend inserts c at the front of the history.
func (h *History) Prepend(c *Character) {
	if c == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, nil)
	copy(h.entries[1:], h.entries)
	h.entries[0] = c
}

// FindByName returns the first entry whose lowercased name equals term.
func (h *History) FindByName(term string) *Character {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, entry := range h.entries {
		if entry.MatchesTerm(term) {
			return entry
		}
	}
	return nil
}

// Snapshot returns a copy of the entries in newest-first order.
func (h *History) Snapshot() []*Character {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]*Character, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

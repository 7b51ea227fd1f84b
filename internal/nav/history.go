package nav

import "strings"

// History is an append-only stack of URL fragments ("#about").
type History struct {
	entries []string
}

func (h *History) Push(fragment string) {
	h.entries = append(h.entries, fragment)
}

// Current returns the latest fragment, or "" when empty.
func (h *History) Current() string {
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}

// Back drops the current entry and returns the section id of the one before
// it; "" means the initial, fragment-less entry. It reports false when there
// is nothing to go back to.
func (h *History) Back() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return strings.TrimPrefix(h.Current(), "#"), true
}

func (h *History) Len() int { return len(h.entries) }

// Entries returns a copy of the stack, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

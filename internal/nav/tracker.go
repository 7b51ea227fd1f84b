package nav

// DefaultOffset compensates for fixed headers when deciding which section
// the reader is in.
const DefaultOffset = 100

// Tracker derives the active section from a scroll position.
type Tracker struct {
	Registry Registry
	Offset   int
}

// Active returns the lowest section whose top is at or above
// scrollY+Offset. Sections missing from tops are skipped. When none
// qualifies the registry default is returned.
func (t Tracker) Active(tops map[string]int, scrollY int) string {
	pos := scrollY + t.Offset
	secs := t.Registry.sections
	for i := len(secs) - 1; i >= 0; i-- {
		top, ok := tops[secs[i].ID]
		if ok && top <= pos {
			return secs[i].ID
		}
	}
	return t.Registry.Default()
}

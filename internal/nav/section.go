// Package nav tracks which portfolio section is active and coordinates the
// responsive navigation state (side panel vs. bottom bar and drawer).
package nav

// Section identifiers, in page order.
const (
	Home     = "home"
	About    = "about"
	Projects = "projects"
	Contact  = "contact"
)

// Section is one named region of the page. Order defines scan order.
type Section struct {
	ID    string
	Order int
}

// Registry is the fixed, ordered list of sections.
type Registry struct {
	sections []Section
	index    map[string]int
}

// NewRegistry builds a registry from ids in page order.
func NewRegistry(ids ...string) Registry {
	r := Registry{index: make(map[string]int, len(ids))}
	for _, id := range ids {
		if _, dup := r.index[id]; dup || id == "" {
			continue
		}
		r.index[id] = len(r.sections)
		r.sections = append(r.sections, Section{ID: id, Order: len(r.sections)})
	}
	return r
}

// DefaultRegistry returns home, about, projects, contact.
func DefaultRegistry() Registry {
	return NewRegistry(Home, About, Projects, Contact)
}

// Sections returns a copy of the sections in registration order.
func (r Registry) Sections() []Section {
	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// IDs returns the section ids in registration order.
func (r Registry) IDs() []string {
	out := make([]string, len(r.sections))
	for i, s := range r.sections {
		out[i] = s.ID
	}
	return out
}

func (r Registry) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Index returns the position of id, or -1.
func (r Registry) Index(id string) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

// Default is the first registered section.
func (r Registry) Default() string {
	if len(r.sections) == 0 {
		return ""
	}
	return r.sections[0].ID
}

func (r Registry) Len() int { return len(r.sections) }

package nav

import (
	"reflect"
	"testing"
)

func TestRegistryOrder(t *testing.T) {
	r := DefaultRegistry()
	if want := []string{Home, About, Projects, Contact}; !reflect.DeepEqual(r.IDs(), want) {
		t.Fatalf("IDs() = %v, want %v", r.IDs(), want)
	}
	if r.Default() != Home {
		t.Fatalf("Default() = %q", r.Default())
	}
	if r.Index(Projects) != 2 || r.Index("blog") != -1 {
		t.Fatalf("unexpected index results")
	}
}

func TestNewRegistryDropsDuplicates(t *testing.T) {
	r := NewRegistry("a", "b", "a", "")
	if r.Len() != 2 || !r.Has("b") || r.Has("") {
		t.Fatalf("unexpected registry %v", r.IDs())
	}
	for i, s := range NewRegistry("a", "a", "", "b").Sections() {
		if s.Order != i {
			t.Fatalf("section %q has order %d, want %d", s.ID, s.Order, i)
		}
	}
}

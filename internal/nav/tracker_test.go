package nav

import "testing"

var pageTops = map[string]int{Home: 0, About: 800, Projects: 1600, Contact: 2400}

func TestTrackerActiveScenarios(t *testing.T) {
	tr := Tracker{Registry: DefaultRegistry(), Offset: DefaultOffset}
	tests := []struct {
		name    string
		scrollY int
		want    string
	}{
		{"top of page", 0, Home},
		{"inside about", 750, About},
		{"just before about line", 699, Home},
		{"on about line", 700, About},
		{"inside projects", 1600, Projects},
		{"bottom", 5000, Contact},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.Active(pageTops, tt.scrollY); got != tt.want {
				t.Fatalf("Active(%d) = %q, want %q", tt.scrollY, got, tt.want)
			}
		})
	}
}

func TestTrackerNoneQualifyFallsBackToDefault(t *testing.T) {
	tr := Tracker{Registry: DefaultRegistry(), Offset: DefaultOffset}
	tops := map[string]int{Home: 500, About: 900}
	if got := tr.Active(tops, 0); got != Home {
		t.Fatalf("expected default %q, got %q", Home, got)
	}
}

func TestTrackerSkipsUnrenderedSections(t *testing.T) {
	tr := Tracker{Registry: DefaultRegistry(), Offset: DefaultOffset}
	tops := map[string]int{Home: 0, About: 800, Contact: 2400}
	if got := tr.Active(tops, 2000); got != About {
		t.Fatalf("expected %q with projects missing, got %q", About, got)
	}
}

// The active section is always the last registered section whose top is at
// or above scrollY+offset.
func TestTrackerMatchesLinearDefinition(t *testing.T) {
	reg := DefaultRegistry()
	tr := Tracker{Registry: reg, Offset: DefaultOffset}
	for s := -200; s <= 3000; s += 7 {
		want := reg.Default()
		for _, sec := range reg.Sections() {
			if pageTops[sec.ID] <= s+DefaultOffset {
				want = sec.ID
			}
		}
		if got := tr.Active(pageTops, s); got != want {
			t.Fatalf("scrollY=%d: got %q, want %q", s, got, want)
		}
	}
}

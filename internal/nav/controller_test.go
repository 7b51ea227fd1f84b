package nav

import (
	"reflect"
	"testing"
)

// recordingHost scrolls instantly and logs every effect in call order.
type recordingHost struct {
	tops    map[string]int
	scrollY int
	calls   []string
	history History
}

func (h *recordingHost) PushFragment(fragment string) {
	h.calls = append(h.calls, "push "+fragment)
	h.history.Push(fragment)
}

func (h *recordingHost) ScrollTo(id string) bool {
	top, ok := h.tops[id]
	if !ok {
		h.calls = append(h.calls, "skip "+id)
		return false
	}
	h.calls = append(h.calls, "scroll "+id)
	h.scrollY = top
	return true
}

func newTestController(width int) (*Controller, *recordingHost) {
	c := NewController(DefaultRegistry(), Classifier{Breakpoint: 900}, DefaultOffset)
	c.SetTops(pageTops)
	c.Resize(width)
	return c, &recordingHost{tops: pageTops}
}

func TestControllerDefaults(t *testing.T) {
	c := NewController(DefaultRegistry(), Classifier{Breakpoint: 900}, DefaultOffset)
	if got := c.State(); got != (State{Active: Home}) {
		t.Fatalf("unexpected initial state %+v", got)
	}
	if c.Class() != Desktop {
		t.Fatalf("expected desktop before first resize, got %v", c.Class())
	}
}

func TestSelectEffectOrder(t *testing.T) {
	c, h := newTestController(400)
	if !c.ToggleOverlay() {
		t.Fatalf("expected toggle to be available on mobile")
	}
	if !c.Select(Projects, h) {
		t.Fatalf("expected select to succeed")
	}
	want := []string{"push #projects", "scroll projects"}
	if !reflect.DeepEqual(h.calls, want) {
		t.Fatalf("calls = %v, want %v", h.calls, want)
	}
	if got := c.State(); got != (State{Active: Projects}) {
		t.Fatalf("unexpected state %+v", got)
	}
}

func TestSelectUnknownIsNoop(t *testing.T) {
	c, h := newTestController(400)
	c.ToggleOverlay()
	if c.Select("blog", h) {
		t.Fatalf("expected unknown id to be rejected")
	}
	if len(h.calls) != 0 {
		t.Fatalf("expected no effects, got %v", h.calls)
	}
	if got := c.State(); got != (State{Active: Home, OverlayOpen: true}) {
		t.Fatalf("state changed on unknown id: %+v", got)
	}
}

func TestSelectMissingAnchorStillActivates(t *testing.T) {
	c := NewController(DefaultRegistry(), Classifier{Breakpoint: 900}, DefaultOffset)
	h := &recordingHost{tops: map[string]int{Home: 0}}
	c.Select(Contact, h)
	if c.Active() != Contact {
		t.Fatalf("expected %q active, got %q", Contact, c.Active())
	}
	if want := []string{"push #contact", "skip contact"}; !reflect.DeepEqual(h.calls, want) {
		t.Fatalf("calls = %v, want %v", h.calls, want)
	}
}

func TestSelectTwiceIsStable(t *testing.T) {
	c, h := newTestController(1200)
	c.Select(Projects, h)
	first := c.State()
	c.Select(Projects, h)
	if c.State() != first {
		t.Fatalf("state drifted: %+v then %+v", first, c.State())
	}
	if h.history.Current() != "#projects" {
		t.Fatalf("unexpected fragment %q", h.history.Current())
	}
	if h.history.Len() != 2 {
		t.Fatalf("expected one push per call, got %d", h.history.Len())
	}
}

func TestSelectConvergesAfterScroll(t *testing.T) {
	for _, id := range DefaultRegistry().IDs() {
		c, h := newTestController(1200)
		c.Select(id, h)
		c.Observe(h.scrollY)
		if c.Active() != id {
			t.Fatalf("after selecting %q tracker settled on %q", id, c.Active())
		}
	}
}

func TestSelectConvergesThroughAnimation(t *testing.T) {
	c, h := newTestController(1200)
	c.Select(Contact, h)
	target := h.scrollY
	// Replay the intermediate frames a smooth scroll would produce.
	for y := 0; y != target; {
		step := (target - y) / 5
		if step == 0 {
			step = 1
		}
		y += step
		c.Observe(y)
	}
	if c.Active() != Contact {
		t.Fatalf("expected %q after animation, got %q", Contact, c.Active())
	}
}

func TestMobileScenario(t *testing.T) {
	c, h := newTestController(400)
	if c.Class() != Mobile {
		t.Fatalf("expected mobile at 400 wide")
	}
	c.ToggleOverlay()
	if !c.State().OverlayOpen {
		t.Fatalf("expected overlay open after toggle")
	}
	c.Select(About, h)
	if c.State().OverlayOpen {
		t.Fatalf("expected select to close the overlay")
	}
}

func TestToggleUnavailableOnDesktop(t *testing.T) {
	c, _ := newTestController(1200)
	if c.ToggleOverlay() {
		t.Fatalf("expected toggle to be unavailable on desktop")
	}
	if c.State().OverlayOpen {
		t.Fatalf("desktop must never open the overlay")
	}
}

func TestResizeToDesktopClosesOverlay(t *testing.T) {
	for w := 100; w <= 1600; w += 50 {
		c, _ := newTestController(400)
		c.ToggleOverlay()
		c.Resize(w)
		if c.Class() == Desktop && c.State().OverlayOpen {
			t.Fatalf("overlay open on desktop at width %d", w)
		}
	}
}

func TestCloseOverlayIdempotent(t *testing.T) {
	c, _ := newTestController(400)
	c.ToggleOverlay()
	c.CloseOverlay()
	c.CloseOverlay()
	if c.State().OverlayOpen {
		t.Fatalf("expected overlay closed")
	}
}

func TestObserveReportsChanges(t *testing.T) {
	c, _ := newTestController(1200)
	if c.Observe(0) {
		t.Fatalf("expected no change at top")
	}
	if !c.Observe(750) || c.Active() != About {
		t.Fatalf("expected change to %q, got %q", About, c.Active())
	}
	if c.Observe(760) {
		t.Fatalf("expected no change within about")
	}
}

func TestRestoreDoesNotPush(t *testing.T) {
	c, h := newTestController(1200)
	c.Select(About, h)
	c.Select(Contact, h)
	id, ok := h.history.Back()
	if !ok || id != About {
		t.Fatalf("Back() = %q, %v", id, ok)
	}
	h.calls = nil
	c.Restore(id, h)
	if c.Active() != About {
		t.Fatalf("expected %q restored, got %q", About, c.Active())
	}
	if want := []string{"scroll about"}; !reflect.DeepEqual(h.calls, want) {
		t.Fatalf("calls = %v, want %v", h.calls, want)
	}
	id, ok = h.history.Back()
	if !ok || id != "" {
		t.Fatalf("expected the initial entry, got %q, %v", id, ok)
	}
	c.Restore(id, h)
	if c.Active() != Home {
		t.Fatalf("expected default restored, got %q", c.Active())
	}
	if _, ok := h.history.Back(); ok {
		t.Fatalf("expected empty history")
	}
}

func TestSetTopsIgnoresUnknownIDs(t *testing.T) {
	c, _ := newTestController(1200)
	c.SetTops(map[string]int{Home: 0, "footer": 10})
	if _, ok := c.Tops()["footer"]; ok {
		t.Fatalf("unregistered id kept in tops")
	}
}

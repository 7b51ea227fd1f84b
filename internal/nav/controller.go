package nav

// State is the navigation state owned by the Controller.
type State struct {
	Active      string
	OverlayOpen bool
}

// Host performs the fire-and-forget side effects of a selection.
type Host interface {
	// PushFragment records a new history entry such as "#about".
	PushFragment(fragment string)
	// ScrollTo requests a smooth scroll bringing the section's top to the
	// top of the viewport. It reports false if the section has no anchor.
	ScrollTo(id string) bool
}

// Controller owns State. It is not safe for concurrent use; it lives on the
// UI event loop.
type Controller struct {
	registry   Registry
	classifier Classifier
	tracker    Tracker

	state State
	class Class
	tops  map[string]int
}

// NewController starts on the registry default, classified Desktop until
// the first Resize.
func NewController(r Registry, c Classifier, offset int) *Controller {
	return &Controller{
		registry:   r,
		classifier: c,
		tracker:    Tracker{Registry: r, Offset: offset},
		state:      State{Active: r.Default()},
		class:      Desktop,
		tops:       map[string]int{},
	}
}

func (c *Controller) State() State         { return c.state }
func (c *Controller) Active() string       { return c.state.Active }
func (c *Controller) Class() Class         { return c.class }
func (c *Controller) Registry() Registry   { return c.registry }
func (c *Controller) Offset() int          { return c.tracker.Offset }
func (c *Controller) Tops() map[string]int { return c.tops }

// Resize reclassifies the viewport. Desktop never shows the overlay.
func (c *Controller) Resize(width int) Class {
	c.class = c.classifier.Classify(width)
	if c.class == Desktop {
		c.state.OverlayOpen = false
	}
	return c.class
}

// SetTops records the measured top of each rendered section.
func (c *Controller) SetTops(tops map[string]int) {
	c.tops = make(map[string]int, len(tops))
	for id, top := range tops {
		if c.registry.Has(id) {
			c.tops[id] = top
		}
	}
}

// Observe recomputes the active section for scrollY and reports whether it
// changed.
func (c *Controller) Observe(scrollY int) bool {
	next := c.tracker.Active(c.tops, scrollY)
	if next == c.state.Active {
		return false
	}
	c.state.Active = next
	return true
}

// Select navigates to id. Effects run in order: active update, history
// push, scroll request, overlay close on Mobile. Unknown ids are ignored.
func (c *Controller) Select(id string, h Host) bool {
	if !c.registry.Has(id) {
		return false
	}
	c.state.Active = id
	if h != nil {
		h.PushFragment("#" + id)
		h.ScrollTo(id)
	}
	if c.class == Mobile {
		c.state.OverlayOpen = false
	}
	return true
}

// Restore navigates to id as a history traversal: no new entry is pushed.
// An empty id restores the registry default.
func (c *Controller) Restore(id string, h Host) bool {
	if id == "" {
		id = c.registry.Default()
	}
	if !c.registry.Has(id) {
		return false
	}
	c.state.Active = id
	if h != nil {
		h.ScrollTo(id)
	}
	if c.class == Mobile {
		c.state.OverlayOpen = false
	}
	return true
}

// ToggleOverlay flips the drawer. It is unavailable on Desktop and reports
// false there.
func (c *Controller) ToggleOverlay() bool {
	if c.class != Mobile {
		return false
	}
	c.state.OverlayOpen = !c.state.OverlayOpen
	return true
}

func (c *Controller) CloseOverlay() {
	c.state.OverlayOpen = false
}

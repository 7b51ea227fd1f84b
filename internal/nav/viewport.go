package nav

// Class is the binary viewport classification.
type Class int

const (
	Desktop Class = iota
	Mobile
)

func (c Class) String() string {
	if c == Mobile {
		return "mobile"
	}
	return "desktop"
}

// DefaultBreakpoint is the terminal column count at which the layout
// switches to the persistent side panel.
const DefaultBreakpoint = 100

// Classifier maps a measured width to a Class.
type Classifier struct {
	Breakpoint int
}

// Classify is pure and total. Widths that could not be measured (<= 0)
// classify as Desktop so navigation stays visible.
func (c Classifier) Classify(width int) Class {
	if width <= 0 {
		return Desktop
	}
	bp := c.Breakpoint
	if bp <= 0 {
		bp = DefaultBreakpoint
	}
	if width >= bp {
		return Desktop
	}
	return Mobile
}

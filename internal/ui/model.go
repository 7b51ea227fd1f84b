// Package ui is the Bubble Tea front end: a scrollable portfolio document
// with a side panel on wide terminals and a bottom bar plus drawer on
// narrow ones.
package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/content"
	"folio/internal/nav"
	"folio/internal/render"
)

// Options configures the model.
type Options struct {
	Breakpoint   int
	Offset       int // detection offset in rows
	SidebarWidth int
	Dark         bool
	Style        string // glamour style override; "" follows Dark
	Wrap         int    // 0 = content width
}

var labels = map[string]string{
	nav.Home:     "Home",
	nav.About:    "About",
	nav.Projects: "Projects",
	nav.Contact:  "Contact",
}

func label(id string) string {
	if l, ok := labels[id]; ok {
		return l
	}
	return id
}

// Model is the tea.Model for the portfolio.
type Model struct {
	opts      Options
	portfolio *content.Portfolio
	nav       *nav.Controller
	history   *nav.History

	view   viewport.Model
	doc    *render.Document
	width  int
	height int
	err    error

	dark  bool
	style string

	linkIndex    int // -1 none
	drawerCursor int
	dialogOpen   bool

	// smooth scroll animation
	animating     bool
	targetOffset  int
	scrollGen     int
	scrollSection string // section a selection is scrolling to, "" otherwise

	now func() time.Time
}

// New builds a model. It renders nothing until the first WindowSizeMsg.
func New(p *content.Portfolio, opts Options) Model {
	if opts.SidebarWidth <= 0 {
		opts.SidebarWidth = 32
	}
	v := viewport.New(0, 0)
	v.MouseWheelEnabled = true
	return Model{
		opts:      opts,
		portfolio: p,
		nav:       nav.NewController(nav.DefaultRegistry(), nav.Classifier{Breakpoint: opts.Breakpoint}, opts.Offset),
		history:   &nav.History{},
		view:      v,
		dark:      opts.Dark,
		style:     opts.Style,
		linkIndex: -1,
		now:       time.Now,
	}
}

// State exposes the navigation state, mostly for callers embedding the model.
func (m Model) State() nav.State { return m.nav.State() }

// Class is the current viewport classification.
func (m Model) Class() nav.Class { return m.nav.Class() }

// Fragment is the current history fragment, "" before any selection.
func (m Model) Fragment() string { return m.history.Current() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case scrollTick:
		if !m.animating || msg.gen != m.scrollGen {
			return m, nil
		}
		m.stepAnimation()
		m.observe()
		if m.animating {
			return m, scrollTicker(m.scrollGen)
		}
		return m, nil

	case linkOpenedMsg:
		if msg.err != nil {
			log.Printf("open %s: %v", msg.url, msg.err)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	prev := m.nav.Class()
	m.width, m.height = width, height
	class := m.nav.Resize(width)
	if class != prev {
		log.Printf("viewport %dx%d classified %s", width, height, class)
	}
	if class == nav.Desktop {
		m.view.Width = max(1, width-m.opts.SidebarWidth)
		m.view.Height = max(1, height-statusHeight)
	} else {
		m.view.Width = max(1, width)
		m.view.Height = max(1, height-headerHeight-bottomBarHeight)
	}
	m.rerender()
}

// rerender rebuilds the document for the current width, theme and class,
// keeping the reader at the same place inside the active section.
func (m *Model) rerender() {
	active := m.nav.Active()
	within := 0
	if m.doc != nil {
		if top, ok := m.doc.Tops[active]; ok {
			within = max(0, m.view.YOffset-top)
		}
	}

	wrap := m.opts.Wrap
	if wrap <= 0 || wrap > m.view.Width {
		wrap = m.view.Width
	}
	doc, err := render.Build(m.blocks(), render.Options{
		Width:          wrap,
		Style:          m.glamourStyle(),
		MinSectionRows: m.nav.Offset() + 1,
	})
	if err != nil {
		m.err = fmt.Errorf("rendering portfolio: %w", err)
		return
	}
	m.err = nil
	m.doc = doc
	m.nav.SetTops(doc.Tops)
	m.view.SetContent(strings.Join(doc.Padded(m.view.Height), "\n"))

	if len(doc.Links) == 0 {
		m.linkIndex = -1
	} else if m.linkIndex >= len(doc.Links) {
		m.linkIndex = len(doc.Links) - 1
	}

	if m.animating {
		// Re-aim an in-flight selection at the section's new top.
		if top, ok := doc.Tops[m.scrollSection]; ok {
			m.targetOffset = top
		}
		m.targetOffset = clamp(m.targetOffset, 0, m.maxOffset())
		return
	}
	if top, ok := doc.Tops[active]; ok {
		next := top + within
		if nextID := doc.SectionAt(next); nextID != active {
			next = top
		}
		m.view.SetYOffset(clamp(next, 0, m.maxOffset()))
	}
	m.observe()
}

func (m *Model) blocks() []render.Block {
	ids := m.nav.Registry().IDs()
	out := make([]render.Block, 0, len(ids))
	for _, id := range ids {
		md := m.portfolio.Markdown(id)
		if id == nav.Contact && m.nav.Class() == nav.Mobile {
			md += m.footerMarkdown()
		}
		out = append(out, render.Block{ID: id, Markdown: md})
	}
	return out
}

func (m *Model) footerMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n---\n\n© %d %s\n\n", m.now().Year(), m.portfolio.Profile.Name)
	var links []string
	for _, l := range m.portfolio.ContactLinks() {
		links = append(links, fmt.Sprintf("[%s](%s)", l.Label, l.URL))
	}
	if len(links) > 0 {
		b.WriteString(strings.Join(links, " · ") + "\n")
	}
	return b.String()
}

func (m *Model) glamourStyle() string {
	if s := strings.TrimSpace(m.style); s != "" && s != "auto" {
		return s
	}
	if m.dark {
		return "dark"
	}
	return "light"
}

func (m *Model) toggleTheme() {
	m.dark = !m.dark
	m.style = ""
	log.Printf("theme dark=%v", m.dark)
	if m.width > 0 {
		m.rerender()
	}
}

// observe feeds the current scroll offset to the tracker.
func (m *Model) observe() {
	if m.nav.Observe(m.view.YOffset) {
		log.Printf("active section %s at offset %d", m.nav.Active(), m.view.YOffset)
	}
}

func (m *Model) maxOffset() int {
	return max(0, m.view.TotalLineCount()-m.view.Height)
}

// ---------- navigation ----------

// host adapts the model to nav.Host for the duration of one call.
type host struct {
	m   *Model
	cmd tea.Cmd
}

func (h *host) PushFragment(fragment string) {
	h.m.history.Push(fragment)
	log.Printf("history push %s", fragment)
}

func (h *host) ScrollTo(id string) bool {
	if h.m.doc == nil {
		return false
	}
	top, ok := h.m.doc.Tops[id]
	if !ok {
		log.Printf("no anchor for section %s", id)
		return false
	}
	h.cmd = h.m.startScrollTo(top)
	if h.m.animating {
		h.m.scrollSection = id
	}
	return true
}

func (m *Model) selectSection(id string) tea.Cmd {
	h := &host{m: m}
	if !m.nav.Select(id, h) {
		return nil
	}
	m.linkIndex = -1
	return h.cmd
}

func (m *Model) selectIndex(i int) tea.Cmd {
	ids := m.nav.Registry().IDs()
	if i < 0 || i >= len(ids) {
		return nil
	}
	return m.selectSection(ids[i])
}

func (m *Model) back() tea.Cmd {
	id, ok := m.history.Back()
	if !ok {
		return nil
	}
	h := &host{m: m}
	m.nav.Restore(id, h)
	log.Printf("history back to %q", id)
	return h.cmd
}

func (m *Model) toggleOverlay() {
	if !m.nav.ToggleOverlay() {
		return
	}
	if m.nav.State().OverlayOpen {
		m.drawerCursor = max(0, m.nav.Registry().Index(m.nav.Active()))
	}
}

// ---------- links ----------

func (m *Model) cycleLink(delta int) {
	if m.doc == nil || len(m.doc.Links) == 0 {
		return
	}
	n := len(m.doc.Links)
	switch {
	case m.linkIndex == -1 && delta > 0:
		m.linkIndex = 0
	case m.linkIndex == -1:
		m.linkIndex = n - 1
	default:
		m.linkIndex = (m.linkIndex + delta + n) % n
	}
	m.scrollToLink()
}

func (m *Model) scrollToLink() {
	if m.linkIndex < 0 || m.linkIndex >= len(m.doc.Links) {
		return
	}
	line := m.doc.Links[m.linkIndex].Line
	if line < 0 {
		return
	}
	m.jumpTo(line - m.view.Height/2)
}

func (m *Model) followLink() tea.Cmd {
	if m.doc == nil || m.linkIndex < 0 || m.linkIndex >= len(m.doc.Links) {
		return nil
	}
	dest := strings.TrimSpace(m.doc.Links[m.linkIndex].Target)
	if dest == "" {
		return nil
	}
	if strings.HasPrefix(dest, "#") {
		return m.selectSection(strings.TrimPrefix(dest, "#"))
	}
	return openLink(dest)
}

func (m *Model) focusedLink() (render.Link, bool) {
	if m.doc == nil || m.linkIndex < 0 || m.linkIndex >= len(m.doc.Links) {
		return render.Link{}, false
	}
	return m.doc.Links[m.linkIndex], true
}

// clamp bounds v to [lo, hi]; lo wins when the range is empty.
func clamp(v, lo, hi int) int { return max(lo, min(v, hi)) }

// Sized returns a copy of the model laid out for a width x height terminal,
// so the first frame is drawn at the real size.
func (m Model) Sized(width, height int) Model {
	m.resize(width, height)
	return m
}

// Err reports a rendering failure from the last layout.
func (m Model) Err() error { return m.err }

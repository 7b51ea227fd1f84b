package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"folio/internal/nav"
)

// Screen geometry shared by View and mouse hit-testing.
const (
	statusHeight    = 1
	headerHeight    = 1
	bottomBarHeight = 2

	panelNameRow  = 1
	panelEntryRow = 4

	drawerEntryRow = 2
	maxDrawerWidth = 32

	headerMenuCells  = 3
	headerThemeCells = 3
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#1976D2", Dark: "#64B5F6"}
	subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#9E9E9E"}

	nameStyle     = lipgloss.NewStyle().Bold(true)
	roleStyle     = lipgloss.NewStyle().Foreground(subtle)
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	inactiveStyle = lipgloss.NewStyle().Foreground(subtle)
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	hintStyle     = lipgloss.NewStyle().Foreground(subtle).Faint(true)
)

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.dialogOpen {
		return m.dialogView()
	}
	if m.nav.Class() == nav.Desktop {
		return m.desktopView()
	}
	return m.mobileView()
}

// ---------- desktop ----------

func (m Model) desktopView() string {
	main := lipgloss.JoinVertical(lipgloss.Left, m.view.View(), m.statusLine(m.view.Width))
	return lipgloss.JoinHorizontal(lipgloss.Top, m.panelView(), main)
}

func (m Model) panelView() string {
	w := m.opts.SidebarWidth - 1 // right border
	inner := w - 2               // padding
	p := m.portfolio.Profile

	rows := make([]string, 0, m.height)
	rows = append(rows,
		"",
		nameStyle.Render(fit(p.Name, inner)),
		roleStyle.Render(fit(p.Role, inner)),
		"",
	)
	for i, id := range m.nav.Registry().IDs() {
		rows = append(rows, m.navEntry(i, id, inner, false))
	}
	rows = append(rows, "",
		hintStyle.Render(fit("1-4 jump · ←/→ step", inner)),
		hintStyle.Render(fit("tab links · ⌫ back", inner)),
		hintStyle.Render(fit("t theme · p profile · q quit", inner)),
	)

	return lipgloss.NewStyle().
		Width(w).
		Height(m.height).
		MaxHeight(m.height).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(subtle).
		Render(strings.Join(rows, "\n"))
}

func (m Model) navEntry(i int, id string, width int, cursor bool) string {
	text := fmt.Sprintf("  %d %s", i+1, label(id))
	style := inactiveStyle
	if id == m.nav.Active() {
		text = fmt.Sprintf("› %d %s", i+1, label(id))
		style = activeStyle
	}
	if cursor {
		style = style.Inherit(cursorStyle)
	}
	return style.Render(fit(text, width))
}

func (m Model) statusLine(width int) string {
	ratio := 0.0
	if mo := m.maxOffset(); mo > 0 {
		ratio = float64(m.view.YOffset) / float64(mo)
	}
	ids := m.nav.Registry().IDs()
	lbl := fmt.Sprintf(" %s %d/%d ", label(m.nav.Active()), m.nav.Registry().Index(m.nav.Active())+1, len(ids))
	if l, ok := m.focusedLink(); ok {
		lbl = fmt.Sprintf(" %s → %s ", l.Text, l.Target)
	}
	return drawProgressBar(width, ratio, lbl)
}

func drawProgressBar(width int, ratio float64, label string) string {
	if width < 3 {
		return strings.Repeat("█", max(0, width))
	}
	fill := clamp(int(float64(width)*ratio), 0, width)
	bar := []rune(strings.Repeat("█", fill) + strings.Repeat("░", width-fill))

	label = runewidth.Truncate(label, width-2, "…")
	if lw := runewidth.StringWidth(label); lw > 0 && lw < width {
		start := (width - lw) / 2
		for i, r := range []rune(label) {
			if start+i < len(bar) {
				bar[start+i] = r
			}
		}
	}
	return string(bar)
}

// ---------- mobile ----------

func (m Model) mobileView() string {
	body := m.view.View()
	if m.nav.State().OverlayOpen {
		body = overlayLeft(body, m.drawerView(), m.view.Width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.bottomBarView())
}

func (m Model) headerView() string {
	p := m.portfolio.Profile
	theme := " ☾ "
	if m.dark {
		theme = " ☀ "
	}
	right := theme + " ≡ "
	avail := max(1, m.width-runewidth.StringWidth(right))
	left := nameStyle.Render(p.Name)
	if p.Role != "" {
		left += roleStyle.Render(" · " + p.Role)
	}
	left = ansi.Truncate(left, avail, "…")
	pad := max(0, avail-ansi.StringWidth(left))
	return left + strings.Repeat(" ", pad) + right
}

func (m Model) bottomBarView() string {
	ids := m.nav.Registry().IDs()
	sep := inactiveStyle.Render(strings.Repeat("─", m.width))
	var tabs strings.Builder
	for i, id := range ids {
		// Cells follow the same split used for hit-testing.
		cw := (i+1)*m.width/len(ids) - i*m.width/len(ids)
		style := inactiveStyle
		if id == m.nav.Active() {
			style = activeStyle.Underline(true)
		}
		tabs.WriteString(style.Width(cw).MaxWidth(cw).Align(lipgloss.Center).Render(fit(label(id), cw)))
	}
	return sep + "\n" + tabs.String()
}

func (m Model) drawerWidth() int {
	return min(maxDrawerWidth, max(12, m.width-4))
}

func (m Model) drawerView() string {
	w := m.drawerWidth() - 1
	inner := w - 2
	p := m.portfolio.Profile
	rows := []string{
		nameStyle.Render(fit("Menu", inner-4)) + hintStyle.Render(" esc"),
		"",
	}
	for i, id := range m.nav.Registry().IDs() {
		rows = append(rows, m.navEntry(i, id, inner, i == m.drawerCursor))
	}
	rows = append(rows, "",
		nameStyle.Render(fit(p.Name, inner)),
		roleStyle.Render(fit(p.Role, inner)),
	)
	return lipgloss.NewStyle().
		Width(w).
		Height(m.view.Height).
		MaxHeight(m.view.Height).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(accent).
		Render(strings.Join(rows, "\n"))
}

// overlayLeft paints fg over the left edge of bg, keeping the rest of each
// background row visible as the backdrop.
func overlayLeft(bg, fg string, width int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	for i := range bgLines {
		if i >= len(fgLines) {
			break
		}
		fw := ansi.StringWidth(fgLines[i])
		bgLines[i] = fgLines[i] + "\x1b[0m" + ansi.Cut(bgLines[i], fw, width)
	}
	return strings.Join(bgLines, "\n")
}

// ---------- profile dialog ----------

func (m Model) dialogView() string {
	p := m.portfolio.Profile
	var rows []string
	rows = append(rows, nameStyle.Render(p.Name), roleStyle.Render(p.Role), "")
	if p.Tagline != "" {
		rows = append(rows, p.Tagline, "")
	}
	if p.Avatar != "" {
		rows = append(rows, hintStyle.Render("image: "+p.Avatar), "")
	}
	for _, l := range m.portfolio.ContactLinks() {
		rows = append(rows, fmt.Sprintf("%s  %s", activeStyle.Render(fmt.Sprintf("%-9s", l.Label)), l.Text))
	}
	rows = append(rows, "", hintStyle.Render("esc close"))

	box := lipgloss.NewStyle().Padding(1, 2)
	if m.nav.Class() == nav.Mobile {
		// full screen
		box = box.Width(max(1, m.width-4)).Height(max(1, m.height-2))
	} else {
		box = box.Width(min(60, m.width-4)).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent)
	}
	card := box.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// fit truncates s to width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

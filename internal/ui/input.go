package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/nav"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" || key == "Q" {
		return m, tea.Quit
	}

	if m.dialogOpen {
		switch key {
		case "esc", "p", "enter":
			m.dialogOpen = false
		}
		return m, nil
	}

	if m.nav.State().OverlayOpen {
		n := m.nav.Registry().Len()
		switch key {
		case "esc", "m":
			m.nav.CloseOverlay()
			return m, nil
		case "up", "k":
			m.drawerCursor = (m.drawerCursor - 1 + n) % n
			return m, nil
		case "down", "j":
			m.drawerCursor = (m.drawerCursor + 1) % n
			return m, nil
		case "enter":
			return m, m.selectIndex(m.drawerCursor)
		}
	}

	switch key {
	case "esc":
		return m, tea.Quit

	// Smooth single-line scrolling via animator
	case "up", "k":
		return m, m.scrollBy(-1)
	case "down", "j":
		return m, m.scrollBy(1)

	// Smooth page scrolling via animator
	case "pgup", "ctrl+b":
		return m, m.scrollBy(-m.view.Height)
	case "pgdown", "ctrl+f", " ":
		return m, m.scrollBy(m.view.Height)

	case "home", "g":
		m.jumpTo(0)
		return m, nil
	case "end", "G":
		m.jumpTo(m.maxOffset())
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return m, m.selectIndex(int(key[0] - '1'))
	case "left", "h", "[":
		return m, m.selectIndex(m.nav.Registry().Index(m.nav.Active()) - 1)
	case "right", "l", "]":
		return m, m.selectIndex(m.nav.Registry().Index(m.nav.Active()) + 1)

	case "m":
		m.toggleOverlay()
		return m, nil
	case "t":
		m.toggleTheme()
		return m, nil
	case "p":
		m.dialogOpen = true
		return m, nil
	case "backspace", "alt+left":
		return m, m.back()

	case "tab":
		m.cycleLink(1)
		return m, nil
	case "shift+tab":
		m.cycleLink(-1)
		return m, nil
	case "enter":
		return m, m.followLink()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		if m.dialogOpen {
			return m, nil
		}
		m.stopScroll()
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		m.observe()
		return m, cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.dialogOpen {
		m.dialogOpen = false
		return m, nil
	}

	if m.nav.Class() == nav.Desktop {
		if msg.X >= m.opts.SidebarWidth {
			return m, nil
		}
		if msg.Y == panelNameRow {
			m.dialogOpen = true
			return m, nil
		}
		return m, m.selectIndex(msg.Y - panelEntryRow)
	}

	// Mobile
	if msg.Y == m.height-1 {
		// The bottom bar stays live over an open drawer; Select closes it.
		return m, m.selectIndex(m.tabAt(msg.X))
	}
	if m.nav.State().OverlayOpen {
		if msg.X >= m.drawerWidth() || msg.Y < headerHeight || msg.Y >= m.height-bottomBarHeight {
			// backdrop
			m.nav.CloseOverlay()
			return m, nil
		}
		row := msg.Y - headerHeight - drawerEntryRow
		if row >= 0 && row < m.nav.Registry().Len() {
			return m, m.selectIndex(row)
		}
		return m, nil
	}
	if msg.Y == 0 {
		switch {
		case msg.X >= m.width-headerMenuCells:
			m.toggleOverlay()
		case msg.X >= m.width-headerMenuCells-headerThemeCells:
			m.toggleTheme()
		default:
			m.dialogOpen = true
		}
	}
	return m, nil
}

// tabAt maps a column of the bottom bar to a tab index.
func (m Model) tabAt(x int) int {
	n := m.nav.Registry().Len()
	for i := 0; i < n; i++ {
		if x < (i+1)*m.width/n {
			return i
		}
	}
	return n - 1
}

package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// scrollTick drives one animation frame. Ticks from an earlier animation
// carry a stale gen and are dropped.
type scrollTick struct{ gen int }

func scrollTicker(gen int) tea.Cmd {
	// ~60 FPS; one tracker evaluation per frame
	return tea.Tick(time.Second/60, func(time.Time) tea.Msg { return scrollTick{gen: gen} })
}

// startScrollTo aims the animator at target. Only the first call of an
// animation returns a ticker; later calls retarget the running one.
func (m *Model) startScrollTo(target int) tea.Cmd {
	m.targetOffset = clamp(target, 0, m.maxOffset())
	if m.view.YOffset == m.targetOffset {
		m.stopScroll()
		return nil
	}
	if m.animating {
		return nil
	}
	m.animating = true
	m.scrollGen++
	return scrollTicker(m.scrollGen)
}

// scrollBy is a reader-driven scroll; it abandons any section target.
func (m *Model) scrollBy(delta int) tea.Cmd {
	m.scrollSection = ""
	return m.startScrollTo(m.view.YOffset + delta)
}

func (m *Model) stopScroll() {
	m.animating = false
	m.scrollSection = ""
}

// jumpTo scrolls without animation.
func (m *Model) jumpTo(offset int) {
	m.stopScroll()
	m.view.SetYOffset(clamp(offset, 0, m.maxOffset()))
	m.observe()
}

func (m *Model) stepAnimation() {
	cur := m.view.YOffset
	tgt := m.targetOffset
	if cur == tgt {
		m.stopScroll()
		return
	}
	diff := tgt - cur
	step := diff / 5
	if step == 0 {
		if diff > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	next := cur + step
	if (diff > 0 && next > tgt) || (diff < 0 && next < tgt) {
		next = tgt
	}
	m.view.SetYOffset(next)
	if m.view.YOffset == tgt || m.view.YOffset == cur {
		// Reached the target, or the viewport refused to move further.
		m.stopScroll()
	}
}

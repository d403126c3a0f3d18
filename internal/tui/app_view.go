package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Screens render into the viewport at most this tall.
const maxBodyLines = 2000

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	crumbs := m.renderCrumbs()
	links := m.renderLinks()
	body := strings.Join([]string{crumbs, m.viewport.View(), links}, "\n")
	available := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	body = fitHeight(body, available)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

// refresh sizes the viewport and reloads it when the screen on show changed.
func (m *Model) refresh() {
	chrome := 3 + 1 + lipgloss.Height(m.renderLinks())
	m.viewport.Width = max(1, m.width-2)
	m.viewport.Height = max(1, m.height-chrome)

	cur := m.currentScreen()
	if cur == nil {
		return
	}
	key := fmt.Sprintf("%d/%s/%d", m.ctrl.ActiveIndex(), m.trail(), m.viewport.Width)
	if key == m.contentKey {
		return
	}
	screenChanged := !strings.HasPrefix(m.contentKey, fmt.Sprintf("%d/%s/", m.ctrl.ActiveIndex(), m.trail()))
	m.contentKey = key
	m.viewport.SetContent(cur.View(m.viewport.Width, maxBodyLines))
	if screenChanged {
		m.viewport.GotoTop()
	}
}

func (m Model) trail() string {
	sn, ok := m.activeNavigator()
	if !ok {
		return ""
	}
	return strings.Join(sn.Trail(), "/")
}

func (m Model) renderCrumbs() string {
	sn, ok := m.activeNavigator()
	if !ok {
		return ""
	}
	line := crumbStyle.Render(strings.Join(sn.Trail(), " › "))
	return ansi.Truncate(line, max(1, m.width), "")
}

func (m Model) renderLinks() string {
	cur := m.currentScreen()
	if cur == nil || len(cur.Links()) == 0 {
		return ""
	}
	sel := m.cursor[m.ctrl.ActiveIndex()]
	lines := make([]string, 0, len(cur.Links()))
	for i, l := range cur.Links() {
		if i == sel {
			lines = append(lines, linkFocusStyle.Render("› "+l))
		} else {
			lines = append(lines, linkStyle.Render("  "+l))
		}
	}
	return strings.Join(lines, "\n")
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render("tabnav")
	right := m.bar.View(m.width)
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

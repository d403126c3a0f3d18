package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tabnav/internal/deeplink"
	"github.com/jask/tabnav/internal/nav"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.route(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) route(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.ready = true
			if m.pending != nil {
				req := *m.pending
				m.pending = nil
				m.openDeepLink(req)
			}
		}
		return nil
	case DeepLinkMsg:
		if !m.ready {
			req := msg.Request
			m.pending = &req
			return nil
		}
		m.openDeepLink(msg.Request)
		return nil
	case SavedMsg:
		if msg.Err != nil {
			m.failures.Severe(fmt.Errorf("save navigation state: %w", msg.Err))
		} else {
			m.SetStatus("Saved")
			m.logger.Info("navigation saved", "session", msg.SessionID)
		}
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keys.Action(msg, m.ActiveScope())
	if !ok {
		return nil
	}
	switch action {
	case actionQuit:
		m.quitting = true
		return tea.Quit
	case actionSave:
		return m.saveCmd()
	case actionBack:
		return m.back()
	case actionSwitchTab:
		if k := msg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			m.chooseTab(int(k[0] - '1'))
		}
	case actionNextTab:
		m.swipe(1)
	case actionPrevTab:
		m.swipe(-1)
	case actionLinkDown:
		m.moveCursor(1)
	case actionLinkUp:
		m.moveCursor(-1)
	case actionOpenLink:
		m.openLink()
	case actionScrollDown, actionScrollUp:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) saveCmd() tea.Cmd {
	if m.store == nil || m.session == "" {
		m.SetStatus("Nothing to save to")
		return nil
	}
	saved := m.snapshot()
	store := m.store
	return func() tea.Msg {
		ctx, cancel := saveContext()
		defer cancel()
		return SavedMsg{SessionID: saved.SessionID, Err: store.Save(ctx, saved)}
	}
}

func saveContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func (m *Model) back() tea.Cmd {
	active := m.ctrl.ActiveIndex()
	switch m.ctrl.OnHostBackPressed() {
	case nav.BackConsumed:
		m.cursor[active] = 0
	case nav.BackRestored:
		m.SetStatus("Back to " + m.ctrl.Active().Title)
	case nav.BackExit:
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *Model) chooseTab(position int) {
	id, ok := m.bar.ItemAt(position)
	if !ok {
		return
	}
	switch m.bar.Choose(id) {
	case ChoiceChosen:
		if _, err := m.ctrl.OnSelectorItemChosen(id); err != nil {
			m.failures.Severe(err)
		}
	case ChoiceReselected:
		if err := m.ctrl.OnSelectorItemReselected(id); err != nil {
			m.failures.Severe(err)
			return
		}
		m.cursor[m.ctrl.ActiveIndex()] = 0
	}
}

// swipe moves to the neighbouring page. There is no wrap-around.
func (m *Model) swipe(delta int) {
	target := m.ctrl.ActiveIndex() + delta
	if target < 0 || target >= m.ctrl.Len() {
		return
	}
	if _, err := m.ctrl.OnPageSelected(target); err != nil {
		m.failures.Severe(err)
	}
}

func (m *Model) moveCursor(delta int) {
	cur := m.currentScreen()
	if cur == nil {
		return
	}
	n := len(cur.Links())
	if n == 0 {
		return
	}
	active := m.ctrl.ActiveIndex()
	m.cursor[active] = (m.cursor[active] + delta + n) % n
}

func (m *Model) openLink() {
	sn, ok := m.activeNavigator()
	if !ok {
		return
	}
	links := sn.Current().Links()
	active := m.ctrl.ActiveIndex()
	i := m.cursor[active]
	if i < 0 || i >= len(links) {
		return
	}
	if err := sn.Navigate(links[i], nil); err != nil {
		m.failures.Usual(err)
		return
	}
	m.cursor[active] = 0
}

func (m *Model) openDeepLink(req deeplink.Request) {
	idx, ok := m.ctrl.OnDeepLinkReceived(req)
	if !ok {
		m.failures.Usual(fmt.Errorf("no tab handles %s", req))
		return
	}
	m.cursor[idx] = 0
	m.SetStatus("Opened " + req.String())
}

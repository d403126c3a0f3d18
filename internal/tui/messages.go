package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tabnav/internal/deeplink"
)

// DeepLinkMsg asks the host to route a deep link.
type DeepLinkMsg struct {
	Request deeplink.Request
}

// SavedMsg reports the outcome of a state save.
type SavedMsg struct {
	SessionID string
	Err       error
}

func DeepLinkCmd(req deeplink.Request) tea.Cmd {
	return func() tea.Msg { return DeepLinkMsg{Request: req} }
}

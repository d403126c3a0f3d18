package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/tabnav/internal/database/repository"
	"github.com/jask/tabnav/internal/deeplink"
	"github.com/jask/tabnav/internal/failure"
	"github.com/jask/tabnav/internal/nav"
	"github.com/jask/tabnav/internal/screens"
)

const (
	scopeLinks = "screen:links"
	scopeLeaf  = "screen:leaf"
)

// Store persists navigation snapshots.
type Store interface {
	Save(ctx context.Context, s repository.SavedState) error
	Load(ctx context.Context, sessionID string) (repository.SavedState, error)
}

// ScreenNavigator is the part of a tab's navigator the host draws and drives.
type ScreenNavigator interface {
	Current() screens.Screen
	Navigate(screenID string, args map[string]string) error
	Trail() []string
}

type Options struct {
	Controller *nav.Controller
	Store      Store
	SessionID  string
	// StartTab is used only when no saved state was restored.
	StartTab string
	// StartLink is sent from Init and routed once the first window size
	// arrives.
	StartLink *deeplink.Request
	Keys      *KeyRegistry
	Logger    *log.Logger
	Failures  *failure.Broadcaster
}

type statusLine struct {
	text  string
	isErr bool
}

type Model struct {
	width    int
	height   int
	ready    bool
	quitting bool
	restored bool

	ctrl     *nav.Controller
	bar      *TabBar
	keys     *KeyRegistry
	store    Store
	session  string
	logger   *log.Logger
	failures *failure.Broadcaster
	status   *statusLine

	cursor     map[int]int // link cursor per tab
	startLink  *deeplink.Request
	pending    *deeplink.Request
	viewport   viewport.Model
	contentKey string
}

func NewModel(ctx context.Context, opts Options) (Model, error) {
	if opts.Controller == nil {
		return Model{}, errors.New("tui: controller is required")
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Failures == nil {
		opts.Failures = failure.NewBroadcaster(failure.Debug)
	}
	m := Model{
		width:     100,
		height:    32,
		ctrl:      opts.Controller,
		bar:       NewTabBar(opts.Controller.Destinations()),
		keys:      opts.Keys,
		store:     opts.Store,
		session:   opts.SessionID,
		logger:    opts.Logger,
		failures:  opts.Failures,
		status:    &statusLine{text: "Ready"},
		cursor:    map[int]int{},
		startLink: opts.StartLink,
		viewport:  viewport.New(100, 20),
	}

	bar := m.bar
	m.ctrl.AddSelectionListener(func(index int, _ nav.Destination) { bar.Sync(index) })
	status, logger := m.status, m.logger
	m.failures.Observe("status", failure.Usual|failure.Severe, func(f failure.Failure) {
		status.text = f.Err.Error()
		status.isErr = true
	})
	m.failures.Observe("log", failure.All, func(f failure.Failure) {
		if f.Level == failure.Severe {
			logger.Error("failure", "level", f.Level, "err", f.Err)
			return
		}
		logger.Warn("failure", "level", f.Level, "err", f.Err)
	})

	m.restore(ctx, opts.StartTab)
	m.bar.Sync(m.ctrl.ActiveIndex())
	m.refresh()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	title := tea.SetWindowTitle("tabnav")
	if m.startLink == nil {
		return title
	}
	return tea.Batch(title, DeepLinkCmd(*m.startLink))
}

// Controller exposes the navigation controller driving the model.
func (m Model) Controller() *nav.Controller { return m.ctrl }

func (m Model) Restored() bool { return m.restored }

func (m Model) Quitting() bool { return m.quitting }

func (m Model) Status() (string, bool) { return m.status.text, m.status.isErr }

func (m *Model) SetStatus(msg string) {
	m.status.text = msg
	m.status.isErr = false
}

// Save writes the current navigation state to the store.
func (m Model) Save(ctx context.Context) error {
	if m.store == nil || m.session == "" {
		return nil
	}
	return m.store.Save(ctx, m.snapshot())
}

func (m Model) snapshot() repository.SavedState {
	return repository.SavedState{
		SessionID: m.session,
		State:     m.ctrl.OnHostSave(),
		TabCount:  m.ctrl.Len(),
	}
}

func (m *Model) restore(ctx context.Context, startTab string) {
	if m.store != nil && m.session != "" {
		saved, err := m.store.Load(ctx, m.session)
		switch {
		case err == nil:
			if saved.TabCount != m.ctrl.Len() {
				m.logger.Warn("tab set changed since last save", "saved", saved.TabCount, "now", m.ctrl.Len())
			}
			if m.ctrl.OnHostRestore(saved.State) {
				m.restored = true
				m.SetStatus("Resumed session")
				return
			}
			m.failures.Usual(errors.New("saved navigation was unusable, starting fresh"))
			return
		case errors.Is(err, repository.ErrNotFound):
			m.logger.Debug("no saved navigation", "session", m.session)
		default:
			m.failures.Severe(fmt.Errorf("load navigation state: %w", err))
		}
	}
	if startTab == "" {
		return
	}
	idx, ok := m.ctrl.IndexOf(startTab)
	if !ok {
		m.failures.Usual(fmt.Errorf("unknown start tab %q", startTab))
		return
	}
	m.ctrl.RestoreState(nav.State{ActiveIndex: idx, History: []int{}})
}

// ActiveScope is the key scope of the screen on show.
func (m Model) ActiveScope() string {
	if cur := m.currentScreen(); cur != nil && len(cur.Links()) > 0 {
		return scopeLinks
	}
	return scopeLeaf
}

func (m Model) activeNavigator() (ScreenNavigator, bool) {
	sn, ok := m.ctrl.Active().Navigator.(ScreenNavigator)
	return sn, ok
}

func (m Model) currentScreen() screens.Screen {
	sn, ok := m.activeNavigator()
	if !ok {
		return nil
	}
	return sn.Current()
}

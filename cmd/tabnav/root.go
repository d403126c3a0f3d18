package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/tabnav/internal/catalog"
	"github.com/jask/tabnav/internal/deeplink"
	"github.com/jask/tabnav/internal/failure"
	"github.com/jask/tabnav/internal/nav"
	"github.com/jask/tabnav/internal/prefs"
	"github.com/jask/tabnav/internal/tui"
)

type rootFlags struct {
	config  string
	session string
	fresh   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "tabnav [deep-link]",
		Short: "Terminal tab host with per-tab history",
		Long: `tabnav hosts a fixed set of tabs, each with its own stack of screens.

Back unwinds the current tab first, then returns to the previously
visited tab. A deep link such as tabnav://library/book?title=Dune opens
the first tab able to handle it.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), flags, args)
		},
	}
	cmd.PersistentFlags().StringVar(&flags.config, "config", "", "config file (default is $HOME/.config/tabnav/config.toml)")
	cmd.Flags().StringVar(&flags.session, "session", "", "session id to resume")
	cmd.Flags().BoolVar(&flags.fresh, "fresh", false, "start a new session instead of resuming the last one")

	cmd.AddCommand(newStateCmd(flags))
	cmd.AddCommand(newLinkCmd(flags))
	return cmd
}

func runTUI(ctx context.Context, flags *rootFlags, args []string) error {
	var link *deeplink.Request
	if len(args) == 1 {
		req, err := deeplink.Parse(args[0])
		if err != nil {
			return err
		}
		link = &req
	}

	e, err := openEnv(flags.config)
	if err != nil {
		return err
	}
	defer e.Close()

	dests, err := catalog.Build(e.cfg.TabDefs(), e.cfg.UI.Theme)
	if err != nil {
		return err
	}
	ctrl, err := nav.NewController(dests, nav.WithLogger(e.logger))
	if err != nil {
		return err
	}
	bindings := tui.DefaultKeyBindings()
	if err := tui.ValidateActionKeybindings(bindings, e.cfg.Keys); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	session, resumed, err := prefs.ResolveSession(flags.session, flags.fresh)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	e.logger.Info("starting", "session", session, "resumed", resumed, "tabs", ctrl.Len())

	model, err := tui.NewModel(ctx, tui.Options{
		Controller: ctrl,
		Store:      e.states,
		SessionID:  session,
		StartTab:   e.cfg.UI.StartTab,
		StartLink:  link,
		Keys:       tui.NewKeyRegistry(tui.ApplyActionKeybindings(bindings, e.cfg.Keys)),
		Logger:     e.logger,
		Failures:   failure.NewBroadcaster(failure.Debug),
	})
	if err != nil {
		return err
	}

	final, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if fm, ok := final.(tui.Model); ok {
		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := fm.Save(saveCtx); err != nil {
			e.logger.Error("save on quit failed", "err", err)
			warnf("navigation state not saved: %v", err)
		}
		if err := prefs.SaveLastSession(session); err != nil {
			e.logger.Warn("record last session", "err", err)
		}
	}
	return runErr
}

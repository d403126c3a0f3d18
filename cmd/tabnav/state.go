package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/tabnav/internal/catalog"
	"github.com/jask/tabnav/internal/database/repository"
	"github.com/jask/tabnav/internal/prefs"
)

func newStateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect or clear saved navigation",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show [session]",
		Short: "Show a saved session (default: the last one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(flags.config)
			if err != nil {
				return err
			}
			defer e.Close()
			id, err := sessionArg(args)
			if err != nil {
				return err
			}
			saved, err := e.states.Load(cmd.Context(), id)
			if err != nil {
				return err
			}
			printState(cmd.OutOrStdout(), saved, e.cfg.TabDefs())
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(flags.config)
			if err != nil {
				return err
			}
			defer e.Close()
			all, err := e.states.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(all) == 0 {
				fmt.Fprintln(out, "no saved sessions")
				return nil
			}
			for _, s := range all {
				fmt.Fprintf(out, "%s  active=%d  history=%v  %s\n", s.SessionID, s.State.ActiveIndex, s.State.History, s.UpdatedAt.Format(time.RFC3339))
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reset [session]",
		Short: "Forget a saved session (default: the last one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(flags.config)
			if err != nil {
				return err
			}
			defer e.Close()
			id, err := sessionArg(args)
			if err != nil {
				return err
			}
			if err := e.states.Delete(cmd.Context(), id); err != nil {
				return err
			}
			e.logger.Info("navigation reset", "session", id)
			fmt.Fprintf(cmd.OutOrStdout(), "reset %s\n", id)
			return nil
		},
	})
	return cmd
}

func sessionArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	s, ok, err := prefs.LastSession()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New("no last session recorded; pass a session id")
	}
	return s.ID, nil
}

func printState(w io.Writer, s repository.SavedState, defs []catalog.TabDef) {
	name := func(i int) string {
		if i >= 0 && i < len(defs) {
			return defs[i].ID
		}
		return fmt.Sprintf("#%d?", i)
	}
	hist := make([]string, len(s.State.History))
	for i, h := range s.State.History {
		hist[i] = name(h)
	}
	fmt.Fprintf(w, "session:  %s\n", s.SessionID)
	fmt.Fprintf(w, "updated:  %s\n", s.UpdatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "active:   %s (%d)\n", name(s.State.ActiveIndex), s.State.ActiveIndex)
	fmt.Fprintf(w, "history:  [%s]\n", strings.Join(hist, " "))
	if s.TabCount != len(defs) {
		fmt.Fprintf(w, "note:     saved with %d tabs, %d configured now\n", s.TabCount, len(defs))
	}
	if err := s.State.Validate(len(defs)); err != nil {
		fmt.Fprintf(w, "invalid:  %v\n", err)
	}
}

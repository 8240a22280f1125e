package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/pagebar/pkg/pagebar/config"
	"github.com/BrandonKowalski/pagebar/pkg/pagebar/router"
	"github.com/spf13/cobra"
)

func simulateCmd() *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "simulate FILE STEP...",
		Short: "Replay navigation steps against a route file",
		Long: `Build the routes of FILE into an in-memory tree and apply each step
as its own frame. After every step the active page and stack depth are printed.

Steps:
  go:<path>   navigate to a route or a page id inside one
  back        navigate back
  tab:<n>     select tab n

Several steps joined with '+' form one batch, e.g. "back+tab:2".`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.Load(args[0])
			if err != nil {
				return err
			}
			return simulate(cmd.OutOrStdout(), f, args[1:], keepGoing)
		},
	}

	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "Report failed steps and continue")

	return cmd
}

// tabEcho records the selected tab.
type tabEcho struct {
	index int
}

func (t *tabEcho) SetSelectedIndex(index int) { t.index = index }

func simulate(w io.Writer, f *config.File, steps []string, keepGoing bool) error {
	if f.Bar.Discover != "" || f.Nav.Discover != "" {
		return errors.New("simulate needs explicit route lists; discovered regions depend on the running tree")
	}

	arena, err := f.Arena()
	if err != nil {
		return err
	}
	tabs := &tabEcho{index: -1}
	r := router.New(arena)
	if err := f.Apply(r, tabs); err != nil {
		return err
	}
	report(w, "start", r, tabs)

	for _, step := range steps {
		batch, err := parseStep(step)
		if err != nil {
			return err
		}
		if _, err := r.HandleActions(batch); err != nil {
			if !keepGoing {
				return err
			}
			fmt.Fprintf(w, "%-12s error: %v\n", step, err)
			continue
		}
		report(w, step, r, tabs)
	}
	return nil
}

func parseStep(step string) ([]router.Action, error) {
	var batch []router.Action
	for _, part := range strings.Split(step, "+") {
		switch {
		case part == "back":
			batch = append(batch, router.NavigateBackAction{})
		case strings.HasPrefix(part, "go:"):
			p := router.ParsePath(strings.TrimPrefix(part, "go:"))
			if p.IsEmpty() {
				return nil, fmt.Errorf("step %q: empty path", step)
			}
			batch = append(batch, router.NavigateToAction{Path: p})
		case strings.HasPrefix(part, "tab:"):
			n, err := strconv.Atoi(strings.TrimPrefix(part, "tab:"))
			if err != nil {
				return nil, fmt.Errorf("step %q: %w", step, err)
			}
			batch = append(batch, router.IndicatorSelectedAction{Index: n})
		default:
			return nil, fmt.Errorf("unknown step %q", part)
		}
	}
	return batch, nil
}

func report(w io.Writer, step string, r *router.Router, tabs *tabEcho) {
	active, _ := r.Active()
	line := fmt.Sprintf("%-12s active=%s stack=%d", step, active, r.Stack().Len())
	if tabs.index >= 0 {
		line += fmt.Sprintf(" tab=%d", tabs.index)
	}
	fmt.Fprintln(w, line)
}

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/draftail/behavior"
)

func (a *app) keysCmd() *cobra.Command {
	var mac bool
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List keyboard shortcuts and whether the configuration enables them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, shortcutTable(lipgloss.NewRenderer(a.out), cfg.Vocabulary(), mac))
			return err
		},
	}
	cmd.Flags().BoolVar(&mac, "mac", false, "show macOS shortcut labels")
	return cmd
}

func shortcutTable(r *lipgloss.Renderer, v behavior.Vocabulary, mac bool) string {
	var rows [][]string
	seen := map[string]bool{}
	for _, b := range behavior.Bindings() {
		if b.Command == "" || seen[b.Command] {
			continue
		}
		seen[b.Command] = true

		label, ok := behavior.ShortcutLabel(b.Command, mac)
		if !ok {
			label = "-"
		}
		rows = append(rows, []string{b.Command, label, yesNo(v.Enables(b))})
	}

	header := r.NewStyle().Bold(true)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Faint(true)).
		Headers("COMMAND", "SHORTCUT", "ENABLED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header.Padding(0, 1)
			}
			return r.NewStyle().Padding(0, 1)
		}).
		String()
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

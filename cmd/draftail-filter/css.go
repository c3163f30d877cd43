package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/draftail/behavior"
)

func (a *app) cssCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "css",
		Short: "Print the list nesting CSS the configuration needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			css, ok := behavior.ListNestingStyles(cfg.MaxDepth())
			if !ok {
				a.log.Info("no extra nesting styles needed", zap.Int("maxDepth", cfg.MaxDepth()))
				return nil
			}
			_, err = fmt.Fprintln(a.out, css)
			return err
		},
	}
}

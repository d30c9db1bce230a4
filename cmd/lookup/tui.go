package main

import (
	"github.com/spf13/cobra"

	"github.com/kapu/character-lookup-go/internal/app"
	"github.com/kapu/character-lookup-go/internal/tui"
)

func NewTUICmd(container func() *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive lookup widget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.Run(cmd.Context(), container().NewWidget())
		},
	}
}

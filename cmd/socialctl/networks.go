package main

import (
	"fmt"

	"github.com/next-trace/scg-social-adapter/networks"
	"github.com/spf13/cobra"
)

func newNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the available network adapters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range networks.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}
}

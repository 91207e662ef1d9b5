package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "socialctl",
		Short: "Drive social network adapters through a swappable manager",
		Long: `socialctl authenticates and publishes one piece of content through each configured
network adapter in turn, swapping the manager's active adapter between networks.
Adapters only emit notices; the sink decides where those notices go.`,
		// handled errors should not print usage
		SilenceUsage: true,
		Version:      version,
	}

	root.SetVersionTemplate(`{{printf "socialctl version %s\n" .Version}}`)

	root.AddCommand(newRunCmd())
	root.AddCommand(newNetworksCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of socialctl",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "socialctl version %s\n", version)
		},
	}
}

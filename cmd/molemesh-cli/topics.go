package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/molemesh/molemesh-go/pkg/channel"
)

func newTopicsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "Print the channel topic table for the resolved configuration",
		Long: `Derive and print the wire topic for every channel role, exactly as the
node would subscribe and publish them. Broadcast roles carry no node
identifier; targeted roles append it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTopics(cmd.OutOrStdout())
		},
	}
}

func runTopics(w io.Writer) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	table := channel.BuildTable(cfg)

	fmt.Fprintf(w, "Node:      %s\n", cfg.NodeID)
	if cfg.Namespace == "" {
		fmt.Fprintf(w, "Namespace: (default)\n\n")
	} else {
		fmt.Fprintf(w, "Namespace: %s\n\n", cfg.Namespace)
	}

	for _, role := range channel.All() {
		fmt.Fprintf(w, "%-18s %s\n", role, table[role])
	}

	return nil
}

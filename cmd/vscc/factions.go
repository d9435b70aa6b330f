package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/freeeve/vscc-rating/pkg/faction"
)

var factionsCmd = &cobra.Command{
	Use:   "factions",
	Short: "List factions in scenario column order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tFACTION\tSTART\tVICTORY\tALIASES")
		for _, f := range faction.All() {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n", int(f)+1, f, f.StartingCount(), f.VictoryThreshold(), strings.Join(f.Aliases(), ","))
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(factionsCmd)
}

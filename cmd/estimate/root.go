package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"grabbber/internal/services/revenue"

	"github.com/spf13/cobra"
)

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "estimate",
		Short:        "Estimate partner revenue by monthly traffic",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.AddCommand(newTiersCmd(), newShowCmd())
	return root
}

func newTiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List traffic tiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIER\tMONTHLY TRAFFIC")
			for _, info := range revenue.Tiers() {
				fmt.Fprintf(w, "%s\t%s\n", info.Tier, info.Label)
			}
			return w.Flush()
		},
	}
}

func newShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [tier]",
		Short: "Show the estimate for a tier",
		Long:  "Show the per-channel estimate, total and partner share for a tier.\nDefaults to " + revenue.DefaultTier.String() + ".",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var names []string
			for _, info := range revenue.Tiers() {
				names = append(names, info.Tier.String())
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tier := revenue.DefaultTier
			if len(args) == 1 {
				tier = revenue.Tier(args[0])
			}

			summary, err := revenue.Estimate(tier)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Summary revenue.Summary `json:"summary"`
					View    revenue.View    `json:"view"`
				}{summary, revenue.Present(summary)})
			}
			return printSummary(cmd.OutOrStdout(), summary)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print summary and display model as JSON")
	return cmd
}

func printSummary(out io.Writer, s revenue.Summary) error {
	view := revenue.Present(s)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "Traffic tier\t%s\t\n", s.Tier)
	for i, row := range view.Amounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", row.Channel, row.Text, view.Bars[i].Width)
	}
	fmt.Fprintf(w, "Total\t%s\t\n", view.Total.Text)
	fmt.Fprintf(w, "Your share (%d%%)\t%s\t\n", revenue.SharePercent, view.Share.Text)
	return w.Flush()
}

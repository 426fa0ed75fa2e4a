package main

import (
	"github.com/spf13/cobra"
)

func newOTFCommand(a *app) *cobra.Command {
	otfCmd := &cobra.Command{
		Use:   "otf",
		Short: "Open Table Format diffs (experimental)",
	}

	diffsCmd := &cobra.Command{
		Use:   "diffs",
		Short: "List the table diff types the server supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diffs, err := a.client.GetOTFDiffs(cmd.Context())
			if err != nil {
				return err
			}
			return a.out.otfDiffs(diffs)
		},
	}

	diffCmd := &cobra.Command{
		Use:   "diff <repository> <left ref> <right ref>",
		Short: "Show the table operations between two refs",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tablePath, _ := cmd.Flags().GetString("table-path")
			otfType, _ := cmd.Flags().GetString("type")
			list, err := a.client.OTFDiff(cmd.Context(), args[0], args[1], args[2], tablePath, otfType)
			if err != nil {
				return err
			}
			return a.out.otfDiff(list)
		},
	}
	diffCmd.Flags().String("table-path", "", "Path to the table location under the refs")
	diffCmd.Flags().String("type", "", "Diff type, one of the names listed by 'otf diffs'")
	_ = diffCmd.MarkFlagRequired("table-path")
	_ = diffCmd.MarkFlagRequired("type")

	otfCmd.AddCommand(diffsCmd, diffCmd)
	return otfCmd
}

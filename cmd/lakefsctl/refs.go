package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	lakefs "github.com/treeverse/lakefs-go"
)

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().String("prefix", "", "Only list refs whose ID starts with this prefix")
	cmd.Flags().String("after", "", "List refs after this ID (the next offset of the previous page)")
	cmd.Flags().Int("amount", 0, "Maximum number of refs to return (server default when 0)")
}

func listOptions(cmd *cobra.Command) *lakefs.ListOptions {
	prefix, _ := cmd.Flags().GetString("prefix")
	after, _ := cmd.Flags().GetString("after")
	amount, _ := cmd.Flags().GetInt("amount")
	return &lakefs.ListOptions{Prefix: prefix, After: after, Amount: amount}
}

func newBranchCommand(a *app) *cobra.Command {
	branchCmd := &cobra.Command{
		Use:   "branch",
		Short: "Work with branches",
	}
	listCmd := &cobra.Command{
		Use:   "list <repository>",
		Short: "List one page of branches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			branches, err := a.client.ListBranches(cmd.Context(), args[0], listOptions(cmd))
			if err != nil {
				return err
			}
			return a.out.refList("Branch", branches)
		},
	}
	addListFlags(listCmd)
	branchCmd.AddCommand(listCmd)
	return branchCmd
}

func newTagCommand(a *app) *cobra.Command {
	tagCmd := &cobra.Command{
		Use:   "tag",
		Short: "Work with tags",
	}
	listCmd := &cobra.Command{
		Use:   "list <repository>",
		Short: "List one page of tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := a.client.ListTags(cmd.Context(), args[0], listOptions(cmd))
			if err != nil {
				return err
			}
			return a.out.refList("Tag", tags)
		},
	}
	addListFlags(listCmd)
	tagCmd.AddCommand(listCmd)
	return tagCmd
}

func newRefsCommand(a *app) *cobra.Command {
	refsCmd := &cobra.Command{
		Use:   "refs <repository>",
		Short: "List the first page of branches and tags side by side",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := listOptions(cmd)
			var branches, tags *lakefs.RefList

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				branches, err = a.client.ListBranches(ctx, args[0], opts)
				return err
			})
			g.Go(func() error {
				var err error
				tags, err = a.client.ListTags(ctx, args[0], opts)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}
			return a.out.refs(branches, tags)
		},
	}
	addListFlags(refsCmd)
	return refsCmd
}

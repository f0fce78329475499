package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"laafitech/internal/adapter/repo"
	"laafitech/internal/infra"
	"laafitech/internal/predictor"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRunner(cmd.Context(), "migrate", func(ctx context.Context, sql *infra.SQLRunner) error {
				if err := infra.ApplySchema(ctx, sql); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
				return nil
			})
		},
	}
}

func publishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <campaign-id>",
		Short: "Move a draft campaign to active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withRunner(cmd.Context(), "publish", func(ctx context.Context, sql *infra.SQLRunner) error {
				c, err := repo.NewCampaignRepository(sql).Publish(ctx, id)
				if err != nil {
					return fmt.Errorf("publish campaign %d: %w", id, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "campaign %d %q is now %s\n", c.ID, c.Title, c.Status)
				return nil
			})
		},
	}
}

func matchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "match <donor-id>",
		Short: "Rank active campaigns for a donor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withRunner(cmd.Context(), "match", func(ctx context.Context, sql *infra.SQLRunner) error {
				matcher := predictor.NewMatcher(repo.NewDonorRepository(sql), repo.NewCampaignRepository(sql))
				matches, err := matcher.FindMatches(ctx, id, limit)
				if err != nil {
					return err
				}
				return writeMatches(cmd.OutOrStdout(), matches)
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "maximum number of campaigns to list")
	return cmd
}

func writeMatches(w io.Writer, matches []predictor.Match) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(w, "no matching campaigns")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CAMPAIGN\tTITLE\tSCORE\tREASON")
	for _, m := range matches {
		fmt.Fprintf(tw, "%d\t%s\t%.3f\t%s\n", m.CampaignID, m.CampaignTitle, m.MatchScore, m.MatchReason)
	}
	return tw.Flush()
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/wardrobe/internal/models"
)

func (a *app) wornCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "worn <outfit-id>",
		Short: "Record that an outfit was worn",
		Long: `Record that an outfit was worn on a date (default: today).

Recording the same outfit twice on one date is a no-op and prints the
existing record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outfitID, err := parseID("outfit id", args[0])
			if err != nil {
				return err
			}
			worn := a.today()
			if date != "" {
				if worn, err = models.ParseDate(date); err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}

			rec, created, err := a.ledger.RecordWorn(cmd.Context(), outfitID, worn)
			if err != nil {
				return err
			}
			return a.printWorn(cmd.OutOrStdout(), rec, created)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date worn, YYYY-MM-DD (default today)")
	return cmd
}

func (a *app) unwornCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unworn <history-id>",
		Short: "Remove a worn-history record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			historyID, err := parseID("history id", args[0])
			if err != nil {
				return err
			}
			rec, err := a.ledger.RemoveRecord(cmd.Context(), historyID)
			if err != nil {
				return err
			}
			return a.printRemoved(cmd.OutOrStdout(), rec)
		},
	}
}

type historyFlags struct {
	outfitID int64
	from     string
	to       string
	month    string
}

func (a *app) historyCmd() *cobra.Command {
	var f historyFlags
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List worn-history records",
		Long: `List worn-history records, newest first.

Use --outfit for one outfit, --from/--to for an inclusive date range or
--month YYYY-MM for a calendar month.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.queryHistory(cmd, &f)
			if err != nil {
				return err
			}
			return a.printHistory(cmd.OutOrStdout(), records)
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&f.outfitID, "outfit", 0, "Only records for this outfit id")
	flags.StringVar(&f.from, "from", "", "Range start, YYYY-MM-DD")
	flags.StringVar(&f.to, "to", "", "Range end, YYYY-MM-DD")
	flags.StringVar(&f.month, "month", "", "Calendar month, YYYY-MM")
	cmd.MarkFlagsRequiredTogether("from", "to")
	cmd.MarkFlagsMutuallyExclusive("outfit", "from")
	cmd.MarkFlagsMutuallyExclusive("outfit", "month")
	cmd.MarkFlagsMutuallyExclusive("from", "month")
	return cmd
}

func (a *app) queryHistory(cmd *cobra.Command, f *historyFlags) ([]models.HistoryRecord, error) {
	ctx := cmd.Context()
	flags := cmd.Flags()

	switch {
	case flags.Changed("outfit"):
		if f.outfitID <= 0 {
			return nil, fmt.Errorf("invalid --outfit %d", f.outfitID)
		}
		return a.ledger.ListHistoryByOutfit(ctx, f.outfitID)

	case flags.Changed("from"):
		start, err := models.ParseDate(f.from)
		if err != nil {
			return nil, fmt.Errorf("invalid --from: %w", err)
		}
		end, err := models.ParseDate(f.to)
		if err != nil {
			return nil, fmt.Errorf("invalid --to: %w", err)
		}
		return a.ledger.ListHistoryByDateRange(ctx, start, end)

	case flags.Changed("month"):
		t, err := time.Parse("2006-01", f.month)
		if err != nil {
			return nil, fmt.Errorf("invalid --month %q (want YYYY-MM)", f.month)
		}
		return a.ledger.ListHistoryByMonth(ctx, t.Year(), int(t.Month()))

	default:
		return a.ledger.ListHistory(ctx)
	}
}

func parseID(what, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return id, nil
}

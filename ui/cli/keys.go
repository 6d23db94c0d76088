// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/keydash/internal/activity"
	"github.com/toeirei/keydash/internal/i18n"
)

// newKeysCmd prints the keys the dashboard would start with.
func newKeysCmd() *cobra.Command {
	var reveal bool
	cmd := &cobra.Command{
		Use:   "keys",
		Short: i18n.T("cli.keys_short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := newState(appConfig)
			keys := st.Keys.List()
			out := cmd.OutOrStdout()
			if len(keys) == 0 {
				fmt.Fprintln(out, i18n.T("cli.no_keys"))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, strings.Join([]string{
				i18n.T("cli.col_id"),
				i18n.T("cli.col_name"),
				i18n.T("cli.col_key"),
				i18n.T("cli.col_created"),
				i18n.T("cli.col_status"),
				i18n.T("cli.col_permission"),
			}, "\t"))
			for _, k := range keys {
				value := k.DisplayKey
				if reveal {
					if secret, ok := st.Keys.Reveal(k.ID); ok {
						value = secret.Reveal()
					}
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					k.ID, k.Name, value, k.Created.Format("2006-01-02"), k.Status, k.Permissions)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, i18n.T("cli.reveal_flag"))
	return cmd
}

// newActivityCmd prints the usage counters and the recent activity feed.
func newActivityCmd() *cobra.Command {
	var ticks int
	cmd := &cobra.Command{
		Use:   "activity",
		Short: i18n.T("cli.activity_short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := newState(appConfig)
			if ticks > 0 {
				sim := activity.NewSimulator(nil)
				interval := appConfig.Activity.Interval
				if interval <= 0 {
					interval = activity.DefaultInterval
				}
				at := time.Now().Add(-time.Duration(ticks) * interval)
				for i := 0; i < ticks; i++ {
					at = at.Add(interval)
					st.Feed.Apply(sim.Step(at))
				}
			}

			out := cmd.OutOrStdout()
			s := st.Feed.Stats()
			fmt.Fprintln(out, i18n.T("cli.stats_line",
				i18n.FormatNumber(s.RequestsToday),
				i18n.FormatNumber(s.RequestsMonth),
				i18n.FormatNumber(s.PointsUsed),
				i18n.FormatNumber(s.PointsQuota),
				s.QuotaPercent()))

			entries := st.Feed.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(out, i18n.T("activity.empty"))
				return nil
			}
			fmt.Fprintln(out)
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, strings.ToUpper(strings.Join([]string{
				i18n.T("activity.col_time"),
				i18n.T("activity.col_endpoint"),
				i18n.T("activity.col_status"),
				i18n.T("activity.col_points"),
			}, "\t")))
			for _, a := range entries {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", a.Time, a.Endpoint, a.Status, a.Points)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 0, i18n.T("cli.ticks_flag"))
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(svc *services) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show progress statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := svc.progress.GetProgressStats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Roadmap completion: %d%%\n", stats.RoadmapCompletion)
			fmt.Fprintf(out, "Quizzes taken:      %d\n", stats.QuizzesTaken)
			fmt.Fprintf(out, "Last activity:      %s\n", stats.LastActivity)
			if len(stats.RecentQuizzes) > 0 {
				fmt.Fprintln(out, "Recent quizzes:")
				for _, q := range stats.RecentQuizzes {
					fmt.Fprintf(out, "  %-20s %3d%%  %s\n", q.Topic, q.Score, q.Date)
				}
			}
			return nil
		},
	}
}

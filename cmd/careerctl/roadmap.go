package main

import (
	"fmt"
	"io"
	"strings"

	"careerpath/internal/domain"

	"github.com/spf13/cobra"
)

func newRoadmapCmd(svc *services) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Generate and track a learning roadmap",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "generate <job role>",
		Short: "Generate a roadmap for a job role, replacing the saved one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roadmap := svc.roadmaps.GenerateRoadmap(strings.Join(args, " "))
			if err := svc.roadmaps.SaveRoadmapProgress(cmd.Context(), roadmap); err != nil {
				return err
			}
			printRoadmap(cmd.OutOrStdout(), roadmap)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the saved roadmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roadmap, err := svc.roadmaps.LoadRoadmapProgress(cmd.Context())
			if err != nil {
				return err
			}
			if roadmap == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No roadmap saved. Run: careerctl roadmap generate <job role>")
				return nil
			}
			printRoadmap(cmd.OutOrStdout(), roadmap)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status <topic> <not started|in progress|completed>",
		Short: "Change the status of a roadmap topic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseTopicStatus(args[1])
			if err != nil {
				return err
			}
			roadmap, err := svc.roadmaps.UpdateTopicStatus(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}
			printRoadmap(cmd.OutOrStdout(), roadmap)
			return nil
		},
	})

	return cmd
}

var statusMarks = map[domain.TopicStatus]string{
	domain.StatusNotStarted: "[ ]",
	domain.StatusInProgress: "[~]",
	domain.StatusCompleted:  "[x]",
}

func printRoadmap(out io.Writer, r *domain.Roadmap) {
	fmt.Fprintf(out, "%s (%d%% complete)\n", r.JobRole, r.Completion())
	for _, t := range r.Topics {
		fmt.Fprintf(out, "  %s %s\n", statusMarks[t.Status], t.Name)
		if len(t.Subtopics) > 0 {
			fmt.Fprintf(out, "      %s\n", strings.Join(t.Subtopics, ", "))
		}
	}
}

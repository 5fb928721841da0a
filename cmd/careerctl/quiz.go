package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"careerpath/internal/domain"

	"github.com/spf13/cobra"
)

func newQuizCmd(svc *services) *cobra.Command {
	var answersFlag string

	cmd := &cobra.Command{
		Use:   "quiz <topic>",
		Short: "Take a five-question quiz",
		Long: "Takes the quiz for a topic. Answers are read one per line from stdin\n" +
			"unless --answers is given. Options are numbered from 1.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := strings.Join(args, " ")
			quiz := svc.quizzes.GenerateQuiz(topic)
			out := cmd.OutOrStdout()

			var answers []int
			if answersFlag != "" {
				parsed, err := parseAnswers(answersFlag)
				if err != nil {
					return err
				}
				answers = parsed
			} else {
				answers = askQuestions(out, cmd.InOrStdin(), quiz)
			}

			submission, err := svc.quizzes.SubmitQuiz(cmd.Context(), topic, answers)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %d/%d correct, score %d%%\n",
				topic, submission.Correct, submission.Total, submission.Result.Score)
			return nil
		},
	}

	cmd.Flags().StringVar(&answersFlag, "answers", "", "comma separated option numbers, e.g. 3,1,3,3,2")
	return cmd
}

// askQuestions prints each question and reads one option number per line.
// Unreadable input counts as no answer.
func askQuestions(out io.Writer, in io.Reader, quiz *domain.Quiz) []int {
	scanner := bufio.NewScanner(in)
	answers := make([]int, 0, len(quiz.Questions))

	for i, q := range quiz.Questions {
		fmt.Fprintf(out, "\n%d. %s\n", i+1, q.Question)
		for j, option := range q.Options {
			fmt.Fprintf(out, "   %d) %s\n", j+1, option)
		}
		fmt.Fprint(out, "> ")

		answer := -1
		if scanner.Scan() {
			if n, err := strconv.Atoi(strings.TrimSpace(scanner.Text())); err == nil {
				answer = n - 1
			}
		}
		answers = append(answers, answer)
	}
	fmt.Fprintln(out)
	return answers
}

func parseAnswers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	answers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q: %w", p, err)
		}
		answers = append(answers, n-1)
	}
	return answers, nil
}

func newHistoryCmd(svc *services) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List saved quiz results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := svc.quizzes.GetQuizHistory(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(history) == 0 {
				fmt.Fprintln(out, "No quizzes taken yet.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tTOPIC\tSCORE")
			for _, r := range history {
				fmt.Fprintf(w, "%s\t%s\t%d%%\n", r.Date.Local().Format("2006-01-02 15:04"), r.Topic, r.Score)
			}
			return w.Flush()
		},
	}
}

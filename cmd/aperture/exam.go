package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"aperture/internal/bootstrap"
	examdto "aperture/internal/modules/exam/dto"
	apperrors "aperture/internal/platform/errors"
)

func newExamCmd(vaultPath *string) *cobra.Command {
	exam := &cobra.Command{Use: "exam", Short: "Quiz commands"}

	exam.AddCommand(&cobra.Command{
		Use:   "banks",
		Short: "List question banks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				banks, err := app.ExamCLI.Banks(context.Background())
				if err != nil {
					return err
				}
				for _, b := range banks {
					custom := ""
					if b.Custom {
						custom = " (custom)"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d questions\tmax %d%s\n", b.Subject, b.Title, b.Questions, b.MaxScore, custom)
				}
				return nil
			})
		},
	})

	exam.AddCommand(&cobra.Command{
		Use:   "start <subject>",
		Short: "Start an exam for a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				view, err := app.ExamCLI.Start(context.Background(), args[0])
				if err != nil {
					return err
				}
				printExamView(cmd.OutOrStdout(), view)
				return nil
			})
		},
	})

	exam.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the active exam",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				view, err := app.ExamCLI.Current(context.Background())
				if err != nil {
					return err
				}
				printExamView(cmd.OutOrStdout(), view)
				return nil
			})
		},
	})

	exam.AddCommand(&cobra.Command{
		Use:   "select <option>",
		Short: "Select an option (1-based) without submitting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := optionIndex(args[0])
			if err != nil {
				return err
			}
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				view, err := app.ExamCLI.Select(context.Background(), index)
				if err != nil {
					return err
				}
				printExamView(cmd.OutOrStdout(), view)
				return nil
			})
		},
	})

	exam.AddCommand(&cobra.Command{
		Use:   "submit",
		Short: "Submit the selected option",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				out, err := app.ExamCLI.Submit(context.Background())
				if err != nil {
					return err
				}
				printSubmit(cmd.OutOrStdout(), out)
				return nil
			})
		},
	})

	exam.AddCommand(&cobra.Command{
		Use:   "answer <option>",
		Short: "Select and submit an option (1-based)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := optionIndex(args[0])
			if err != nil {
				return err
			}
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				out, err := app.ExamCLI.Answer(context.Background(), index)
				if err != nil {
					return err
				}
				printSubmit(cmd.OutOrStdout(), out)
				return nil
			})
		},
	})

	exam.AddCommand(&cobra.Command{
		Use:   "restart",
		Short: "Restart the active exam from the first question",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				view, err := app.ExamCLI.Restart(context.Background())
				if err != nil {
					return err
				}
				printExamView(cmd.OutOrStdout(), view)
				return nil
			})
		},
	})

	exam.AddCommand(&cobra.Command{
		Use:   "quit",
		Short: "Abandon the active exam",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				if err := app.ExamCLI.Quit(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "exam closed")
				return nil
			})
		},
	})

	var subject string
	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "List finished attempts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				attempts, err := app.ExamCLI.History(context.Background(), subject, limit)
				if err != nil {
					return err
				}
				if len(attempts) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no attempts")
					return nil
				}
				for _, a := range attempts {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d/%d\t%s\n", a.FinishedAt.Format("2006-01-02 15:04"), a.Subject, a.Score, a.MaxScore, a.NotePath)
				}
				return nil
			})
		},
	}
	history.Flags().StringVar(&subject, "subject", "", "filter by subject")
	history.Flags().IntVar(&limit, "limit", 20, "maximum attempts to show")
	exam.AddCommand(history)

	exam.AddCommand(&cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the attempt index from result notes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				if err := app.ExamCLI.Reindex(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "exam reindex completed")
				return nil
			})
		},
	})
	return exam
}

func optionIndex(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("option %q: %w", raw, apperrors.ErrInvalidInput)
	}
	return n - 1, nil
}

func printExamView(w io.Writer, view examdto.ExamView) {
	if view.State == "results" {
		_, _ = fmt.Fprintf(w, "%s exam finished\n", view.Title)
		_, _ = fmt.Fprintf(w, "Marks: %d/%d\n", view.Score, view.MaxScore)
		_, _ = fmt.Fprintf(w, "Correct: %d  Incorrect: %d\n", view.Correct, view.Incorrect)
		for _, line := range view.Feedback {
			_, _ = fmt.Fprintf(w, "  - %s\n", line)
		}
		return
	}
	_, _ = fmt.Fprintf(w, "%s  question %d/%d\n\n%s\n\n", view.Title, view.Index+1, view.Total, view.Question)
	for i, option := range view.Options {
		marker := " "
		if view.HasSelection && view.Selected == i {
			marker = "*"
		}
		_, _ = fmt.Fprintf(w, " %s %d. %s\n", marker, i+1, option)
	}
}

func printSubmit(w io.Writer, out examdto.SubmitOutput) {
	if out.Correct {
		_, _ = fmt.Fprintln(w, "correct")
	} else {
		_, _ = fmt.Fprintf(w, "incorrect, the answer was %d\n", out.CorrectIndex+1)
	}
	printExamView(w, out.View)
	if out.Completed && out.NotePath != "" {
		_, _ = fmt.Fprintf(w, "result saved to %s\n", out.NotePath)
	}
}

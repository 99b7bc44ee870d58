package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"aperture/internal/bootstrap"
	notesdto "aperture/internal/modules/notes/dto"
)

func newNotesCmd(vaultPath *string) *cobra.Command {
	notes := &cobra.Command{Use: "notes", Short: "Note and summary commands"}

	var title string
	add := &cobra.Command{
		Use:   "add [text...]",
		Short: "Add a note from arguments or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := argsOrStdin(cmd, args)
			if err != nil {
				return err
			}
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				out, err := app.NotesCLI.Add(context.Background(), title, text)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) note=%s\n", out.Title, out.ID, out.Path)
				return nil
			})
		},
	}
	add.Flags().StringVar(&title, "title", "", "note title (defaults to the first line)")

	notes.AddCommand(add)

	notes.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				items, err := app.NotesCLI.List(context.Background())
				if err != nil {
					return err
				}
				printNotes(cmd.OutOrStdout(), items)
				return nil
			})
		},
	})

	notes.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a note with its summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				note, err := app.NotesCLI.Show(context.Background(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n%d words  updated %s\n\n%s\n", note.Title, note.ID, note.WordCount, note.UpdatedAt.Format("2006-01-02 15:04"), note.Body)
				if note.Summary != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nSummary:\n%s\n", note.Summary)
				}
				return nil
			})
		},
	})

	notes.AddCommand(&cobra.Command{
		Use:   "edit <id> [text...]",
		Short: "Replace the text of a note from arguments or stdin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := argsOrStdin(cmd, args[1:])
			if err != nil {
				return err
			}
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				out, err := app.NotesCLI.Edit(context.Background(), args[0], text)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s (%s)\n", out.Title, out.ID)
				return nil
			})
		},
	})

	notes.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				if err := app.NotesCLI.Delete(context.Background(), args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	})

	var noteID string
	summarize := &cobra.Command{
		Use:   "summarize [text...]",
		Short: "Summarize a stored note (--id) or text from arguments or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if noteID == "" {
				var err error
				if text, err = argsOrStdin(cmd, args); err != nil {
					return err
				}
			}
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				var (
					out notesdto.SummaryOutput
					err error
				)
				if noteID != "" {
					out, err = app.NotesCLI.SummarizeNote(context.Background(), noteID)
				} else {
					out, err = app.NotesCLI.SummarizeText(context.Background(), text)
				}
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Summary)
				return nil
			})
		},
	}
	summarize.Flags().StringVar(&noteID, "id", "", "summarize and store the summary of this note")
	notes.AddCommand(summarize)

	var importTitle string
	importCmd := &cobra.Command{
		Use:   "import <pdf>",
		Short: "Import the text of a PDF as a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				out, err := app.NotesCLI.ImportPDF(context.Background(), args[0], importTitle)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%s) words=%d note=%s\n", out.Title, out.ID, out.WordCount, out.Path)
				return nil
			})
		},
	}
	importCmd.Flags().StringVar(&importTitle, "title", "", "note title (defaults to the file name)")
	notes.AddCommand(importCmd)

	notes.AddCommand(&cobra.Command{
		Use:   "search <query>",
		Short: "Search note titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				items, err := app.NotesCLI.Search(context.Background(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				printNotes(cmd.OutOrStdout(), items)
				return nil
			})
		},
	})

	notes.AddCommand(&cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the note index from vault markdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				if err := app.NotesCLI.Reindex(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "notes reindex completed")
				return nil
			})
		},
	})
	return notes
}

func argsOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(raw), nil
}

func printNotes(w io.Writer, items []notesdto.NoteOutput) {
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, "no notes")
		return
	}
	for _, n := range items {
		summary := ""
		if n.HasSummary {
			summary = "\tsummarized"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d words%s\n", n.ID, n.Title, n.WordCount, summary)
	}
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aperture/internal/bootstrap"
	"aperture/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var vaultPath string

	root := &cobra.Command{
		Use:           "aperture",
		Short:         "Photography study companion",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&vaultPath, "vault", ".", "vault directory for notes, results and state")

	root.AddCommand(newTUICmd(&vaultPath))
	root.AddCommand(newAuthCmd(&vaultPath))
	root.AddCommand(newExamCmd(&vaultPath))
	root.AddCommand(newNotesCmd(&vaultPath))
	root.AddCommand(newLearnCmd(&vaultPath))
	root.AddCommand(newNewsCmd(&vaultPath))
	root.AddCommand(newStoresCmd(&vaultPath))
	root.AddCommand(newReindexCmd(&vaultPath))
	return root
}

func loadApp(vaultPath string) (*bootstrap.App, error) {
	cfg, err := config.Load(vaultPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// withApp loads the application, runs fn and closes the log afterwards.
func withApp(vaultPath string, fn func(app *bootstrap.App) error) error {
	app, err := loadApp(vaultPath)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app)
}

func newTUICmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the aperture terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(*vaultPath, bootstrap.RunTUI)
		},
	}
}

func newReindexCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild SQLite projections from vault markdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				ctx := context.Background()
				if err := app.NotesCLI.Reindex(ctx); err != nil {
					return err
				}
				if err := app.ExamCLI.Reindex(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
				return nil
			})
		},
	}
}

func newAuthCmd(vaultPath *string) *cobra.Command {
	auth := &cobra.Command{Use: "auth", Short: "Account commands"}

	var name, email, password, confirm string
	signup := &cobra.Command{
		Use:   "signup",
		Short: "Create a local account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				out, err := app.AuthCLI.Signup(context.Background(), name, email, password, confirm)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "account created for %s (%s)\n", out.Name, out.Email)
				return nil
			})
		},
	}
	signup.Flags().StringVar(&name, "name", "", "display name")
	signup.Flags().StringVar(&email, "email", "", "email address")
	signup.Flags().StringVar(&password, "password", "", "password")
	signup.Flags().StringVar(&confirm, "confirm", "", "password confirmation")

	var loginEmail, loginPassword string
	login := &cobra.Command{
		Use:   "login",
		Short: "Check credentials against the local account store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				out, err := app.AuthCLI.Login(context.Background(), loginEmail, loginPassword)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "welcome %s\n", out.Name)
				return nil
			})
		},
	}
	login.Flags().StringVar(&loginEmail, "email", "", "email address")
	login.Flags().StringVar(&loginPassword, "password", "", "password")

	auth.AddCommand(signup, login)
	return auth
}

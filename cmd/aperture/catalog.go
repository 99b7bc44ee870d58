package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"aperture/internal/bootstrap"
	apperrors "aperture/internal/platform/errors"
)

func newLearnCmd(vaultPath *string) *cobra.Command {
	learn := &cobra.Command{Use: "learn", Short: "Browse learning content"}

	learn.AddCommand(&cobra.Command{
		Use:   "subjects",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				subjects, err := app.LearnCLI.Subjects(context.Background())
				if err != nil {
					return err
				}
				for _, s := range subjects {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d topics\n", s.Key, s.Title, s.Topics)
				}
				return nil
			})
		},
	})

	learn.AddCommand(&cobra.Command{
		Use:   "topics <subject>",
		Short: "List the topics of a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				topics, err := app.LearnCLI.Topics(context.Background(), args[0])
				if err != nil {
					return err
				}
				for _, t := range topics {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t.Slug, t.Name)
				}
				return nil
			})
		},
	})

	learn.AddCommand(&cobra.Command{
		Use:   "show <subject> <topic>",
		Short: "Print a topic page as markdown",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				out, err := app.LearnCLI.Show(context.Background(), args[0], strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Markdown)
				return nil
			})
		},
	})

	learn.AddCommand(&cobra.Command{
		Use:   "search <query>",
		Short: "Search topic names and notes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				results, err := app.LearnCLI.Search(context.Background(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				if len(results) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no matches")
					return nil
				}
				for _, r := range results {
					where := "notes"
					if r.InName {
						where = "name"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(%s)\n", r.Subject, r.Topic, where)
				}
				return nil
			})
		},
	})

	var outDir string
	export := &cobra.Command{
		Use:   "export <subject>",
		Short: "Render a subject's topics to HTML files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				out, err := app.LearnCLI.Export(context.Background(), args[0], outDir)
				if err != nil {
					return err
				}
				for _, p := range out.Paths {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			})
		},
	}
	export.Flags().StringVar(&outDir, "out", "learn-export", "output directory")
	learn.AddCommand(export)
	return learn
}

func newNewsCmd(vaultPath *string) *cobra.Command {
	news := &cobra.Command{Use: "news", Short: "Photography news carousel"}

	news.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List news items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				items, err := app.NewsCLI.List(context.Background())
				if err != nil {
					return err
				}
				for _, item := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", item.Number, item.Title)
				}
				return nil
			})
		},
	})

	news.AddCommand(&cobra.Command{
		Use:   "show <number>",
		Short: "Show a news item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := itemNumber(args[0])
			if err != nil {
				return err
			}
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				item, err := app.NewsCLI.Show(context.Background(), number)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n\n%s\n", item.Title, item.Link, item.Content)
				return nil
			})
		},
	})

	news.AddCommand(&cobra.Command{
		Use:   "open <number>",
		Short: "Open a news item's link in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := itemNumber(args[0])
			if err != nil {
				return err
			}
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				out, err := app.NewsCLI.Open(context.Background(), number)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "opened %s\n", out.Link)
				return nil
			})
		},
	})
	return news
}

func newStoresCmd(vaultPath *string) *cobra.Command {
	stores := &cobra.Command{Use: "stores", Short: "Camera store locator"}

	var kind string
	list := &cobra.Command{
		Use:   "list",
		Short: "List stores",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				items, err := app.StoresCLI.List(context.Background(), kind)
				if err != nil {
					return err
				}
				for _, s := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.4f,%.4f\n", s.Name, s.Kind, s.Lat, s.Lon)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&kind, "kind", "", "filter by kind: local|online")
	stores.AddCommand(list)

	var lat, lon float64
	var limit int
	var useCenter bool
	nearest := &cobra.Command{
		Use:   "nearest",
		Short: "List local stores by distance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*vaultPath, func(app *bootstrap.App) error {
				ctx := context.Background()
				if useCenter {
					center, err := app.StoresCLI.DefaultCenter(ctx)
					if err != nil {
						return err
					}
					lat, lon = center.Lat, center.Lon
				}
				items, err := app.StoresCLI.Nearest(ctx, lat, lon, limit)
				if err != nil {
					return err
				}
				for _, s := range items {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f km\n", s.Name, s.DistanceKm)
				}
				return nil
			})
		},
	}
	nearest.Flags().Float64Var(&lat, "lat", 0, "latitude")
	nearest.Flags().Float64Var(&lon, "lon", 0, "longitude")
	nearest.Flags().IntVar(&limit, "limit", 5, "maximum stores (0 for all)")
	nearest.Flags().BoolVar(&useCenter, "center", false, "measure from the first listed store")
	stores.AddCommand(nearest)
	return stores
}

func itemNumber(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("item number %q: %w", raw, apperrors.ErrInvalidInput)
	}
	return n, nil
}

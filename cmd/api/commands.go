package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/01moynul/instituto-dashboard/internal/database"
	"github.com/01moynul/instituto-dashboard/internal/report"
)

func (a *app) withProvider(ctx context.Context, fn func(p *database.Provider) error) error {
	provider, err := database.NewProvider(a.cfg.Database, a.logger)
	if err != nil {
		return err
	}
	defer func() { _ = provider.Close() }()
	return fn(provider)
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Open one database connection and report whether it works",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return a.withProvider(ctx, func(p *database.Provider) error {
				if err := p.Ping(ctx); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok: connected to %s on %s:%d\n",
					a.cfg.Database.Name, a.cfg.Database.Host, a.cfg.Database.Port)
				return nil
			})
		},
	}
}

func newReportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report <name> [course-id]",
		Short: "Run one dashboard query and print the result",
		Long: "Run one dashboard query and print the result.\n\nReports: " +
			strings.Join(report.Names(), ", ") +
			"\n\"curso\" and \"alumnos-curso\" take a course id.",
		Args: cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return report.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !slices.Contains(report.Names(), name) {
				return fmt.Errorf("%w %q (available: %s)", report.ErrUnknownReport, name, strings.Join(report.Names(), ", "))
			}
			switch {
			case report.NeedsCourse(name) && len(args) != 2:
				return fmt.Errorf("report %q: %w", name, report.ErrCourseRequired)
			case !report.NeedsCourse(name) && len(args) == 2:
				return fmt.Errorf("report %q takes no course id", name)
			}

			var courseID int64
			if len(args) == 2 {
				id, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid course id %q: %w", args[1], err)
				}
				courseID = id
			}

			ctx := cmd.Context()
			return a.withProvider(ctx, func(p *database.Provider) error {
				var tbl report.Table
				err := p.WithConnection(ctx, func(q *database.Queries) error {
					var err error
					tbl, err = report.Build(ctx, q, name, courseID)
					return err
				})
				if err != nil {
					return err
				}
				return report.Render(cmd.OutOrStdout(), tbl, format)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", report.FormatTable, "Output format (table|json)")
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{report.FormatTable, report.FormatJSON}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

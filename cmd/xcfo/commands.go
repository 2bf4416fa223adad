package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dkoosis/xcfo/internal/version"
	"github.com/dkoosis/xcfo/pkg/capture"
	"github.com/dkoosis/xcfo/pkg/classify"
)

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func (c *cli) categoriesCmd() *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List capture categories and their severity",
		Long: `List every category a line can be classified as. The names are accepted
by --suppress and the suppress key of .xcfo.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			printCategories(w, noColor || !isTTYWriter(w))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}

func printCategories(w io.Writer, noColor bool) {
	styles := map[capture.Severity]*color.Color{
		capture.SeverityError:   color.New(color.FgRed, color.Bold),
		capture.SeverityWarning: color.New(color.FgYellow),
		capture.SeveritySuccess: color.New(color.FgGreen),
		capture.SeverityInfo:    color.New(color.Faint),
	}
	for _, s := range styles {
		if noColor {
			s.DisableColor()
		} else {
			s.EnableColor()
		}
	}
	for _, cat := range capture.Categories() {
		sev := cat.Severity()
		fmt.Fprintf(w, "%-34s ", cat)
		styles[sev].Fprintln(w, sev)
	}
}

func (c *cli) rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List classification rules in priority order",
		Long: `List the built-in rules in the order they are tried. The first rule that
matches a line wins, so specific shapes come before generic ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for i, r := range classify.DefaultTable().Rules() {
				cont := ""
				if r.Continuation > 0 {
					cont = fmt.Sprintf(" (+%d lines)", r.Continuation)
				}
				fmt.Fprintf(w, "%3d  %-34s %s%s\n", i+1, r.Name, r.Category, cont)
			}
			return nil
		},
	}
}

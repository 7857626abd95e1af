package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/rollcall"
	"github.com/tsawler/rollcall/htmldoc"
	"github.com/tsawler/rollcall/tables"
)

type tablesOptions struct {
	office   string
	class    string
	all      bool
	markdown bool
}

func tablesCmd(g *globalOptions) *cobra.Command {
	o := &tablesOptions{}

	cmd := &cobra.Command{
		Use:   "tables <file>",
		Short: "Show how the tables of a page are scored and classified",
		Long: `Show every candidate table of a page with its headers and score, or
the reason it was disqualified, followed by the column layout of the
selected table.

Example:
  rollcall tables pages/governor_oh.html
  rollcall tables --markdown --office governor pages/governor_oh.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			class := cfg.TableClass
			if cmd.Flags().Changed("class") {
				class = o.class
			}
			office := cfg.Office
			if cmd.Flags().Changed("office") {
				office = o.office
			}
			nav := htmldoc.NavigationExclusionStandard
			if o.all {
				nav = htmldoc.NavigationExclusionNone
			}

			ext := rollcall.Open(args[0]).
				TableClass(class).
				Office(office).
				NavigationExclusion(nav).
				Logger(logger)
			return runTables(cmd.OutOrStdout(), ext, o.markdown)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.office, "office", "", "office named in the roster caption")
	flags.StringVar(&o.class, "class", "", `CSS class of candidate tables (default "wikitable")`)
	flags.BoolVar(&o.all, "all", false, "include navigation boxes and infoboxes")
	flags.BoolVar(&o.markdown, "markdown", false, "print the selected table as Markdown")
	return cmd
}

func runTables(w io.Writer, ext *rollcall.Extractor, markdown bool) error {
	candidates, err := ext.Candidates()
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Fprintln(w, "no candidate tables")
	}
	for _, c := range candidates {
		printCandidate(w, c)
	}

	g, l, warnings, err := ext.Table()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nlayout: %s\n", l)
	for _, warn := range warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
	if markdown {
		fmt.Fprintf(w, "\n%s", g.ToMarkdown())
	}
	return nil
}

func printCandidate(w io.Writer, c tables.Candidate) {
	headers := strings.Join(c.Headers, " | ")
	if !c.Qualified() {
		fmt.Fprintf(w, "table %d: skipped (%s): %s\n", c.Table.Index, c.Reason, headers)
		return
	}
	caption := ""
	if c.Table.Caption != "" {
		caption = fmt.Sprintf(" %q", c.Table.Caption)
	}
	fmt.Fprintf(w, "table %d: score %d%s: %s\n", c.Table.Index, c.Score, caption, headers)
}

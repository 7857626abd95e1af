package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/rollcall"
	"github.com/tsawler/rollcall/fields"
	"github.com/tsawler/rollcall/internal/config"
	"github.com/tsawler/rollcall/model"
	"github.com/tsawler/rollcall/sink"
)

type parseOptions struct {
	cutoff  int
	state   string
	office  string
	class   string
	out     string
	jobs    int
	parties string
}

// apply copies the flags the user set over cfg
func (o *parseOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("cutoff") {
		cfg.Cutoff = o.cutoff
	}
	if flags.Changed("office") {
		cfg.Office = o.office
	}
	if flags.Changed("class") {
		cfg.TableClass = o.class
	}
	if flags.Changed("out") {
		cfg.Output = o.out
	}
	if flags.Changed("jobs") {
		cfg.Jobs = o.jobs
	}
	if flags.Changed("parties") {
		cfg.Parties = o.parties
	}
}

func parseCmd(g *globalOptions) *cobra.Command {
	o := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [files or directories...]",
		Short: "Extract officeholder records from HTML pages",
		Long: `Extract officeholder records from saved HTML pages.

Each page's roster table is located, its columns classified and its rows
turned into records. Pages without a usable table are reported and
skipped. The jurisdiction of each record comes from --state, the page
list in --config, or a two-letter suffix in the file name
(governor_oh.html → OH).

Example:
  rollcall parse --out terms.db pages/
  rollcall parse --state MN --cutoff 1900 governor.html
  rollcall parse --config pages.yaml --jobs 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync()

			o.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			pages := cfg.Pages
			if len(args) > 0 {
				pages, err = expandPages(args, o.state)
				if err != nil {
					return err
				}
			}
			if len(pages) == 0 {
				return errors.New("no pages to parse: pass files or list pages in --config")
			}

			return runParse(cmd, cfg, pages, logger)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&o.cutoff, "cutoff", 0, "earliest year of interest (default 1960)")
	flags.StringVar(&o.state, "state", "", "jurisdiction label for every page given as an argument")
	flags.StringVar(&o.office, "office", "", "office named in the roster caption, e.g. governor")
	flags.StringVar(&o.class, "class", "", `CSS class of candidate tables (default "wikitable")`)
	flags.StringVarP(&o.out, "out", "o", "", "output file (.jsonl or .db); stdout when empty")
	flags.IntVarP(&o.jobs, "jobs", "j", 0, "pages parsed in parallel (default 4)")
	flags.StringVar(&o.parties, "parties", "", "YAML party rule file replacing the built-in table")
	return cmd
}

// pageResult is the outcome of one page
type pageResult struct {
	page     config.Page
	records  []model.Record
	warnings []rollcall.Warning
	err      error
}

func runParse(cmd *cobra.Command, cfg *config.Config, pages []config.Page, logger *zap.Logger) error {
	ctx := cmd.Context()

	parties, err := loadParties(cfg.Parties)
	if err != nil {
		return err
	}

	w, err := sink.Open(ctx, cfg.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	template := rollcall.New().
		Cutoff(cfg.Cutoff).
		TableClass(cfg.TableClass).
		Parties(parties).
		Logger(logger)

	results := make([]pageResult, len(pages))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Jobs)

	for i, p := range pages {
		i, p := i, p // per-iteration copies (go directive is 1.21)
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			res := parsePage(egCtx, template, p, cfg.Office)
			results[i] = res
			if res.err != nil {
				logger.Warn("skipping page", zap.String("file", p.File), zap.Error(res.err))
				return nil
			}
			for _, warn := range res.warnings {
				logger.Debug("warning", zap.String("file", p.File), zap.Stringer("warning", warn))
			}
			if err := w.Write(egCtx, res.records); err != nil {
				return fmt.Errorf("writing records of %s: %w", p.File, err)
			}
			return nil
		})
	}

	err = eg.Wait()
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	printSummary(cmd.ErrOrStderr(), results)
	return err
}

func parsePage(ctx context.Context, template *rollcall.Extractor, p config.Page, office string) pageResult {
	res := pageResult{page: p}
	if err := ctx.Err(); err != nil {
		res.err = err
		return res
	}
	if p.Office != "" {
		office = p.Office
	}

	res.records, res.warnings, res.err = template.ForFile(p.File).
		Jurisdiction(p.Jurisdiction).
		Office(office).
		Records()
	return res
}

func loadParties(path string) (*fields.PartyTable, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening party rules: %w", err)
	}
	defer f.Close()
	return fields.LoadPartyTable(f)
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/sonnes/chatroast/config"
	"github.com/sonnes/chatroast/core"
	"github.com/sonnes/chatroast/manifest"
	"github.com/sonnes/chatroast/redact"
	"github.com/sonnes/chatroast/render"
	htmlrender "github.com/sonnes/chatroast/render/html"
	jsonrender "github.com/sonnes/chatroast/render/json"
	"github.com/sonnes/chatroast/render/terminal"
	"github.com/sonnes/chatroast/roast"
	"github.com/sonnes/chatroast/stats"
)

func analyzeCmd() *cli.Command {
	flags := append(inputFlags(),
		&cli.StringFlag{
			Name:  "o",
			Usage: "Output format: terminal, json, html",
			Value: "terminal",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "Directory to write an HTML report into (updates manifest.json there)",
		},
		&cli.IntFlag{
			Name:  "top",
			Usage: "Number of entries in the word and emoji tables",
		},
		&cli.IntFlag{
			Name:  "min-word-len",
			Usage: "Minimum token length for the word table",
		},
		&cli.StringFlag{
			Name:  "stopwords",
			Usage: "Path to an extra stop word list (whitespace separated)",
		},
		&cli.StringFlag{
			Name:  "level",
			Usage: "Roast intensity for report commentary: mild, medium, savage",
		},
		&cli.BoolFlag{
			Name:  "no-redact",
			Usage: "Disable scrubbing of phone numbers and emails",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Exit non-zero when any line could not be parsed",
		},
	)

	return &cli.Command{
		Name:  "analyze",
		Usage: "Compute statistics for a chat export",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			res, sc, err := parseAndScrub(cmd, cfg)
			if err != nil {
				return err
			}

			rep := stats.Analyze(res, sc)

			if dir := cmd.String("out"); dir != "" {
				if err := writeReport(cmd, cfg, dir, res, rep, sc); err != nil {
					return err
				}
			} else {
				rnd, err := newRenderer(cmd, cfg, rep, sc)
				if err != nil {
					return err
				}
				if err := rnd.Render(os.Stdout, rep); err != nil {
					return fmt.Errorf("render: %w", err)
				}
			}

			if cmd.Bool("strict") && len(res.Skipped) > 0 {
				return cli.Exit(fmt.Sprintf("%d lines could not be parsed", len(res.Skipped)), 1)
			}
			return nil
		},
	}
}

// parseAndScrub reads the export, reports skip counts, and applies the
// PII scrub unless disabled.
func parseAndScrub(cmd *cli.Command, cfg *config.Config) (*core.ParseResult, stats.Config, error) {
	sc, err := newStatsConfig(cmd, cfg)
	if err != nil {
		return nil, sc, err
	}

	r, err := newReader(cmd, cfg)
	if err != nil {
		return nil, sc, err
	}

	file := cmd.String("file")
	res, err := r.ReadFile(file)
	if err != nil {
		return nil, sc, err
	}

	if n := len(res.Skipped); n > 0 {
		log.Warn("some lines could not be parsed", "file", file, "count", n)
		for _, s := range res.Skipped {
			log.Debug("skipped line", "line", s.Line, "reason", s.Reason)
		}
	}

	if !cmd.Bool("no-redact") {
		if err := core.Chain(res, redact.New(redact.Config{PII: true})); err != nil {
			return nil, sc, fmt.Errorf("redact: %w", err)
		}
	}
	return res, sc, nil
}

// newRenderer picks the stdout renderer for -o.
func newRenderer(cmd *cli.Command, cfg *config.Config, rep *core.StatsReport, sc stats.Config) (render.Renderer, error) {
	switch name := cmd.String("o"); name {
	case "terminal":
		r := terminal.New()
		r.TopN = sc.TopN
		return r, nil
	case "json":
		return jsonrender.New(), nil
	case "html":
		r := htmlrender.New()
		r.Title = filepath.Base(cmd.String("file"))
		r.Commentary = roast.Generate(rep, roastLevel(cmd, cfg))
		r.TopN = sc.TopN
		return r, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", name)
	}
}

// writeReport renders an HTML report into dir and upserts the manifest.
func writeReport(cmd *cli.Command, cfg *config.Config, dir string, res *core.ParseResult, rep *core.StatsReport, sc stats.Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	source := cmd.String("file")
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	href := name + ".html"

	rnd := htmlrender.New()
	rnd.Title = filepath.Base(source)
	rnd.Commentary = roast.Generate(rep, roastLevel(cmd, cfg))
	rnd.TopN = sc.TopN

	out, err := os.Create(filepath.Join(dir, href))
	if err != nil {
		return err
	}
	defer out.Close()
	if err := rnd.Render(out, rep); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	m, err := manifest.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}
	m.Upsert(core.ReportEntry{
		Name:         name,
		Source:       source,
		Href:         href,
		MessageCount: rep.Summary.TotalMessages,
		SkippedLines: len(res.Skipped),
		Senders:      senderNames(rep),
		AnalyzedAt:   time.Now(),
	})
	if err := m.WriteFile(filepath.Join(dir, "manifest.json")); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	log.Info("report written", "path", filepath.Join(dir, href))
	return nil
}

func senderNames(rep *core.StatsReport) []string {
	names := make([]string, 0, len(rep.BySender))
	for s := range rep.BySender {
		names = append(names, s)
	}
	sort.Strings(names)
	return names
}

func roastLevel(cmd *cli.Command, cfg *config.Config) roast.Level {
	if v := cmd.String("level"); v != "" {
		return roast.ParseLevel(v)
	}
	return roast.ParseLevel(cfg.Level)
}

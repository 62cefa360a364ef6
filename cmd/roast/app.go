package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/sonnes/chatroast/config"
	"github.com/sonnes/chatroast/reader"
	"github.com/sonnes/chatroast/reader/whatsapp"
	"github.com/sonnes/chatroast/stats"
)

// inputFlags are shared by every command that reads an export.
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "Path to a chat export (.txt)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "date-order",
			Usage: "Date component order of the export: mdy, dmy, ymd",
		},
		&cli.StringFlag{
			Name:  "clock",
			Usage: "Clock convention of the export: 12 or 24",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to a config file (default ~/.config/roast/config.toml)",
		},
	}
}

// loadConfig reads user defaults, honoring an explicit --config path.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	if path := cmd.String("config"); path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// newReader builds the export reader from CLI flags layered over config
// defaults.
func newReader(cmd *cli.Command, cfg *config.Config) (reader.Reader, error) {
	f := whatsapp.DefaultFormat()

	order := cfg.DateOrder
	if v := cmd.String("date-order"); v != "" {
		order = v
	}
	switch order {
	case "", "mdy":
		f.Order = whatsapp.MonthFirst
	case "dmy":
		f.Order = whatsapp.DayFirst
	case "ymd":
		f.Order = whatsapp.YearFirst
	default:
		return nil, fmt.Errorf("unknown date order %q", order)
	}

	f.Clock24 = cfg.Clock24
	switch v := cmd.String("clock"); v {
	case "":
	case "12":
		f.Clock24 = false
	case "24":
		f.Clock24 = true
	default:
		return nil, fmt.Errorf("unknown clock convention %q", v)
	}

	return whatsapp.New(f)
}

// newStatsConfig builds the analysis config: built-in defaults, then the
// config file, then CLI flags.
func newStatsConfig(cmd *cli.Command, cfg *config.Config) (stats.Config, error) {
	sc := stats.DefaultConfig()

	if cfg.MinTokenLength > 0 {
		sc.MinTokenLength = cfg.MinTokenLength
	}
	if cfg.TopN > 0 {
		sc.TopN = cfg.TopN
	}
	for _, w := range cfg.ExtraStopWords {
		sc.StopWords[strings.ToLower(w)] = struct{}{}
	}

	if n := int(cmd.Int("top")); n > 0 {
		sc.TopN = n
	}
	if n := int(cmd.Int("min-word-len")); n > 0 {
		sc.MinTokenLength = n
	}
	if path := cmd.String("stopwords"); path != "" {
		if err := addStopWords(sc.StopWords, path); err != nil {
			return sc, err
		}
	}
	return sc, nil
}

// addStopWords merges a whitespace-separated word list file into the set.
func addStopWords(set map[string]struct{}, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open stopwords: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		set[strings.ToLower(scanner.Text())] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stopwords: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/sonnes/chatroast/manifest"
	htmlrender "github.com/sonnes/chatroast/render/html"
)

func indexCmd() *cli.Command {
	return &cli.Command{
		Name:  "index",
		Usage: "Generate an index page from the manifest",
		Description: `Reads manifest.json from the given directory and writes index.html
alongside it, listing every report analyze --out has produced there.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "dir",
				Aliases:  []string{"d"},
				Usage:    "Directory containing manifest.json (writes index.html there)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.String("dir")

			m, err := manifest.ReadFile(filepath.Join(dir, "manifest.json"))
			if err != nil {
				return fmt.Errorf("read manifest: %w", err)
			}

			if len(m.Entries) == 0 {
				return nil
			}

			out, err := os.Create(filepath.Join(dir, "index.html"))
			if err != nil {
				return err
			}
			defer out.Close()

			if err := htmlrender.New().RenderIndex(out, m.Entries); err != nil {
				return fmt.Errorf("render index: %w", err)
			}
			return nil
		},
	}
}

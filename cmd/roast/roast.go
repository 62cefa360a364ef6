package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/sonnes/chatroast/roast"
	"github.com/sonnes/chatroast/stats"
)

func roastCmd() *cli.Command {
	flags := append(inputFlags(),
		&cli.StringFlag{
			Name:  "level",
			Usage: "Roast intensity: mild, medium, savage",
		},
		&cli.BoolFlag{
			Name:  "no-redact",
			Usage: "Disable scrubbing of phone numbers and emails",
		},
	)

	return &cli.Command{
		Name:  "roast",
		Usage: "Print witty commentary about a chat export",
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

			fmt.Println()
			fmt.Println("====== Your Chat Roast ======")
			fmt.Println()
			fmt.Println(roast.Generate(rep, roastLevel(cmd, cfg)))
			return nil
		},
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Report lines of an export that would not parse",
		Flags: inputFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			r, err := newReader(cmd, cfg)
			if err != nil {
				return err
			}

			res, err := r.ReadFile(cmd.String("file"))
			if err != nil {
				return err
			}

			if len(res.Skipped) == 0 {
				fmt.Printf("ok: %d messages, no skipped lines\n", len(res.Messages))
				return nil
			}

			for _, s := range res.Skipped {
				fmt.Printf("line %d: %s: %s\n", s.Line, s.Reason, s.Text)
			}
			return cli.Exit(fmt.Sprintf("%d of %d lines skipped", len(res.Skipped), len(res.Messages)+len(res.Skipped)), 1)
		},
	}
}

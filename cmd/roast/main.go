package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "roast",
		Usage: "Analyse a WhatsApp chat export and generate charts + roast",
		Description: `
                       _
  _ __ ___   __ _ ___| |_
 | '__/ _ \ / _' / __| __|
 | | | (_) | (_| \__ \ |_
 |_|  \___/ \__,_|___/\__|

 Feed it a chat export; get statistics, charts, and a well-deserved roasting.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "warn",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			analyzeCmd(),
			roastCmd(),
			checkCmd(),
			indexCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"log"
	"os"

	"github.com/dtnitsch/llm-citability/internal/analyze"
	"github.com/dtnitsch/llm-citability/internal/history"
	"github.com/dtnitsch/llm-citability/models"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML config file with thresholds, fetch and database settings",
		Value:   "config.yaml",
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "db",
		Usage: "fetch log database path (default: next to the binary)",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "citability",
		Usage: "score how easily an LLM could extract and cite a piece of content",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "analyze text, an HTML file or a URL",
				Action: analyze.AnalyzeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "raw text to analyze"},
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "plain text file to analyze (- for stdin)"},
					&cli.StringFlag{Name: "html-file", Usage: "HTML file to analyze (- for stdin)"},
					&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "URL to fetch and analyze"},
					&cli.StringFlag{Name: "format", Value: analyze.FormatJSON, Usage: "output format: json or yaml"},
					&cli.DurationFlag{Name: "timeout", Value: models.DefaultFetchTimeout, Usage: "fetch timeout"},
					&cli.IntFlag{Name: "top-terms", Value: analyze.DefaultTopTerms, Usage: "number of top terms to report (0 disables)"},
					&cli.BoolFlag{Name: "no-db", Usage: "do not record the fetch in the fetch log"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
					configFlag(),
					dbFlag(),
				},
			},
			{
				Name:   "history",
				Usage:  "list recent URL fetches",
				Action: history.HistoryAction,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Value: history.DefaultLimit, Usage: "number of fetches to show"},
					&cli.StringFlag{Name: "format", Usage: "output format: table (default), json or yaml"},
					configFlag(),
					dbFlag(),
				},
			},
		},
	}
}

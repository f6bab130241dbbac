package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/page-analyser/internal/analyze"
	"github.com/dtnitsch/page-analyser/internal/history"
	"github.com/dtnitsch/page-analyser/pkg/help"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func envVar(name string) []string {
	return []string{"PAGE_ANALYSER_" + name}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "json",
		Usage:   "output format: json or yaml",
		EnvVars: envVar("FORMAT"),
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "page-analyser",
		Usage: "Count words, meta keywords and external links in HTML pages",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file with defaults", EnvVars: envVar("CONFIG")},
			&cli.StringFlag{Name: "db", Usage: "SQLite database for stored reports (default: next to the binary)", EnvVars: envVar("DB")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
			&cli.BoolFlag{Name: "verbose", Usage: "log debug details"},
		},
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Aliases:   []string{"a"},
				Usage:     "Analyse one or more pages",
				ArgsUsage: "[url|file|markup ...]",
				Action:    analyze.AnalyzeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "urls", Usage: "comma-separated URLs to fetch"},
					&cli.StringFlag{Name: "html", Usage: "raw HTML markup to analyse"},
					&cli.StringSliceFlag{Name: "file", Usage: "local HTML file (repeatable)"},
					&cli.StringFlag{Name: "ignore", Usage: "words to ignore, split with the delimiters", EnvVars: envVar("IGNORE")},
					&cli.StringFlag{Name: "ignore-file", Usage: "file containing words to ignore"},
					&cli.BoolFlag{Name: "default-stopwords", Usage: "also ignore the built-in English stop list", EnvVars: envVar("DEFAULT_STOPWORDS")},
					&cli.StringFlag{Name: "delimiters", Usage: `word delimiters, e.g. " ,.\n\t/"`, EnvVars: envVar("DELIMITERS")},
					&cli.IntFlag{Name: "top", Aliases: []string{"n"}, Value: 25, Usage: "number of top words to report (0 = all)"},
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Value: 4, Usage: "concurrent analyses", EnvVars: envVar("WORKERS")},
					&cli.DurationFlag{Name: "timeout", Usage: "HTTP timeout per page (default 30s)", EnvVars: envVar("TIMEOUT")},
					&cli.StringFlag{Name: "user-agent", Usage: "HTTP User-Agent header", EnvVars: envVar("USER_AGENT")},
					&cli.StringFlag{Name: "cache-dir", Usage: "directory for cached page bodies (memory only when empty)", EnvVars: envVar("CACHE_DIR")},
					&cli.DurationFlag{Name: "max-age", Usage: "cache entry lifetime (default 1h)", EnvVars: envVar("MAX_AGE")},
					&cli.BoolFlag{Name: "no-cache", Usage: "always fetch pages"},
					&cli.BoolFlag{Name: "no-page-info", Usage: "skip title/excerpt extraction"},
					&cli.BoolFlag{Name: "save", Usage: "store reports in the database"},
					&cli.BoolFlag{Name: "summary", Usage: "print the aggregated top words to stderr"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write output to a file instead of stdout"},
					formatFlag(),
				},
			},
			{
				Name:   "history",
				Usage:  "List stored analyses",
				Action: history.HistoryAction,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 20, Usage: "maximum rows"},
					formatFlag(),
				},
			},
			{
				Name:      "show",
				Usage:     "Print a stored analysis",
				ArgsUsage: "<id>",
				Action:    history.ShowAction,
				Flags:     []cli.Flag{formatFlag()},
			},
			{
				Name:  "quickstart",
				Usage: "Print a YAML cheat sheet",
				Action: func(c *cli.Context) error {
					fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return nil
				},
			},
		},
	}
}

func main() {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package history

import (
	"fmt"
	"strconv"

	"github.com/dtnitsch/page-analyser/internal/analyze"
	"github.com/dtnitsch/page-analyser/pkg/db"
	"github.com/dtnitsch/page-analyser/pkg/storage"
	"github.com/urfave/cli/v2"
)

func openDB(c *cli.Context) (*db.DB, error) {
	cfg, err := analyze.LoadConfig(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// HistoryAction lists stored analyses, newest first.
func HistoryAction(c *cli.Context) error {
	logger := analyze.NewLogger(c)

	format, err := storage.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	summaries, err := database.ListReports(c.Int("limit"))
	if err != nil {
		return err
	}
	logger.Debug("Loaded history", "count", len(summaries), "db", database.Path())

	if len(summaries) == 0 {
		fmt.Fprintln(c.App.ErrWriter, "No stored analyses. Run 'page-analyser analyze --save ...' first")
		return nil
	}

	data, err := storage.Marshal(summaries, format)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	fmt.Fprint(c.App.Writer, string(data))
	return nil
}

// ShowAction prints one stored analysis by ID.
func ShowAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: page-analyser show <id>", 1)
	}
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid analysis ID: %s", c.Args().First()), 1)
	}

	format, err := storage.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	database, err := openDB(c)
	if err != nil {
		return err
	}
	defer database.Close()

	r, err := database.GetReport(id)
	if err != nil {
		return err
	}

	data, err := storage.Marshal(r, format)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Fprint(c.App.Writer, string(data))
	return nil
}

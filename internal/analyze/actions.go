package analyze

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dtnitsch/page-analyser/internal/common"
	"github.com/dtnitsch/page-analyser/models"
	"github.com/dtnitsch/page-analyser/pkg/analyser"
	"github.com/dtnitsch/page-analyser/pkg/analytics"
	"github.com/dtnitsch/page-analyser/pkg/caching"
	"github.com/dtnitsch/page-analyser/pkg/db"
	"github.com/dtnitsch/page-analyser/pkg/fetcher"
	"github.com/dtnitsch/page-analyser/pkg/mapreduce"
	"github.com/dtnitsch/page-analyser/pkg/storage"
	"github.com/urfave/cli/v2"
)

// NewLogger builds the JSON stderr logger used by every command.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads --config and applies every explicitly set flag on top.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("workers") {
		cfg.WorkerCount = c.Int("workers")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}
	if c.IsSet("top") {
		cfg.TopN = c.Int("top")
	}
	if c.IsSet("delimiters") {
		cfg.Delimiters = c.String("delimiters")
	}
	if c.IsSet("ignore") {
		cfg.Ignore = c.String("ignore")
	}
	if c.IsSet("default-stopwords") {
		cfg.DefaultStopwords = c.Bool("default-stopwords")
	}
	if c.IsSet("cache-dir") {
		cfg.CacheDir = c.String("cache-dir")
	}
	if c.IsSet("max-age") {
		cfg.CacheMaxAge = c.Duration("max-age")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}
	if c.IsSet("user-agent") {
		cfg.UserAgent = c.String("user-agent")
	}
	return cfg, nil
}

// collectSources gathers sources from --urls, --html, --file and positional
// arguments, in that order. URLs are sanitized first and any that remain
// malformed fail the whole command.
func collectSources(c *cli.Context) ([]models.Source, error) {
	var sources []models.Source

	var rawURLs []string
	for _, u := range strings.Split(c.String("urls"), ",") {
		if u = strings.TrimSpace(u); u != "" {
			rawURLs = append(rawURLs, u)
		}
	}
	urls, invalid := common.SanitizeAndValidateURLs(rawURLs)
	if len(invalid) > 0 {
		return nil, fmt.Errorf("%d malformed URL(s): %s", len(invalid), strings.Join(invalid, ", "))
	}
	for _, u := range urls {
		sources = append(sources, models.Source{Value: u, Mode: models.SourceURL})
	}

	if markup := c.String("html"); markup != "" {
		sources = append(sources, models.Source{Value: markup, Mode: models.SourceMarkup})
	}
	for _, path := range c.StringSlice("file") {
		sources = append(sources, models.Source{Value: path, Mode: models.SourceFile})
	}
	for _, arg := range c.Args().Slice() {
		src := models.Source{Value: arg, Mode: models.ResolveSourceMode(arg)}
		if src.Mode == models.SourceURL {
			src.Value = common.SanitizeURL(arg)
		}
		sources = append(sources, src)
	}

	return sources, nil
}

// stopwordSource combines --ignore, --ignore-file and the built-in list into
// one raw ignore string.
func stopwordSource(c *cli.Context, cfg *models.Config) (string, error) {
	parts := []string{cfg.Ignore}
	if path := c.String("ignore-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read ignore file: %w", err)
		}
		parts = append(parts, string(data))
	}
	if cfg.DefaultStopwords {
		parts = append(parts, analytics.DefaultStopwords())
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

func AnalyzeAction(c *cli.Context) error {
	logger := NewLogger(c)
	startTime := time.Now()

	cfg, err := LoadConfig(c)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	format, err := storage.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	sources, err := collectSources(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if len(sources) == 0 {
		return cli.Exit("no sources given: use --urls, --html, --file or positional arguments", 1)
	}

	ignore, err := stopwordSource(c, cfg)
	if err != nil {
		return err
	}

	var cache *caching.Cache
	if !c.Bool("no-cache") {
		cache, err = caching.NewCache(cfg.CacheDir, cfg.CacheMaxAge)
		if err != nil {
			return fmt.Errorf("failed to initialize cache: %w", err)
		}
	}

	f := fetcher.NewFetcher(fetcher.Options{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		Cache:     cache,
	})

	runCfg := runConfig{
		loader: f,
		options: analyser.Options{
			Stopwords:  ignore,
			Delimiters: analytics.ParseDelimiters(cfg.Delimiters),
			Logger:     logger,
		},
		topN:     cfg.TopN,
		pageInfo: !c.Bool("no-page-info"),
		workers:  cfg.WorkerCount,
	}

	results, aggregated := run(c.Context, logger, runCfg, sources)

	if c.Bool("save") {
		if err := saveReports(logger, cfg.DBPath, results); err != nil {
			return err
		}
	}

	finalOutput := buildOutput(results, aggregated, cfg.TopN)
	finalOutput.Stats.TotalTimeSeconds = time.Since(startTime).Seconds()

	data, err := storage.Marshal(finalOutput, format)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if out := c.String("output"); out != "" {
		s := &storage.Storage{}
		if err := s.SaveFile(out, data); err != nil {
			return err
		}
		logger.Info("Output written", "path", out)
	} else {
		fmt.Fprint(c.App.Writer, string(data))
	}

	if c.Bool("summary") {
		fmt.Fprintln(c.App.ErrWriter, "Top words:")
		mapreduce.PrintTopKeywords(c.App.ErrWriter, aggregated, cfg.TopN)
	}

	if finalOutput.Stats.Failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d sources failed", finalOutput.Stats.Failed, finalOutput.Stats.TotalSources), 1)
	}
	return nil
}

func buildOutput(results []Result, aggregated analytics.FrequencyTable, topN int) *FinalOutput {
	finalOutput := &FinalOutput{
		Status:  "success",
		Results: make([]ResultOutput, 0, len(results)),
		Stats:   Stats{TotalSources: len(results)},
	}

	for _, r := range results {
		out := ResultOutput{Source: r.Source.String(), Report: r.Report}
		if r.Error != nil {
			out.Status = "failed"
			out.Error = r.Error.Error()
			out.ErrorType = r.ErrorType
			finalOutput.Stats.Failed++
		} else {
			out.Status = "success"
			finalOutput.Stats.Successful++
		}
		finalOutput.Results = append(finalOutput.Results, out)
	}

	switch {
	case finalOutput.Stats.Successful == 0:
		finalOutput.Status = "failed"
	case finalOutput.Stats.Failed > 0:
		finalOutput.Status = "partial"
	}

	if len(results) > 1 {
		finalOutput.Stats.TopWords = mapreduce.TopN(aggregated, topN)
	}
	return finalOutput
}

func saveReports(logger *slog.Logger, dbPath string, results []Result) error {
	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	for i := range results {
		r := results[i].Report
		if r == nil {
			continue
		}
		id, err := database.SaveReport(*r)
		if err != nil {
			logger.Error("Failed to save report", "source", r.Source, "error", err)
			continue
		}
		r.ID = id
		logger.Info("Report saved", "source", r.Source, "id", id)
	}
	return nil
}

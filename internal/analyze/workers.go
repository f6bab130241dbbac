package analyze

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dtnitsch/page-analyser/models"
	"github.com/dtnitsch/page-analyser/pkg/analyser"
	"github.com/dtnitsch/page-analyser/pkg/analytics"
	"github.com/dtnitsch/page-analyser/pkg/document"
	"github.com/dtnitsch/page-analyser/pkg/mapreduce"
	"github.com/dtnitsch/page-analyser/pkg/parser"
	"github.com/dtnitsch/page-analyser/pkg/report"
)

// runConfig is everything a worker needs besides its job.
type runConfig struct {
	loader   analyser.Loader
	options  analyser.Options
	topN     int
	pageInfo bool
	workers  int
}

// worker analyses sources from jobs until the channel is closed. Each source
// gets its own session, so workers never share analyser state.
func worker(ctx context.Context, id int, logger *slog.Logger, cfg runConfig, p *parser.Parser, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		results <- analyzeOne(ctx, id, logger, cfg, p, job)
	}
}

func analyzeOne(ctx context.Context, id int, logger *slog.Logger, cfg runConfig, p *parser.Parser, job Job) Result {
	result := Result{Index: job.Index, Source: job.Source}
	logger.Info("Worker started job", "worker_id", id, "source", job.Source.String(), "mode", job.Source.Mode.String())

	session, err := analyser.Open(ctx, cfg.loader, job.Source, cfg.options)
	if err != nil {
		logger.Error("Error loading document", "worker_id", id, "source", job.Source.String(), "error", err)
		result.Error = err
		result.ErrorType = "load_error"
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			result.ErrorType = "timeout"
		}
		return result
	}

	var info models.PageInfo
	if doc, ok := session.Tree().(*document.Doc); ok && cfg.pageInfo {
		info = p.PageInfo(job.Source.Value, doc.Goquery())
	}

	r := report.Build(session, job.Source, info, cfg.topN)
	result.Report = &r
	result.WordCounts, _ = session.WordCounts()

	logger.Info("Worker finished job", "worker_id", id, "source", job.Source.String(),
		"distinct_words", r.DistinctWords, "external_links", r.ExternalLinks)
	return result
}

// run fans sources out over cfg.workers goroutines and returns results in
// input order together with the aggregated word table.
func run(ctx context.Context, logger *slog.Logger, cfg runConfig, sources []models.Source) ([]Result, analytics.FrequencyTable) {
	p := &parser.Parser{}

	workers := cfg.workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(sources) {
		workers = len(sources)
	}

	logger.Info("Starting analysis", "source_count", len(sources), "workers", workers)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(sources))
	results := make(chan Result, len(sources))

	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go worker(ctx, w, logger, cfg, p, &wg, jobs, results)
	}

	for i, src := range sources {
		jobs <- Job{Index: i, Source: src}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All analysis workers finished")

	ordered := make([]Result, len(sources))
	var tables []analytics.FrequencyTable
	for result := range results {
		ordered[result.Index] = result
		if result.WordCounts != nil {
			tables = append(tables, result.WordCounts)
		}
	}

	return ordered, mapreduce.Reduce(tables)
}

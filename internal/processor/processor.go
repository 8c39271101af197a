// Package processor runs one search: reads the file, picks the matcher and prints matching lines
package processor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/cespare/xxhash/v2"
	"github.com/docker/distribution/uuid"
)

// Result describes a finished search
type Result struct {
	RunID  string
	Lines  []string
	Digest uint64 // xxhash of the printed lines
}

type Processor struct {
	out    io.Writer
	logger *slog.Logger
}

// New returns a Processor printing matches to out. A nil logger discards diagnostics.
func New(out io.Writer, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Processor{out: out, logger: logger}
}

// Run performs the search and prints the result. Zero matches is not an error.
func (p *Processor) Run(ctx context.Context, cfg *model.Config) error {
	_, err := p.Process(ctx, cfg)
	return err
}

// Process is Run that also returns the run summary
func (p *Processor) Process(ctx context.Context, cfg *model.Config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{RunID: uuid.Generate().String()}
	log := p.logger.With(slog.String("run_id", res.RunID))
	log.Info("search started",
		slog.String("query", cfg.Query),
		slog.String("file_path", cfg.FilePath),
		slog.Bool("ignore_case", cfg.IgnoreCase))

	contents, err := reader.ReadFile(cfg.FilePath)
	if err != nil {
		return nil, err
	}

	switch cfg.IgnoreCase {
	case true:
		res.Lines = matcher.SearchCaseInsensitive(cfg.Query, contents)
	default:
		res.Lines = matcher.Search(cfg.Query, contents)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := p.print(res.Lines); err != nil {
		return nil, err
	}

	res.Digest = hasher(res.Lines)
	log.Debug("search finished",
		slog.Int("matches", len(res.Lines)),
		slog.Int("bytes_read", len(contents)),
		slog.String("digest", fmt.Sprintf("%016x", res.Digest)))

	return res, nil
}

func (p *Processor) print(lines []string) error {
	w := bufio.NewWriter(p.out)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// hasher digests lines the way they are printed, newline included
func hasher(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}

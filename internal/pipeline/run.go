// Package pipeline provides the high-level orchestration for one wage report run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/wage-report/internal/aggregation"
	"github.com/jonathan/wage-report/internal/config"
	"github.com/jonathan/wage-report/internal/ingestion"
	"github.com/jonathan/wage-report/internal/logger"
	"github.com/jonathan/wage-report/internal/report"
	"github.com/jonathan/wage-report/internal/selection"
	"github.com/jonathan/wage-report/internal/types"
)

// Step names, in execution order
const (
	StepIngest    = "ingest"
	StepAggregate = "aggregate"
	StepSelect    = "select"
	StepEncode    = "encode"
	StepWrite     = "write"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	config.Options
	Stdout     io.Writer // destination when no output file is set; defaults to os.Stdout
	OnProgress ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// RunPipeline reads the input, builds the report and writes it. Nothing is
// written unless every earlier step succeeded.
func RunPipeline(ctx context.Context, opts RunOptions) (*types.WageReport, error) {
	log := logger.FromContext(ctx)

	opts.Options = opts.Options.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	// Step 1: Ingest
	records, metadata, err := ingestion.IngestFromFile(opts.InputPath)
	if err != nil {
		return nil, err
	}
	log.Info("input loaded", metadata.KeyVals()...)
	emitProgress(&opts, StepIngest, fmt.Sprintf("read %d records from %s", len(records), opts.InputPath), metadata)

	// Step 2: Aggregate
	agg, err := aggregation.Aggregate(ctx, records, opts.Mode())
	if err != nil {
		return nil, fmt.Errorf("aggregation failed: %w", err)
	}
	emitProgress(&opts, StepAggregate, fmt.Sprintf("grouped %d first names (%s titles)", agg.Len(), opts.Mode()), nil)

	// Step 3: Select
	wageReport := selection.SelectBest(agg)
	emitProgress(&opts, StepSelect, fmt.Sprintf("selected %d results", len(wageReport.Results)), wageReport)

	// Step 4: Encode
	data, err := report.Encode(wageReport)
	if err != nil {
		return nil, err
	}
	emitProgress(&opts, StepEncode, fmt.Sprintf("encoded %d bytes", len(data)), nil)

	// Step 5: Write
	destination := opts.OutputPath
	if report.IsStdout(destination) {
		destination = "stdout"
	}
	if err := report.Write(opts.OutputPath, data, stdout); err != nil {
		return nil, err
	}
	log.Info("report written", "destination", destination, "names", len(wageReport.Results))
	emitProgress(&opts, StepWrite, fmt.Sprintf("wrote report to %s", destination), nil)

	return wageReport, nil
}

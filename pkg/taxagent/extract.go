package taxagent

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/ukaji3/taxagent-go/pkg/taxagent/models"
	"github.com/ukaji3/taxagent-go/pkg/taxagent/output"
	"github.com/ukaji3/taxagent-go/pkg/taxagent/parser"
	"github.com/xuri/excelize/v2"
)

// Result describes a conversion run.
type Result struct {
	// Created is the time stamped on every document and file name.
	Created time.Time
	// Persons is the number of person records read.
	Persons int
	// Batches lists the files in write order.
	Batches []output.Batch
}

// Extract reads person records from the active sheet of an Excel file.
func Extract(path string, opts Options) ([]models.Person, error) {
	logger := opts.logger()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewConvertError(path, "open", fmt.Errorf("%w: %w", ErrFileNotFound, err))
		}
		return nil, NewConvertError(path, "open", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewConvertError(path, "open", fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	}
	defer f.Close()

	grid, sheetName, err := parser.LoadActiveSheet(f)
	if err != nil {
		return nil, NewConvertError(path, "read", err)
	}
	logger.Debug("loaded sheet",
		slog.String("sheet", sheetName),
		slog.Int("rows", grid.MaxRow()),
	)

	persons, err := parser.ParsePersons(grid, opts.Config.Layout)
	if err != nil {
		return nil, NewConvertError(path, "parse", err)
	}
	logger.Info("parsed workbook",
		slog.String("sheet", sheetName),
		slog.Int("persons", len(persons)),
	)
	return persons, nil
}

// Convert reads an Excel file and writes its persons as batched JSON
// documents into opts.Config.OutputDir.
func Convert(path string, opts Options) (*Result, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	persons, err := Extract(path, opts)
	if err != nil {
		return nil, err
	}

	now := opts.now()
	settings := output.Settings{
		Dir:       opts.Config.OutputDir,
		BatchSize: opts.Config.BatchSize,
		Filer:     opts.Config.Filer,
		Logger:    opts.logger(),
	}
	batches := output.Plan(persons, now, settings)

	if !opts.DryRun {
		if err := output.WriteBatches(batches, now, settings); err != nil {
			return nil, NewConvertError(path, "write", err)
		}
	}

	return &Result{
		Created: now,
		Persons: len(persons),
		Batches: batches,
	}, nil
}

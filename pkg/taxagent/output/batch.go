package output

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/taxagent-go/pkg/taxagent/document"
	"github.com/ukaji3/taxagent-go/pkg/taxagent/models"
)

// DefaultBatchSize is the maximum number of persons per file.
const DefaultBatchSize = 200

// FilenameTimeLayout formats the timestamp part of file names.
const FilenameTimeLayout = "20060102150405"

// Settings configures batch planning and writing.
type Settings struct {
	// Dir must exist; it is not created.
	Dir       string
	BatchSize int
	Filer     models.Filer
	Logger    *slog.Logger
}

// Batch is one output file and the persons it holds.
type Batch struct {
	// Part is the 1-based part number, or 0 for an unsuffixed single file.
	Part    int
	Path    string
	Persons []models.Person
}

// Partition splits items into consecutive groups of at most size items.
// The last group holds the remainder.
func Partition[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) <= size {
		return [][]T{items}
	}
	groups := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		groups = append(groups, items[start:end:end])
	}
	return groups
}

// Filename returns the file name for a batch created at now. part 0 omits
// the part suffix.
func Filename(filer models.Filer, now time.Time, part int) string {
	name := fmt.Sprintf("D%s_%d_%d_%d_%s",
		filer.UNP, now.Year(), filer.FormType, filer.DepartmentCode, now.Format(FilenameTimeLayout))
	if part > 0 {
		name += fmt.Sprintf("_%04d", part)
	}
	return name + ".json"
}

// Plan splits persons into batches. Fewer persons than the batch size give
// a single unsuffixed file; otherwise every file carries a part number,
// even when there is only one.
func Plan(persons []models.Person, now time.Time, s Settings) []Batch {
	size := s.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}

	if len(persons) < size {
		return []Batch{{
			Path:    filepath.Join(s.Dir, Filename(s.Filer, now, 0)),
			Persons: persons,
		}}
	}

	groups := Partition(persons, size)
	batches := make([]Batch, 0, len(groups))
	for i, group := range groups {
		batches = append(batches, Batch{
			Part:    i + 1,
			Path:    filepath.Join(s.Dir, Filename(s.Filer, now, i+1)),
			Persons: group,
		})
	}
	return batches
}

// WriteBatches assembles and writes each batch in order. It stops at the
// first failure; files already written are left in place.
func WriteBatches(batches []Batch, now time.Time, s Settings) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	for _, b := range batches {
		doc := document.Assemble(b.Persons, now, s.Filer, logger)
		data, err := ToJSON(&doc)
		if err != nil {
			return fmt.Errorf("serialize %s: %w", filepath.Base(b.Path), err)
		}
		if err := os.WriteFile(b.Path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", b.Path, err)
		}
		logger.Info("wrote batch",
			slog.String("path", b.Path),
			slog.Int("part", b.Part),
			slog.Int("records", len(b.Persons)),
		)
	}
	return nil
}

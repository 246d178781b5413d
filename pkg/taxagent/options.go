// Package taxagent converts payroll workbooks into batched tax filing
// documents.
package taxagent

import (
	"log/slog"
	"time"
)

// Options configures a conversion run.
type Options struct {
	// Config holds the filer constants, sheet layout and batch settings.
	Config Config
	// Logger receives warnings and progress. If nil, slog.Default is used.
	Logger *slog.Logger
	// DryRun plans the batches without writing any file.
	DryRun bool
	// Now returns the creation time stamped on documents and file names.
	// If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Config: DefaultConfig(),
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alcyxob/fitcoach/internal/config"
)

// Source opens named CSV objects for the importer.
type Source interface {
	// Open returns the object's contents. Missing objects yield an error
	// matching ErrObjectNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Location describes where name is read from, for log lines.
	Location(name string) string
}

// Error constants for the storage layer
var (
	ErrObjectNotFound = StorageError("object not found in storage")
	ErrUnknownSource  = StorageError("unknown import source")
)

// StorageError helps distinguish storage errors
type StorageError string

func (e StorageError) Error() string {
	return string(e)
}

// NewSource builds the Source selected by cfg.Import.Source.
func NewSource(ctx context.Context, cfg config.Config, logger *slog.Logger) (Source, error) {
	switch cfg.Import.Source {
	case "", "local":
		return NewLocalSource(cfg.Import.DataDir), nil
	case "s3":
		return NewS3Source(ctx, cfg.S3, cfg.Import.Prefix, logger)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Import.Source)
}

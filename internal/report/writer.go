package report

import (
	"errors"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/mjeanroy/licnotice/internal/core/domain"
	"github.com/mjeanroy/licnotice/internal/core/ports"
	"go.trai.ch/zerr"
)

// Writer persists a rendered notice document to disk.
// It compares content digests and leaves the file untouched when nothing
// changed, keeping mtimes stable for downstream tooling.
type Writer struct {
	logger ports.Logger
}

// NewWriter creates a new Writer with the given logger.
func NewWriter(logger ports.Logger) *Writer {
	return &Writer{logger: logger}
}

// Write stores content at path. It reports whether the file was written:
// false means the on-disk content already had the same digest.
func (w *Writer) Write(path, content string) (bool, error) {
	existing, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case err == nil:
		if xxhash.Sum64(existing) == xxhash.Sum64String(content) {
			w.logger.Info("notices file is up to date, skipping write")
			return false, nil
		}
	case errors.Is(err, fs.ErrNotExist):
		// First generation
	default:
		return false, zerr.With(zerr.Wrap(err, domain.ErrNoticeReadFailed.Error()), "path", path)
	}

	if err := os.WriteFile(path, []byte(content), domain.NoticeFilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrNoticeWriteFailed.Error()), "path", path)
	}

	return true, nil
}

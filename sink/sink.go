package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/tsawler/rollcall/format"
	"github.com/tsawler/rollcall/model"
)

// Writer stores records
type Writer interface {
	Write(ctx context.Context, records []model.Record) error
	Close() error
}

// Open returns a writer for path chosen by its extension. An empty path or
// "-" writes JSONL to stdout, which is not closed by the writer. A nil
// stdout means os.Stdout. An existing file whose content is in another
// format is refused.
func Open(ctx context.Context, path string, stdout io.Writer) (Writer, error) {
	if path == "" || path == "-" {
		if stdout == nil {
			stdout = os.Stdout
		}
		return NewJSONL(nopCloser{stdout}), nil
	}

	f := format.Detect(path)
	if !f.IsOutput() {
		return nil, fmt.Errorf("unsupported output format for %s (use %s or %s)",
			path, format.JSONL.Extension(), format.SQLite.Extension())
	}
	if err := checkExisting(path, f); err != nil {
		return nil, err
	}
	if f == format.SQLite {
		return OpenSQLite(ctx, path)
	}
	return CreateJSONL(path)
}

// checkExisting fails when path holds content of a format other than want
func checkExisting(path string, want format.Format) error {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	got, err := format.DetectFromReader(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if got != format.Unknown && got != want {
		return fmt.Errorf("refusing to overwrite %s: content is %s, not %s", path, got, want)
	}
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

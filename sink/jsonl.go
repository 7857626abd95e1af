package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/tsawler/rollcall/model"
)

// JSONL writes records as line-delimited JSON
type JSONL struct {
	mu  sync.Mutex
	w   io.WriteCloser
	enc *json.Encoder
}

// NewJSONL writes to w. Close closes w.
func NewJSONL(w io.WriteCloser) *JSONL {
	return &JSONL{w: w, enc: json.NewEncoder(w)}
}

// CreateJSONL creates or truncates the file at path
func CreateJSONL(path string) (*JSONL, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return NewJSONL(f), nil
}

// Write appends records, one per line. Records of one call are not
// interleaved with those of concurrent calls.
func (j *JSONL) Write(ctx context.Context, records []model.Record) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := j.enc.Encode(r); err != nil {
			return fmt.Errorf("writing record %q: %w", r.Name, err)
		}
	}
	return nil
}

// Close closes the underlying writer
func (j *JSONL) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.w.Close()
}

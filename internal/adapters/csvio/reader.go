package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/okian/pbpsplit/internal/domain/model"
)

// utf8BOM is stripped from the first header cell when present.
const utf8BOM = "\ufeff"

// newCSVReader returns a reader configured for RFC 4180 input where every
// record has as many fields as the header.
func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0
	return cr
}

// readHeader reads the header row and builds its schema.
func readHeader(cr *csv.Reader, name string) (*model.Schema, error) {
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: empty file", ErrRead, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: header: %v", ErrRead, name, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	return model.NewSchema(header), nil
}

// PlayReader streams the play table in chunks of bounded size.
// A PlayReader is not safe for concurrent use.
type PlayReader struct {
	name      string
	cr        *csv.Reader
	schema    *model.Schema
	chunkSize int
	required  []string
	seq       int
	rows      int64
	done      bool
}

// NewPlayReader reads the header from r and prepares chunked reads.
// name labels errors, usually the file path.
func NewPlayReader(r io.Reader, name string, opts ...Option) (*PlayReader, error) {
	pr := &PlayReader{
		name:      name,
		cr:        newCSVReader(r),
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(pr)
	}

	schema, err := readHeader(pr.cr, name)
	if err != nil {
		return nil, err
	}
	if err := schema.Require(pr.required...); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	pr.schema = schema
	return pr, nil
}

// Schema returns the header schema.
func (r *PlayReader) Schema() *model.Schema { return r.schema }

// Rows returns the number of plays read so far.
func (r *PlayReader) Rows() int64 { return r.rows }

// Next returns the next chunk. It returns io.EOF once the table is
// exhausted; a returned chunk is never empty.
func (r *PlayReader) Next(ctx context.Context) (model.Chunk, error) {
	if r.done {
		return model.Chunk{}, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return model.Chunk{}, err
	}

	plays := make([]model.Play, 0, min(r.chunkSize, DefaultChunkSize))
	for len(plays) < r.chunkSize {
		rec, err := r.cr.Read()
		if errors.Is(err, io.EOF) {
			r.done = true
			break
		}
		if err != nil {
			return model.Chunk{}, fmt.Errorf("%w: %s: %v", ErrRead, r.name, err)
		}
		plays = append(plays, model.Play(rec))
	}
	if len(plays) == 0 {
		return model.Chunk{}, io.EOF
	}

	chunk := model.Chunk{Seq: r.seq, Schema: r.schema, Plays: plays}
	r.seq++
	r.rows += int64(len(plays))
	return chunk, nil
}

// PlayFile is a PlayReader bound to an open file.
type PlayFile struct {
	*PlayReader
	f *os.File
}

// OpenPlays opens the play table at path.
func OpenPlays(path string, opts ...Option) (*PlayFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	pr, err := NewPlayReader(f, path, opts...)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &PlayFile{PlayReader: pr, f: f}, nil
}

// Close closes the underlying file.
func (p *PlayFile) Close() error {
	return p.f.Close()
}

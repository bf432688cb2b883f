package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/okian/pbpsplit/internal/domain/model"
)

// File permission constants.
const (
	dirPermission  = 0o755
	filePermission = 0o644
)

// Table is a fully loaded CSV table.
type Table struct {
	Schema *model.Schema
	Rows   []model.Play
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// LoadTable reads the whole table at path into memory.
func LoadTable(ctx context.Context, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer func() { _ = f.Close() }()

	cr := newCSVReader(f)
	schema, err := readHeader(cr, path)
	if err != nil {
		return nil, err
	}
	t := &Table{Schema: schema}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
		}
		t.Rows = append(t.Rows, model.Play(rec))
	}
	return t, nil
}

// WriteTable writes header and rows to path, replacing any existing file.
// The parent directory is created when missing.
func WriteTable(path string, header []string, rows []model.Play) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermission); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrWrite, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := EncodeTable(f, header, rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}

// EncodeTable writes header and rows as CSV to w.
func EncodeTable(w io.Writer, header []string, rows []model.Play) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

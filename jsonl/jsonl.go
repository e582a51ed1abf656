// Package jsonl reads and writes records as line-delimited JSON, one
// independent document per line, enabling streaming and append-only
// processing.
package jsonl

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/fwojciec/ccqa"
)

// Ensure Writer implements ccqa.RecordWriter at compile time.
var _ ccqa.RecordWriter = (*Writer)(nil)

// Writer appends one JSON document per line to an underlying writer.
type Writer struct {
	enc *json.Encoder
}

// NewWriter creates a new Writer.
func NewWriter(w io.Writer) *Writer {
	enc := json.NewEncoder(w)
	// Markup fields should survive readable; the records are data, not
	// content destined for an HTML context.
	enc.SetEscapeHTML(false)
	return &Writer{enc: enc}
}

// WriteRecord validates and appends a record as one line.
func (w *Writer) WriteRecord(rec *ccqa.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	return w.enc.Encode(rec)
}

// Encode appends any value as one line. Used for derived dataset
// formats that share the line-delimited framing.
func (w *Writer) Encode(v any) error {
	return w.enc.Encode(v)
}

// maxLineSize bounds a single record line; pages with very large
// question sets have produced multi-megabyte records.
const maxLineSize = 64 * 1024 * 1024

// Reader streams records from line-delimited input.
type Reader struct {
	sc *bufio.Scanner
}

// NewReader creates a new Reader.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024*1024), maxLineSize)
	return &Reader{sc: sc}
}

// Read returns the next record, or io.EOF when the input is exhausted.
func (r *Reader) Read() (*ccqa.Record, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	var rec ccqa.Record
	if err := json.Unmarshal(r.sc.Bytes(), &rec); err != nil {
		return nil, ccqa.Errorf(ccqa.EINVALID, "malformed record line: %v", err)
	}
	return &rec, nil
}

// ReadAll drains the reader.
func (r *Reader) ReadAll() ([]*ccqa.Record, error) {
	var recs []*ccqa.Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}

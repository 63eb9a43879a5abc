// Package csvlog reads and writes the vocabulary log as semicolon-separated
// text, the format spreadsheet tools and flashcard apps import.
package csvlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

var header = []string{"hangul", "description"}

var (
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrBadHeader       = errors.New("unexpected header")
)

type Row struct {
	Hangul      string
	Description string
}

type Options struct {
	// Encoding is "utf-8" (the default when empty) or "euc-kr".
	Encoding string
}

func (o Options) encoding() (encoding.Encoding, error) {
	switch strings.ToLower(o.Encoding) {
	case "", "utf-8", "utf8":
		return encoding.Nop, nil
	case "euc-kr", "euckr", "cp949":
		return korean.EUCKR, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, o.Encoding)
}

// Write emits the header followed by one record per row.
func Write(w io.Writer, rows []Row, opts Options) error {
	enc, err := opts.encoding()
	if err != nil {
		return err
	}

	tw := transform.NewWriter(w, enc.NewEncoder())
	cw := csv.NewWriter(tw)
	cw.Comma = ';'
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Hangul, r.Description}); err != nil {
			return fmt.Errorf("writing %s: %w", r.Hangul, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("encoding csv: %w", err)
	}
	return nil
}

// Read parses a log written by Write. The header row is required.
func Read(r io.Reader, opts Options) ([]Row, error) {
	enc, err := opts.encoding()
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(transform.NewReader(r, enc.NewDecoder()))
	cr.Comma = ';'
	cr.FieldsPerRecord = len(header)

	first, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if !strings.EqualFold(strings.TrimPrefix(first[0], "\ufeff"), header[0]) || !strings.EqualFold(first[1], header[1]) {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, strings.Join(first, ";"))
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		rows = append(rows, Row{Hangul: strings.TrimSpace(rec[0]), Description: rec[1]})
	}
}

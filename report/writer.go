package report

import (
	"fmt"
	"io"
	"strings"
)

// Writer emits report rows in the reference CSV format: every field wrapped
// in double quotes with no internal escaping, comma-separated, with a
// trailing comma per line. The header is written before the first row; a run
// with no rows produces an empty file.
type Writer struct {
	out           io.Writer
	headerWritten bool
}

// NewWriter creates a report writer on out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteRow appends one row, emitting the header first if this is the first row.
func (w *Writer) WriteRow(row *Row) error {
	if !w.headerWritten {
		if err := w.writeFields(Header()); err != nil {
			return err
		}
		w.headerWritten = true
	}
	return w.writeFields(row.Fields())
}

func (w *Writer) writeFields(fields []string) error {
	var builder strings.Builder
	for _, field := range fields {
		builder.WriteString(`"`)
		builder.WriteString(field)
		builder.WriteString(`",`)
	}
	builder.WriteString("\n")

	if _, err := io.WriteString(w.out, builder.String()); err != nil {
		return fmt.Errorf("writing report row: %w", err)
	}
	return nil
}

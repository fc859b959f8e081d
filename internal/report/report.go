// Package report renders pipeline output into fixed-width text
// reports. Every report is a dispatch listener writing rows to an
// injected sink; there is no process-wide output state. Write errors
// surface through the fan-out partial-failure result.
package report

import (
	"fmt"
	"io"
)

// table writes a header once, then numbered fixed-width rows.
type table struct {
	w      io.Writer
	header string
	rows   int
}

func newTable(w io.Writer, header string) *table {
	return &table{w: w, header: header}
}

// writeRow emits the header on first use, then the row prefixed with
// a running key.
func (t *table) writeRow(format string, args ...any) error {
	if t.rows == 0 {
		if _, err := fmt.Fprintln(t.w, t.header); err != nil {
			return err
		}
	}
	t.rows++
	args = append([]any{t.rows}, args...)
	_, err := fmt.Fprintf(t.w, "%-6d"+format+"\n", args...)
	return err
}

// Rows returns the number of data rows written so far.
func (t *table) Rows() int { return t.rows }

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/processing"
)

// ReportWriter is the interface for writing position reports.
type ReportWriter interface {
	// WriteReport writes a single report.
	WriteReport(r *processing.Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers write pending output here.
	Close() error
}

// TextWriter writes one line per report.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text report writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes e.g.
// "line 3: checkmate, white to move, 0 legal moves, material 39-36".
func (tw *TextWriter) WriteReport(r *processing.Report) error {
	var b strings.Builder
	if r.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", r.Line)
	}
	if r.Err != nil {
		fmt.Fprintf(&b, "error: %v\n", r.Err)
	} else {
		fmt.Fprintf(&b, "%s, %s to move, %d legal moves, material %d-%d",
			r.Outcome(), colourName(r.Side), r.LegalMoves, r.WhiteMaterial, r.BlackMaterial)
		if r.DuplicateOf > 0 {
			fmt.Fprintf(&b, ", duplicate of line %d", r.DuplicateOf)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(tw.w, b.String())
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports as JSON.
// It buffers reports and writes them as one object on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*processing.Report
	single  bool // write each report immediately instead of batching
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(r *processing.Report) error {
	if jw.single {
		return jw.encode(ReportToJSON(r))
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	out := &JSONOutput{Reports: make([]*JSONReport, 0, len(jw.reports))}
	for _, r := range jw.reports {
		out.Reports = append(out.Reports, ReportToJSON(r))
	}
	jw.reports = jw.reports[:0]
	return jw.encode(out)
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v any) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteReports writes every report and closes w.
func WriteReports(w ReportWriter, reports []*processing.Report) error {
	for _, r := range reports {
		if err := w.WriteReport(r); err != nil {
			return err
		}
	}
	return w.Close()
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

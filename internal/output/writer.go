package output

import (
	"io"

	"github.com/lgbarn/varboard-go/internal/config"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Close writes any pending output.
	Close() error
}

// NewReportWriter returns the writer cfg selects, writing to cfg.OutputFile.
func NewReportWriter(cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(cfg.OutputFile)
	}
	return NewTextWriter(cfg.OutputFile, cfg)
}

// TextWriter writes reports as plain text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteReport writes a report immediately.
func (tw *TextWriter) WriteReport(r *Report) error {
	ew := &errWriter{w: tw.w}
	if tw.cfg.Output.ShowMoves {
		writePlyList(ew, r)
	}
	writeText(ew, r, int(tw.cfg.Output.MaxLineLength))
	return ew.err
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format. A single report is written as
// an object; several are written as an array on Close.
type JSONWriter struct {
	w       io.Writer
	reports []*JSONReport
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport buffers a report for output on Close.
func (jw *JSONWriter) WriteReport(r *Report) error {
	jw.reports = append(jw.reports, ReportToJSON(r))
	return nil
}

// Close writes the buffered reports.
func (jw *JSONWriter) Close() error {
	defer func() { jw.reports = jw.reports[:0] }()
	switch len(jw.reports) {
	case 0:
		return nil
	case 1:
		return writeJSON(jw.w, jw.reports[0])
	}
	return writeJSON(jw.w, jw.reports)
}

// errWriter remembers the first write error so the formatting code can
// ignore errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

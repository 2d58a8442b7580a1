package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	Close() error
}

// NewWriter returns a JSON writer when asJSON is set and a text writer otherwise.
func NewWriter(w io.Writer, asJSON bool) ReportWriter {
	if asJSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes reports as plain text lines.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes a report as text.
func (tw *TextWriter) WriteReport(r *Report) error {
	var sb strings.Builder
	sb.WriteString(r.Board)
	fmt.Fprintf(&sb, "FEN: %s\n", r.FEN)
	if r.Status != "" {
		fmt.Fprintf(&sb, "Status: %s\n", r.Status)
	}
	if r.Moves != nil {
		fmt.Fprintf(&sb, "Moves (%d): %s\n", r.Moves.Count, strings.Join(r.Moves.List, " "))
	}
	if p := r.Perft; p != nil {
		for _, line := range p.Divide {
			fmt.Fprintf(&sb, "%s: %d\n", line.Move, line.Nodes)
		}
		if len(p.Divide) > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "Perft(%d): %d\n", p.Depth, p.Nodes)
	}
	if c := r.CrossCheck; c != nil {
		for _, m := range c.Mismatches {
			fmt.Fprintf(&sb, "Mismatch %s\n", m)
		}
		fmt.Fprintf(&sb, "Cross-check depth %d: %d mismatched positions\n", c.Depth, len(c.Mismatches))
	}
	_, err := io.WriteString(tw.w, sb.String())
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

// JSONWriter writes each report as an indented JSON document.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport encodes r immediately.
func (jw *JSONWriter) WriteReport(r *Report) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Flush is a no-op; reports are written immediately.
func (jw *JSONWriter) Flush() error {
	return nil
}

// Close closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return nil
}

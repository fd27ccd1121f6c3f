// Package output renders run summaries and profile listings in text or
// JSON format.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mateusz-blaszkowski/log-tuner/internal/profile"
	"github.com/mateusz-blaszkowski/log-tuner/internal/tuner"
)

// Format represents an output format type.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts a string to a Format, defaulting to text.
func ParseFormat(s string) Format {
	if strings.ToLower(s) == "json" {
		return FormatJSON
	}
	return FormatText
}

// Writer handles writing formatted output.
type Writer struct {
	w      io.Writer
	format Format
}

// New creates a new output Writer.
func New(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// WriteJSON outputs any value as indented JSON.
func (wr *Writer) WriteJSON(v interface{}) error {
	enc := json.NewEncoder(wr.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteSummary outputs the result of a generation run.
func (wr *Writer) WriteSummary(stats tuner.Stats) error {
	if wr.format == FormatJSON {
		return wr.WriteJSON(stats)
	}

	header := fmt.Sprintf("Generated %d lines (%s) with profile %s in %dms",
		stats.GeneratedLines, humanBytes(stats.BytesWritten), stats.Profile, stats.ElapsedMS)
	if shouldColorize(wr.w) {
		header = colorBold + header + colorReset
	}
	if _, err := fmt.Fprintln(wr.w, header); err != nil {
		return err
	}
	_, err := fmt.Fprintf(wr.w, "  sample: %d lines, %s\n",
		stats.SampleLines, humanBytes(stats.SampleBytes))
	return err
}

// WriteProfiles outputs the registered log format profiles.
func (wr *Writer) WriteProfiles(infos []profile.Info) error {
	if wr.format == FormatJSON {
		return wr.WriteJSON(infos)
	}

	tw := tabwriter.NewWriter(wr.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t-----------")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\n", info.Name, info.Description)
	}
	return tw.Flush()
}

// humanBytes renders a byte count with a binary unit suffix.
func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

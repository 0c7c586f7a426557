package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/moamenhredeen/contentapi/internal/models"
)

// Format represents the output format type
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ExportCheckSummary exports check results to the specified format
func ExportCheckSummary(summary models.CheckSummary, format Format, filePath string) error {
	w, closer, err := getWriter(filePath)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	return WriteCheckSummary(w, summary, format)
}

// WriteCheckSummary writes check results to w
func WriteCheckSummary(w io.Writer, summary models.CheckSummary, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summary)
	case FormatCSV:
		return writeCheckCSV(w, summary)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteEnvelope writes an envelope as indented JSON
func WriteEnvelope(w io.Writer, env *models.Envelope) error {
	return writeJSON(w, env)
}

// getWriter returns an io.Writer for output (stdout or file)
func getWriter(filePath string) (io.Writer, io.Closer, error) {
	if filePath == "" {
		return os.Stdout, nil, nil
	}

	f, err := os.Create(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeCheckCSV exports check results as CSV
func writeCheckCSV(w io.Writer, summary models.CheckSummary) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"name", "adapter", "operation", "url", "passed", "status_code",
		"response_time_ms", "error",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range summary.Results {
		row := []string{
			r.Name,
			r.Adapter,
			r.Operation,
			r.URL,
			strconv.FormatBool(r.Passed),
			strconv.Itoa(r.StatusCode),
			fmt.Sprintf("%.2f", float64(r.ResponseTime.Microseconds())/1000),
			r.Error,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ParseFormat parses a string into a Format, returning error if invalid
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("invalid format '%s': must be 'json' or 'csv'", s)
	}
}

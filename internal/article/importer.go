package article

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ImportStats aggregates the per-row outcomes of one import run.
type ImportStats struct {
	Created   int
	Updated   int
	Unchanged int
	Errors    int
}

func (s ImportStats) String() string {
	return fmt.Sprintf("%d created, %d updated, %d unchanged, %d errors",
		s.Created, s.Updated, s.Unchanged, s.Errors)
}

// ErrInvalidSchema marks a CSV whose header is missing required columns.
var ErrInvalidSchema = errors.New("invalid csv schema")

var requiredColumns = []string{"id", "title", "time", "content"}

// Importer reconciles a CSV export into the article store. Row-level
// problems are reported and counted but do not stop the run; schema and
// stream problems abort it.
type Importer struct {
	repo   *Repo
	out    io.Writer
	errOut io.Writer
}

func NewImporter(repo *Repo, out, errOut io.Writer) *Importer {
	return &Importer{repo: repo, out: out, errOut: errOut}
}

// ResolvePath places relative CSV names under the data directory and
// verifies the file exists before any row is touched.
func ResolvePath(dataDir, name string) (string, error) {
	p := name
	if !filepath.IsAbs(p) {
		p = filepath.Join(dataDir, p)
	}
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("csv file not found: %s", p)
	}
	return p, nil
}

func (im *Importer) ImportFile(ctx context.Context, path string) (ImportStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportStats{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return im.importRows(ctx, f)
}

func (im *Importer) importRows(ctx context.Context, r io.Reader) (ImportStats, error) {
	var stats ImportStats

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return stats, fmt.Errorf("read csv header: %w", err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return stats, err
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// stream-level failure, not an individual bad field
			return stats, fmt.Errorf("read csv: %w", err)
		}

		row, err := parseRow(record, cols)
		if err != nil {
			stats.Errors++
			fmt.Fprintf(im.errOut, "invalid row %s: %v\n", rawField(record, cols["id"]), err)
			continue
		}

		outcome, err := im.repo.Reconcile(ctx, row.id, row.title, row.time, row.content)
		if err != nil {
			return stats, fmt.Errorf("upsert article %d: %w", row.id, err)
		}

		switch outcome {
		case OutcomeCreated:
			stats.Created++
			fmt.Fprintf(im.out, "Created article: %s (ID: %d)\n", row.title, row.id)
		case OutcomeUpdated:
			stats.Updated++
			fmt.Fprintf(im.out, "Updated article: %s (ID: %d)\n", row.title, row.id)
		default:
			stats.Unchanged++
		}
	}

	return stats, nil
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, want := range requiredColumns {
		if _, ok := cols[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: csv must contain columns: %s; found: %s",
			ErrInvalidSchema,
			strings.Join(requiredColumns, ", "),
			strings.Join(header, ", "))
	}
	return cols, nil
}

type csvRow struct {
	id      uint64
	title   string
	time    time.Time
	content string
}

func parseRow(record []string, cols map[string]int) (csvRow, error) {
	for _, want := range requiredColumns {
		if cols[want] >= len(record) {
			return csvRow{}, fmt.Errorf("missing value for column %q", want)
		}
	}

	id, err := strconv.ParseUint(strings.TrimSpace(record[cols["id"]]), 10, 64)
	if err != nil {
		return csvRow{}, fmt.Errorf("invalid id: %w", err)
	}

	t, err := parseTime(strings.TrimSpace(record[cols["time"]]))
	if err != nil {
		return csvRow{}, err
	}

	return csvRow{
		id:      id,
		title:   record[cols["title"]],
		time:    t,
		content: record[cols["content"]],
	}, nil
}

// parseTime accepts RFC 3339 with offset, offset-less ISO variants
// (taken as UTC) and the legacy export format "2006/01/02 15:04" (UTC).
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006/01/02 15:04",
	} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time: %q", s)
}

func rawField(record []string, idx int) string {
	if idx < len(record) {
		return record[idx]
	}
	return "unknown"
}

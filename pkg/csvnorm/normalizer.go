// Package csvnorm converts raw survey CSV exports into key-value records.
// Exports often carry banner or metadata lines before the real header row,
// so the header is located by scanning for known anchor column values.
package csvnorm

import (
	"errors"
	"strings"
)

// ErrHeaderNotFound indicates that no row in the input contained an anchor
// cell, so the real header row could not be located.
var ErrHeaderNotFound = errors.New("header row not found")

// Record maps header column names to trimmed, unquoted cell values.
// Values are always strings; no type inference is performed.
type Record map[string]string

// Dataset is the result of normalizing one export: the header columns in
// source order plus one Record per retained data row, also in source order.
type Dataset struct {
	Columns []string
	Records []Record
}

type Options struct {
	anchors   []string
	delimiter string
}

type Option func(*Options)

// WithAnchors overrides the cell values used to detect the header row.
func WithAnchors(anchors ...string) Option {
	return func(o *Options) {
		o.anchors = anchors
	}
}

// WithDelimiter overrides the field delimiter.
func WithDelimiter(delimiter string) Option {
	return func(o *Options) {
		o.delimiter = delimiter
	}
}

// Normalizer locates the header row of a delimited export and maps the rows
// after it into Records. It holds no per-call state and is safe for
// concurrent use.
type Normalizer struct {
	anchors   []string
	delimiter string
}

// New creates a Normalizer using the builder options.
func New(opts ...Option) *Normalizer {
	options := &Options{
		anchors:   []string{"Submitted Date", "First Name"},
		delimiter: ",",
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Normalizer{
		anchors:   options.anchors,
		delimiter: options.delimiter,
	}
}

// Normalize parses raw delimited text into a Dataset. The first row
// containing an anchor cell becomes the header; every row after it is kept
// if at least one of its cells is non-empty after cleaning. Rows shorter
// than the header are padded with empty strings, extra cells are ignored.
func (n *Normalizer) Normalize(raw string) (*Dataset, error) {
	lines := strings.Split(raw, "\n")

	headerIndex := -1
	var columns []string
	for i, line := range lines {
		cells := strings.Split(strings.TrimSuffix(line, "\r"), n.delimiter)
		if !n.containsAnchor(cells) {
			continue
		}
		headerIndex = i
		columns = make([]string, len(cells))
		for j, cell := range cells {
			columns[j] = cleanCell(cell)
		}
		break
	}
	if headerIndex < 0 {
		return nil, ErrHeaderNotFound
	}

	records := make([]Record, 0, len(lines)-headerIndex-1)
	for _, line := range lines[headerIndex+1:] {
		cells := strings.Split(strings.TrimSuffix(line, "\r"), n.delimiter)

		cleaned := make([]string, len(cells))
		empty := true
		for j, cell := range cells {
			cleaned[j] = cleanCell(cell)
			if strings.TrimSpace(cleaned[j]) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}

		record := make(Record, len(columns))
		for j, column := range columns {
			if j < len(cleaned) {
				record[column] = cleaned[j]
			} else {
				record[column] = ""
			}
		}
		records = append(records, record)
	}

	return &Dataset{Columns: columns, Records: records}, nil
}

func (n *Normalizer) containsAnchor(cells []string) bool {
	for _, cell := range cells {
		value := cleanCell(cell)
		for _, anchor := range n.anchors {
			if value == anchor {
				return true
			}
		}
	}
	return false
}

// cleanCell trims surrounding whitespace and strips at most one leading and
// one trailing double-quote mark. Embedded quotes are left as-is; this is
// not general CSV unescaping.
func cleanCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if strings.HasPrefix(cell, `"`) {
		cell = cell[1:]
	}
	if strings.HasSuffix(cell, `"`) {
		cell = cell[:len(cell)-1]
	}
	return cell
}

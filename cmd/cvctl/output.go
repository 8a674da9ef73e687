package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported format %q: must be table, json or yaml", format)
	}
}

// writeStructured prints v as JSON or YAML. YAML keys follow the JSON tags,
// so both formats expose the backend's snake_case field names.
func writeStructured(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	if format == formatJSON {
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	// JSON is valid YAML; decoding into a node keeps key order.
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("failed to convert output to yaml: %w", err)
	}
	clearStyle(&node)
	out, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	_, err = w.Write(out)
	return err
}

// clearStyle drops the flow style inherited from the JSON source so the
// output is block YAML.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// truncateCell shortens s to width display columns, ending with "…".
func truncateCell(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// table renders aligned columns. Widths are measured in terminal cells so
// Vietnamese, Korean and emoji text line up.
type table struct {
	headers []string
	rows    [][]string
	maxCell int
}

func newTable(headers ...string) *table {
	return &table{headers: headers, maxCell: 40}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) write(w io.Writer) {
	widths := make([]int, len(t.headers))
	measure := func(cells []string) {
		for i, c := range cells {
			if i >= len(widths) {
				break
			}
			widths[i] = max(widths[i], runewidth.StringWidth(truncateCell(c, t.maxCell)))
		}
	}
	measure(t.headers)
	for _, r := range t.rows {
		measure(r)
	}

	line := func(cells []string) {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = truncateCell(cells[i], t.maxCell)
			}
			parts[i] = padRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " ")) //nolint:errcheck
	}

	line(t.headers)
	rule := make([]string, len(widths))
	for i, width := range widths {
		rule[i] = strings.Repeat("─", width)
	}
	fmt.Fprintln(w, strings.Join(rule, "  ")) //nolint:errcheck
	for _, r := range t.rows {
		line(r)
	}
}

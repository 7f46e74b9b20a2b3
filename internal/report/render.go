package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Output formats accepted by Render.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Render writes t to w as a terminal table or as a JSON array of objects.
func Render(w io.Writer, t Table, format string) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, t)
	case FormatTable, "":
		return renderTable(w, t)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderTable(w io.Writer, t Table) error {
	if len(t.Rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
	}
	tw.AppendHeader(header)

	for _, r := range t.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = formatValue(v)
		}
		tw.AppendRow(row)
	}

	tw.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(t.Rows))
	return nil
}

func renderJSON(w io.Writer, t Table) error {
	results := make([]map[string]any, 0, len(t.Rows))
	for _, r := range t.Rows {
		obj := make(map[string]any, len(t.Columns))
		for i, col := range t.Columns {
			obj[col] = jsonValue(r[i])
		}
		results = append(results, obj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// formatValue prints NULL for missing values and dates as YYYY-MM-DD.
func formatValue(v any) string {
	v = jsonValue(v)
	switch val := v.(type) {
	case nil:
		return "NULL"
	case time.Time:
		return val.Format(time.DateOnly)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// jsonValue dereferences the nullable model fields.
func jsonValue(v any) any {
	switch val := v.(type) {
	case *string:
		if val == nil {
			return nil
		}
		return *val
	case *int64:
		if val == nil {
			return nil
		}
		return *val
	case *time.Time:
		if val == nil {
			return nil
		}
		return *val
	default:
		return v
	}
}

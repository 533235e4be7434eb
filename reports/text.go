// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reports

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

// WriteText renders every table as aligned plain text
func WriteText(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	for i, t := range r.Tables() {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\n", t.Title)

		titles := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			titles[j] = c.Title
		}
		fmt.Fprintf(tw, "%s\t\n", strings.Join(titles, "\t"))

		if len(t.Rows) == 0 {
			fmt.Fprintf(tw, "(no rows)\t\n")
			continue
		}
		for _, row := range t.Rows {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = formatCell(t.Columns[j].Kind, v)
			}
			fmt.Fprintf(tw, "%s\t\n", strings.Join(cells, "\t"))
		}
	}

	return tw.Flush()
}

func formatCell(kind Kind, v any) string {
	switch kind {
	case KindMoney:
		if f, ok := v.(float64); ok {
			return "$" + humanize.FormatFloat("#,###.##", f)
		}
	case KindRating:
		if f, ok := v.(float64); ok {
			return humanize.FormatFloat("#.##", f)
		}
	case KindCount:
		if n, ok := v.(int); ok {
			return humanize.Comma(int64(n))
		}
	}
	return fmt.Sprint(v)
}

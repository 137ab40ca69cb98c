package reports

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Render writes the result set as an aligned text table.
func Render(w io.Writer, rs *ResultSet) error {
	if rs == nil {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(rs.Columns, "\t"))

	underlines := make([]string, len(rs.Columns))
	for i, col := range rs.Columns {
		underlines[i] = strings.Repeat("-", len(col))
	}
	fmt.Fprintln(tw, strings.Join(underlines, "\t"))

	for _, row := range rs.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "(%d rows)\n", len(rs.Rows))
	return err
}

package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/LangOneOrg/langone-releases/fib"
)

// Row cross-checks both strategies against the exact value of F(N).
type Row struct {
	N                int
	Recursive        int64
	RecursiveElapsed time.Duration
	// Skipped is set when N was too large to compute recursively.
	Skipped          bool
	Iterative        int64
	IterativeElapsed time.Duration
	Exact            string
}

// Overflows reports whether the iterative value has wrapped.
func (r Row) Overflows() bool { return fib.Overflows(r.N) }

// Compare builds a Row for each of |ns|. Terms above |maxRecursiveN| are not
// computed recursively.
func Compare(ns []int, maxRecursiveN int) []Row {
	var rows = make([]Row, 0, len(ns))

	for _, n := range ns {
		var row = Row{N: n, Exact: fib.Big(n).String()}

		if n <= maxRecursiveN {
			var r = Measure("Recursive", n, fib.Recursive)
			row.Recursive, row.RecursiveElapsed = r.Value, r.Elapsed
		} else {
			row.Skipped = true
		}
		var r = Measure("Iterative", n, fib.Iterative)
		row.Iterative, row.IterativeElapsed = r.Value, r.Elapsed

		rows = append(rows, row)
	}
	return rows
}

// RenderTable writes |rows| to |w| as a table.
func RenderTable(w io.Writer, rows []Row) {
	var table = tablewriter.NewWriter(w)

	table.SetHeader([]string{"N", "Recursive", "Rec time", "Iterative", "Iter time", "Exact", "Wrapped"})
	table.SetAutoWrapText(false)

	for _, r := range rows {
		var rec, recTime = "-", "-"
		if !r.Skipped {
			rec, recTime = fmt.Sprintf("%d", r.Recursive), r.RecursiveElapsed.String()
		}
		table.Append([]string{
			fmt.Sprintf("%d", r.N),
			rec,
			recTime,
			fmt.Sprintf("%d", r.Iterative),
			r.IterativeElapsed.String(),
			r.Exact,
			fmt.Sprintf("%t", r.Overflows()),
		})
	}
	table.Render()
}

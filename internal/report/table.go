package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/san-kum/cyclepower/internal/sweep"
)

func WriteTable(out io.Writer, points []sweep.Point) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "V [m/s]\tTOTAL\tAERO\tRR\tWB\tPE\tKE\t")

	for _, p := range points {
		v := p.Breakdown.Values()
		fmt.Fprintf(w, "%.2f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t\n",
			p.Velocity, v[0], v[1], v[2], v[3], v[4], v[5])
	}

	return w.Flush()
}

package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"mileage-service/internal/domain"
)

// WriteRouteTable prints one row per leg followed by the route total.
func WriteRouteTable(w io.Writer, plan *domain.RoutePlan) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tFROM\tTO\tMILES")
	for _, l := range plan.Legs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", l.Index, l.From, l.To, domain.FormatMiles(l.Meters))
	}
	fmt.Fprintf(tw, "\t\tTOTAL\t%s\n", domain.FormatMiles(plan.TotalMeters))

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render route table: %w", err)
	}

	if plan.SyntheticLegs {
		if _, err := fmt.Fprintln(w, "note: the routing service returned no per-leg breakdown; each row shows the full route distance"); err != nil {
			return fmt.Errorf("render route table: %w", err)
		}
	}

	return nil
}

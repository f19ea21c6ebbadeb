package mlqueue

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func newTableWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// WriteQueue renders the waiting entities as a table, grouped under their
// lane label and listed in the order they would be dequeued.
func WriteQueue(w io.Writer, q *Queue) error {
	if q.IsEmpty() {
		_, err := fmt.Fprintln(w, "Queue is empty.")
		return err
	}

	tw := newTableWriter(w)
	fmt.Fprintln(tw, "LANE\tID\tSERVICE\tEMERGENCY\tWAITING\tSCORE")

	var current Lane
	first := true
	for lane, e := range q.All() {
		label := ""
		if first || lane != current {
			label = lane.String()
			current, first = lane, false
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d min\t%.2f\n",
			label, e.ID(), e.Category(), yesNo(e.Emergency()), e.WaitingMinutes(), e.Score())
	}
	return tw.Flush()
}

// WriteService renders a single line describing a completed service.
func WriteService(w io.Writer, s Service) error {
	_, err := fmt.Fprintf(w, "Serving #%d (Time: %d min): %s, Service Time: %d min\n",
		s.Seq, s.StartedAt, s.Entity, s.Duration)
	return err
}

// WriteSummary renders the total time taken to serve everyone.
func WriteSummary(w io.Writer, sum Summary) error {
	_, err := fmt.Fprintf(w, "All %d individuals served in %d minutes.\n",
		len(sum.Services), sum.TotalMinutes)
	return err
}

// WriteRules renders the scoring and service rules for every known category.
func WriteRules(w io.Writer) error {
	tw := newTableWriter(w)
	fmt.Fprintln(tw, "SERVICE\tWEIGHT\tDURATION\tLANE")
	for _, c := range append(Categories.All(), Categories.Unknown) {
		fmt.Fprintf(tw, "%s\t%.1f\t%d min\t%s\n", c, c.Weight(), c.ServiceDuration(), baseLane(c))
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Emergency flag\t+%.1f\t\tHigh\n", emergencyWeight)
	fmt.Fprintf(tw, "Waiting time\t+%.1f/min\t\tMedium at score >= %.1f\n", waitingWeight, MediumScoreThreshold)
	return tw.Flush()
}

// baseLane describes the lane a category starts in before any waiting time
// or emergency flag is taken into account.
func baseLane(c Category) string {
	lane := Classify(NewEntity(0, c, false, 0))
	if lane == Lanes.Low {
		return fmt.Sprintf("Low until score >= %.1f", MediumScoreThreshold)
	}
	return lane.String()
}

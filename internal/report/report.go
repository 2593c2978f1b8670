package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ms-discovery/internal/models"
)

var separator = strings.Repeat("-", 50)

// Render writes the human readable event listing to w.
func Render(w io.Writer, events []models.Event) error {
	bw := bufio.NewWriter(w)

	if len(events) == 0 {
		fmt.Fprintln(bw, "\nNo events found for any artist")
		return bw.Flush()
	}

	fmt.Fprintf(bw, "\nFound %d total events:\n", len(events))
	for _, e := range events {
		fmt.Fprintf(bw, "\nEvent: %s\n", e.Name)
		if len(e.Artists) > 0 {
			fmt.Fprintf(bw, "Artists: %s\n", strings.Join(e.Artists, ", "))
		}
		fmt.Fprintf(bw, "Date: %s at %s\n", e.Date, e.Time)
		fmt.Fprintf(bw, "Venue: %s in %s, %s\n", e.Venue, e.City, e.State)
		fmt.Fprintf(bw, "Status: %s\n", e.Status)
		fmt.Fprintf(bw, "Tickets: %s\n", e.TicketURL)
		fmt.Fprintln(bw, separator)
	}
	return bw.Flush()
}

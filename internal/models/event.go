package models

// Event is a single ticketed performance flattened out of a Discovery API
// payload. Values are built once by the normalizer and never mutated.
type Event struct {
	Name      string   `json:"name"`
	Artists   []string `json:"artists"`
	Date      string   `json:"date"` // YYYY-MM-DD, used as the sort key
	Time      string   `json:"time"`
	Venue     string   `json:"venue"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	TicketURL string   `json:"ticket_url"`
	Status    string   `json:"status"`
}

package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-discovery/internal/models"
)

func TestRender_NoEvents(t *testing.T) {
	var sb strings.Builder

	require.NoError(t, Render(&sb, nil))

	assert.Equal(t, "\nNo events found for any artist\n", sb.String())
}

func TestRender_Events(t *testing.T) {
	var sb strings.Builder
	events := []models.Event{
		{
			Name:      "Eras Tour",
			Artists:   []string{"Taylor Swift", "Sabrina Carpenter"},
			Date:      "2024-04-01",
			Time:      "19:00:00",
			Venue:     "Ford Field",
			City:      "Detroit",
			State:     "MI",
			TicketURL: "https://tm/eras",
			Status:    "onsale",
		},
		{
			Name:      "Acoustic Night",
			Artists:   []string{},
			Date:      "2024-05-01",
			Time:      "20:00:00",
			Venue:     "The Majestic",
			City:      "Detroit",
			State:     "MI",
			TicketURL: "https://tm/acoustic",
			Status:    "cancelled",
		},
	}

	require.NoError(t, Render(&sb, events))

	dashes := strings.Repeat("-", 50)
	want := "\nFound 2 total events:\n" +
		"\nEvent: Eras Tour\n" +
		"Artists: Taylor Swift, Sabrina Carpenter\n" +
		"Date: 2024-04-01 at 19:00:00\n" +
		"Venue: Ford Field in Detroit, MI\n" +
		"Status: onsale\n" +
		"Tickets: https://tm/eras\n" +
		dashes + "\n" +
		"\nEvent: Acoustic Night\n" +
		"Date: 2024-05-01 at 20:00:00\n" +
		"Venue: The Majestic in Detroit, MI\n" +
		"Status: cancelled\n" +
		"Tickets: https://tm/acoustic\n" +
		dashes + "\n"
	assert.Equal(t, want, sb.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriteError(t *testing.T) {
	err := Render(failingWriter{}, []models.Event{{Name: "x"}})

	assert.EqualError(t, err, "disk full")
}

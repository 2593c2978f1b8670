package discovery

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"ms-discovery/internal/logger"
	"ms-discovery/internal/models"
)

// MissingFieldError reports the innermost key that could not be resolved
// while building an event record.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing key '%s'", e.Key)
}

func missing(key string) error {
	return &MissingFieldError{Key: key}
}

// ParseEvents turns a Discovery response into event records sorted by date.
// Entries lacking a required field are skipped with a warning; a response
// without _embedded.events yields an empty slice.
func ParseEvents(body *models.DiscoveryResponse, log *logger.Logger) []models.Event {
	events := []models.Event{}
	if body == nil || body.Embedded == nil || body.Embedded.Events == nil {
		return events
	}

	for i, raw := range *body.Embedded.Events {
		var ev models.RawEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			log.Warn("PARSE", fmt.Sprintf("Malformed event at index %d: %v", i, err))
			continue
		}
		parsed, err := ParseEvent(ev)
		if err != nil {
			var mf *MissingFieldError
			if errors.As(err, &mf) {
				log.Warn("PARSE", fmt.Sprintf("Missing data in event: '%s'", mf.Key))
			} else {
				log.Warn("PARSE", fmt.Sprintf("Skipping event: %v", err))
			}
			continue
		}
		events = append(events, parsed)
	}

	SortByDate(events)
	return events
}

// ParseEvent builds a single record. The returned error is a
// *MissingFieldError naming the first key that was absent.
func ParseEvent(ev models.RawEvent) (models.Event, error) {
	var r resolver

	venue := r.venue(firstVenue(ev))
	out := models.Event{
		Name:      r.take(str(ev.Name, "name")),
		Artists:   attractionNames(ev),
		Date:      r.take(localDate(ev)),
		Time:      r.take(localTime(ev)),
		Venue:     r.take(venueName(venue)),
		City:      r.take(venueCity(venue)),
		State:     r.take(venueState(venue)),
		TicketURL: r.take(str(ev.URL, "url")),
		Status:    r.take(statusCode(ev)),
	}
	if r.err != nil {
		return models.Event{}, r.err
	}
	return out, nil
}

// SortByDate orders events by their ISO date, keeping input order for ties.
func SortByDate(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
}

// resolver keeps the first lookup failure so a record can be checked once
// after all fields have been read.
type resolver struct {
	err error
}

func (r *resolver) take(v string, err error) string {
	if err != nil && r.err == nil {
		r.err = err
	}
	return v
}

func (r *resolver) venue(v *models.RawVenue, err error) *models.RawVenue {
	if err != nil && r.err == nil {
		r.err = err
	}
	return v
}

func str(p *string, key string) (string, error) {
	if p == nil {
		return "", missing(key)
	}
	return *p, nil
}

func firstVenue(ev models.RawEvent) (*models.RawVenue, error) {
	if ev.Embedded == nil {
		return nil, missing("_embedded")
	}
	if ev.Embedded.Venues == nil || len(*ev.Embedded.Venues) == 0 {
		return nil, missing("venues")
	}
	return &(*ev.Embedded.Venues)[0], nil
}

func attractionNames(ev models.RawEvent) []string {
	names := []string{}
	if ev.Embedded == nil || ev.Embedded.Attractions == nil {
		return names
	}
	for _, a := range *ev.Embedded.Attractions {
		if a.Name != nil {
			names = append(names, *a.Name)
		}
	}
	return names
}

func localDate(ev models.RawEvent) (string, error) {
	if ev.Dates == nil {
		return "", missing("dates")
	}
	if ev.Dates.Start == nil {
		return "", missing("start")
	}
	return str(ev.Dates.Start.LocalDate, "localDate")
}

func localTime(ev models.RawEvent) (string, error) {
	if ev.Dates == nil {
		return "", missing("dates")
	}
	if ev.Dates.Start == nil {
		return "", missing("start")
	}
	return str(ev.Dates.Start.LocalTime, "localTime")
}

func statusCode(ev models.RawEvent) (string, error) {
	if ev.Dates == nil {
		return "", missing("dates")
	}
	if ev.Dates.Status == nil {
		return "", missing("status")
	}
	return str(ev.Dates.Status.Code, "code")
}

// A nil venue has already been reported by firstVenue.
func venueName(v *models.RawVenue) (string, error) {
	if v == nil {
		return "", nil
	}
	return str(v.Name, "name")
}

func venueCity(v *models.RawVenue) (string, error) {
	if v == nil {
		return "", nil
	}
	if v.City == nil {
		return "", missing("city")
	}
	return str(v.City.Name, "name")
}

func venueState(v *models.RawVenue) (string, error) {
	if v == nil {
		return "", nil
	}
	if v.State == nil {
		return "", missing("state")
	}
	return str(v.State.StateCode, "stateCode")
}

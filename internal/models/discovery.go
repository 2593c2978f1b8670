package models

import "encoding/json"

// DiscoveryResponse mirrors the subset of the Ticketmaster Discovery v2
// events.json payload the normalizer reads. Pointers distinguish an absent
// key from an empty value.
type DiscoveryResponse struct {
	Embedded *DiscoveryEmbedded `json:"_embedded"`
}

// Events are kept raw so a malformed entry only drops itself.
type DiscoveryEmbedded struct {
	Events *[]json.RawMessage `json:"events"`
}

type RawEvent struct {
	Name     *string           `json:"name"`
	URL      *string           `json:"url"`
	Dates    *RawDates         `json:"dates"`
	Embedded *RawEventEmbedded `json:"_embedded"`
}

type RawDates struct {
	Start  *RawStart  `json:"start"`
	Status *RawStatus `json:"status"`
}

type RawStart struct {
	LocalDate *string `json:"localDate"`
	LocalTime *string `json:"localTime"`
}

type RawStatus struct {
	Code *string `json:"code"`
}

type RawEventEmbedded struct {
	Venues      *[]RawVenue      `json:"venues"`
	Attractions *[]RawAttraction `json:"attractions"`
}

type RawVenue struct {
	Name  *string   `json:"name"`
	City  *RawCity  `json:"city"`
	State *RawState `json:"state"`
}

type RawCity struct {
	Name *string `json:"name"`
}

type RawState struct {
	StateCode *string `json:"stateCode"`
}

type RawAttraction struct {
	Name *string `json:"name"`
}

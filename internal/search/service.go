package search

import (
	"context"
	"fmt"
	"io"
	"time"

	"ms-discovery/internal/discovery"
	"ms-discovery/internal/logger"
	"ms-discovery/internal/models"
)

// EventSource returns the normalized events for one artist. Implementations
// swallow their own failures and return an empty slice instead.
type EventSource interface {
	GetArtistEvents(ctx context.Context, artist string) []models.Event
}

type Service struct {
	Source EventSource
	Out    io.Writer
	Delay  time.Duration
	Logger *logger.Logger
}

func NewService(source EventSource, out io.Writer, delay time.Duration, log *logger.Logger) *Service {
	return &Service{
		Source: source,
		Out:    out,
		Delay:  delay,
		Logger: log,
	}
}

// Run searches each artist in turn, pausing Delay between lookups, and
// returns every event found ordered by date.
func (s *Service) Run(ctx context.Context, artists []string) []models.Event {
	all := []models.Event{}

	for i, artist := range artists {
		if i > 0 && !s.wait(ctx) {
			s.Logger.Warn("SEARCH", fmt.Sprintf("Search interrupted before %s: %v", artist, ctx.Err()))
			break
		}

		fmt.Fprintf(s.Out, "\nSearching for events by %s...\n", artist)
		events := s.Source.GetArtistEvents(ctx, artist)
		all = append(all, events...)
	}

	discovery.SortByDate(all)
	s.Logger.Info("SEARCH", fmt.Sprintf("Collected %d event(s) for %d artist(s)", len(all), len(artists)))
	return all
}

// wait sleeps for Delay. It reports false if ctx ended first.
func (s *Service) wait(ctx context.Context) bool {
	if s.Delay <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

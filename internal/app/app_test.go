package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/klabast/ledig-bane/internal/availability"
	"github.com/klabast/ledig-bane/internal/cache"
)

// fixedNow is Tuesday 2024-03-05 10:30 in Oslo (UTC+1)
func fixedNow(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2024, 3, 5, 10, 30, 0, 0, oslo(t))
}

func oslo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Oslo")
	if err != nil {
		t.Fatalf("LoadLocation() failed: %v", err)
	}
	return loc
}

// newTestApp builds an App with the default venues and a frozen clock
func newTestApp(t *testing.T, opts Options) *App {
	t.Helper()
	if opts.Now == nil {
		now := fixedNow(t)
		opts.Now = func() time.Time { return now }
	}
	if opts.Location == nil {
		opts.Location = oslo(t)
	}
	if opts.IndexHTML == nil {
		opts.IndexHTML = []byte("<html>ledig bane</html>")
	}
	return New(opts)
}

// countingSource records how often each venue is generated
type countingSource struct {
	mu    sync.Mutex
	calls map[string]int
}

func (s *countingSource) Slots(venueID string, date time.Time) []availability.TimeSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[venueID]++
	return availability.GenerateSlots(venueID, date)
}

// memCache is an in-process SlotCache
type memCache struct {
	mu      sync.Mutex
	entries map[string][]availability.TimeSlot
}

func (c *memCache) Get(_ context.Context, venueID string, date time.Time) ([]availability.TimeSlot, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	slots, ok := c.entries[cache.Key(venueID, date)]
	return slots, ok, nil
}

func (c *memCache) Set(_ context.Context, venueID string, date time.Time, slots []availability.TimeSlot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[string][]availability.TimeSlot)
	}
	c.entries[cache.Key(venueID, date)] = slots
	return nil
}

func (c *memCache) Flush(context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = nil
	return n, nil
}

// brokenCache fails every operation
type brokenCache struct{}

var errCacheDown = errors.New("cache down")

func (brokenCache) Get(context.Context, string, time.Time) ([]availability.TimeSlot, bool, error) {
	return nil, false, errCacheDown
}

func (brokenCache) Set(context.Context, string, time.Time, []availability.TimeSlot) error {
	return errCacheDown
}

func (brokenCache) Flush(context.Context) (int, error) {
	return 0, errCacheDown
}

// Package availability merges slot occupancy across the registered and guest
// booking collections into one per-court busy-interval list for a date.
package availability

import (
	"context"
	"math"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tanmaydb/courtdesk/internal/models"
)

// Store is the slice of the data layer the aggregator needs.
type Store interface {
	BookingsByDate(ctx context.Context, date string) ([]models.Booking, error)
	GuestBookingsByDate(ctx context.Context, date string) ([]models.GuestBooking, error)
}

// Interval is one busy slot on a court.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Aggregator struct {
	store Store
}

func New(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// ForDate returns the per-court busy intervals for a date, registered
// bookings before guest bookings, each in read order. Slots whose court id
// does not parse to a finite number are dropped. Overlapping and duplicate
// slots are preserved as-is. A blank date yields an empty map without
// touching storage.
func (a *Aggregator) ForDate(ctx context.Context, date string) (map[int][]Interval, error) {
	busy := make(map[int][]Interval)
	if strings.TrimSpace(date) == "" {
		return busy, nil
	}

	var (
		bookings      []models.Booking
		guestBookings []models.GuestBooking
	)
	// The two sources are independent and read-only; fetch them together.
	// Merge order below is fixed regardless of which read finishes first.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = a.store.BookingsByDate(gctx, date)
		return err
	})
	g.Go(func() error {
		var err error
		guestBookings, err = a.store.GuestBookingsByDate(gctx, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return busy, err
	}

	for _, b := range bookings {
		collect(busy, b.Slots)
	}
	for _, b := range guestBookings {
		collect(busy, b.Slots)
	}
	return busy, nil
}

func collect(busy map[int][]Interval, slots []models.Slot) {
	for _, slot := range slots {
		court, ok := parseCourt(slot.Court)
		if !ok {
			continue
		}
		busy[court] = append(busy[court], Interval{Start: slot.Start, End: slot.End})
	}
}

// parseCourt accepts any court identifier that parses to a finite number.
func parseCourt(raw string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

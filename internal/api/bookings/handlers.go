// internal/api/bookings/handlers.go
package bookings

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tanmaydb/courtdesk/internal/api/apiutil"
	"github.com/tanmaydb/courtdesk/internal/availability"
	"github.com/tanmaydb/courtdesk/internal/export"
	"github.com/tanmaydb/courtdesk/internal/fault"
	"github.com/tanmaydb/courtdesk/internal/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BookingStore reads both booking collections for the export flow.
type BookingStore interface {
	BookingsByDate(ctx context.Context, date string) ([]models.Booking, error)
	GuestBookingsByDate(ctx context.Context, date string) ([]models.GuestBooking, error)
}

var (
	aggregator *availability.Aggregator
	store      BookingStore
)

func InitHandlers(a *availability.Aggregator, s BookingStore) {
	aggregator = a
	store = s
}

// HandleAvailability returns the per-court busy intervals for a date.
func HandleAvailability(w http.ResponseWriter, r *http.Request) {
	busy, err := aggregator.ForDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	_ = apiutil.WriteJSON(w, http.StatusOK, busy)
}

// HandleExport streams the day's bookings as an xlsx download.
func HandleExport(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		apiutil.WriteError(w, r, fault.Validation("date is required"))
		return
	}

	bookings, err := store.BookingsByDate(r.Context(), date)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	guestBookings, err := store.GuestBookingsByDate(r.Context(), date)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	workbook, err := export.Workbook(export.Flatten(bookings, guestBookings))
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	defer workbook.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="bookings-%s.xlsx"`, date))
	if err := workbook.Write(w); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to stream export")
	}
}

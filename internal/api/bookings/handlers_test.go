package bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/tanmaydb/courtdesk/internal/availability"
	"github.com/tanmaydb/courtdesk/internal/models"
)

type fakeStore struct {
	bookings      []models.Booking
	guestBookings []models.GuestBooking
}

func (f *fakeStore) BookingsByDate(_ context.Context, _ string) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeStore) GuestBookingsByDate(_ context.Context, _ string) ([]models.GuestBooking, error) {
	return f.guestBookings, nil
}

func setupBookingsTest(t *testing.T, fake *fakeStore) {
	t.Helper()
	InitHandlers(availability.New(fake), fake)
	t.Cleanup(func() {
		aggregator = nil
		store = nil
	})
}

func TestHandleAvailability(t *testing.T) {
	setupBookingsTest(t, &fakeStore{
		bookings: []models.Booking{
			{Date: "2024-05-01", Slots: []models.Slot{{Court: "3", Start: "06:00", End: "07:00"}}},
		},
		guestBookings: []models.GuestBooking{
			{Date: "2024-05-01", Slots: []models.Slot{{Court: "3", Start: "07:00", End: "08:00"}}},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/availability?date=2024-05-01", nil)
	recorder := httptest.NewRecorder()
	HandleAvailability(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d", recorder.Code)
	}

	var busy map[string][]availability.Interval
	if err := json.Unmarshal(recorder.Body.Bytes(), &busy); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(busy["3"]) != 2 {
		t.Fatalf("expected 2 intervals for court 3, got %d", len(busy["3"]))
	}
	if busy["3"][0].Start != "06:00" {
		t.Fatalf("registered booking must come first, got %s", busy["3"][0].Start)
	}
}

func TestHandleAvailabilityBlankDate(t *testing.T) {
	setupBookingsTest(t, &fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/availability", nil)
	recorder := httptest.NewRecorder()
	HandleAvailability(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d", recorder.Code)
	}
	if body := strings.TrimSpace(recorder.Body.String()); body != "{}" {
		t.Fatalf("body: %s", body)
	}
}

func TestHandleExport(t *testing.T) {
	setupBookingsTest(t, &fakeStore{
		bookings: []models.Booking{
			{
				UserName:  "Asha",
				UserEmail: "asha@club.in",
				Date:      "2024-05-01",
				Amount:    800,
				Currency:  "INR",
				Slots:     []models.Slot{{Court: "1", Start: "06:00", End: "07:00"}},
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/export?date=2024-05-01", nil)
	recorder := httptest.NewRecorder()
	HandleExport(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d", recorder.Code)
	}
	if got := recorder.Header().Get("Content-Type"); got != xlsxContentType {
		t.Fatalf("content type: %s", got)
	}
	if got := recorder.Header().Get("Content-Disposition"); !strings.Contains(got, "bookings-2024-05-01.xlsx") {
		t.Fatalf("content disposition: %s", got)
	}

	workbook, err := excelize.OpenReader(recorder.Body)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer workbook.Close()

	cell, err := workbook.GetCellValue("Bookings", "B2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if cell != "asha@club.in" {
		t.Fatalf("cell B2: %s", cell)
	}
}

func TestHandleExportRequiresDate(t *testing.T) {
	setupBookingsTest(t, &fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/export", nil)
	recorder := httptest.NewRecorder()
	HandleExport(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", recorder.Code)
	}
}

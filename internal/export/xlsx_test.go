package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmaydb/courtdesk/internal/models"
)

func TestFlattenOneRowPerSlot(t *testing.T) {
	bookings := []models.Booking{
		{
			UserName:  "Asha",
			UserEmail: "asha@club.in",
			Date:      "2024-05-01",
			Amount:    800,
			Currency:  "INR",
			Slots: []models.Slot{
				{Court: "1", Start: "06:00", End: "07:00"},
				{Court: "2", Start: "07:00", End: "08:00"},
			},
		},
	}
	guestBookings := []models.GuestBooking{
		{GuestName: "Sam", Date: "2024-05-01", Amount: 400, Currency: "INR"},
	}

	rows := Flatten(bookings, guestBookings)
	require.Len(t, rows, 3)

	assert.Equal(t, "1", rows[0].Court)
	assert.Equal(t, "2", rows[1].Court)
	assert.Equal(t, "asha@club.in", rows[0].Email)

	// Slotless record still yields a row with blank slot columns.
	assert.Equal(t, "Sam", rows[2].Name)
	assert.Empty(t, rows[2].Email)
	assert.Empty(t, rows[2].Court)
	assert.Empty(t, rows[2].Start)
}

func TestWorkbookHasBoldHeaderAndRows(t *testing.T) {
	rows := []Row{
		{Name: "Asha", Email: "asha@club.in", Date: "2024-05-01", Amount: 800, Currency: "INR", Court: "1", Start: "06:00", End: "07:00"},
	}

	f, err := Workbook(rows)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "User Name", got)

	styleID, err := f.GetCellStyle(sheetName, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)

	got, err = f.GetCellValue(sheetName, "F2")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = f.GetCellValue(sheetName, "G2")
	require.NoError(t, err)
	assert.Equal(t, "06:00", got)
}

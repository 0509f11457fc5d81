// Package export renders booking records into a binary spreadsheet, one row
// per slot.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tanmaydb/courtdesk/internal/models"
)

const sheetName = "Bookings"

var header = []string{"User Name", "User Email", "Date", "Amount", "Currency", "Court", "Start", "End"}

// Row is one flattened booking slot. Guest bookings map their guest fields
// into the name column and leave the email blank.
type Row struct {
	Name     string
	Email    string
	Date     string
	Amount   float64
	Currency string
	Court    string
	Start    string
	End      string
}

// Flatten expands bookings then guest bookings into rows, one per slot. A
// record with no slots still contributes one row with blank slot columns.
func Flatten(bookings []models.Booking, guestBookings []models.GuestBooking) []Row {
	var rows []Row
	for _, b := range bookings {
		base := Row{
			Name:     b.UserName,
			Email:    b.UserEmail,
			Date:     b.Date,
			Amount:   b.Amount,
			Currency: b.Currency,
		}
		rows = appendSlotRows(rows, base, b.Slots)
	}
	for _, b := range guestBookings {
		base := Row{
			Name:     b.GuestName,
			Date:     b.Date,
			Amount:   b.Amount,
			Currency: b.Currency,
		}
		rows = appendSlotRows(rows, base, b.Slots)
	}
	return rows
}

func appendSlotRows(rows []Row, base Row, slots []models.Slot) []Row {
	if len(slots) == 0 {
		return append(rows, base)
	}
	for _, s := range slots {
		row := base
		row.Court = s.Court
		row.Start = s.Start
		row.End = s.End
		rows = append(rows, row)
	}
	return rows
}

// Workbook builds an xlsx workbook with a bold header row followed by the
// given rows. The caller owns closing the returned file.
func Workbook(rows []Row) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return nil, fmt.Errorf("header range: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeaderCell, boldStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, row := range rows {
		values := []any{row.Name, row.Email, row.Date, row.Amount, row.Currency, row.Court, row.Start, row.End}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row cell: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

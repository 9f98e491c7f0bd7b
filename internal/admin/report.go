package admin

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
)

var reportColumns = []string{
	"Booking ID", "Trip", "Customer", "Email", "Phone",
	"Travelers", "Total Amount", "Payment Status", "Payment Method", "Booking Date",
}

// BuildBookingsReport renders the bookings ledger as an XLSX workbook
// for the back office.
func BuildBookingsReport(ctx context.Context, ds *store.DataStore) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	for i, column := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, column); err != nil {
			return nil, err
		}
	}

	tripTitles := map[string]string{}
	for _, trip := range ds.Trips(ctx) {
		tripTitles[trip.ID] = trip.Title
	}

	for row, booking := range ds.Bookings(ctx) {
		title := tripTitles[booking.TripID]
		if title == "" {
			title = booking.TripID
		}
		values := []any{
			booking.ID, title, booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
			booking.NumberOfTravelers, booking.TotalAmount, booking.PaymentStatus, booking.PaymentMethod, booking.BookingDate,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	return buf, nil
}

package customer

import (
	"sort"
	"time"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
)

const (
	SegmentVIP      = "VIP"
	SegmentRegular  = "Regular"
	SegmentNew      = "New"
	SegmentInactive = "Inactive"
)

// inactivityWindow keeps the 30-day-month convention the reporting
// screens were built around.
const inactivityWindow = 6 * 30 * 24 * time.Hour

// Segment derives the marketing segment from spend and booking
// recency. Segments are computed on read, never stored.
func Segment(c models.Customer, bookings []models.Booking, now time.Time) string {
	switch {
	case c.TotalSpent > 100000:
		return SegmentVIP
	case c.TotalSpent > 25000:
		return SegmentRegular
	case len(c.Bookings) == 0:
		return SegmentNew
	}

	if newest, ok := newestBookingDate(c, bookings); ok && now.Sub(newest) > inactivityWindow {
		return SegmentInactive
	}
	return SegmentRegular
}

func newestBookingDate(c models.Customer, bookings []models.Booking) (time.Time, bool) {
	owned := map[string]bool{}
	for _, id := range c.Bookings {
		owned[id] = true
	}

	var newest time.Time
	found := false
	for _, booking := range bookings {
		if !owned[booking.ID] {
			continue
		}
		date, err := time.Parse(time.RFC3339, booking.BookingDate)
		if err != nil {
			continue
		}
		if !found || date.After(newest) {
			newest = date
			found = true
		}
	}
	return newest, found
}

type TopSpender struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	TotalSpent float64 `json:"totalSpent"`
}

type Analytics struct {
	TotalCustomers int            `json:"totalCustomers"`
	TotalRevenue   float64        `json:"totalRevenue"`
	AverageSpend   float64        `json:"averageSpend"`
	TopSpenders    []TopSpender   `json:"topSpenders"`
	Segments       map[string]int `json:"segments"`
}

// Analyze aggregates the directory into the admin dashboard numbers.
func Analyze(customers []models.Customer, bookings []models.Booking, now time.Time) Analytics {
	analytics := Analytics{
		Segments:    map[string]int{},
		TopSpenders: []TopSpender{},
	}

	for _, c := range customers {
		analytics.TotalCustomers++
		analytics.TotalRevenue += c.TotalSpent
		analytics.Segments[Segment(c, bookings, now)]++
	}
	if analytics.TotalCustomers > 0 {
		analytics.AverageSpend = analytics.TotalRevenue / float64(analytics.TotalCustomers)
	}

	ranked := make([]models.Customer, len(customers))
	copy(ranked, customers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})
	for i, c := range ranked {
		if i == 5 {
			break
		}
		analytics.TopSpenders = append(analytics.TopSpenders, TopSpender{
			ID:         c.ID,
			Name:       c.Name,
			Email:      c.Email,
			TotalSpent: c.TotalSpent,
		})
	}
	return analytics
}
